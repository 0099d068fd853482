package trail

import "fmt"

// ModeKind distinguishes the two ways of working through questions.
type ModeKind int

const (
	// KindSingle serves one backend-chosen question at a time.
	KindSingle ModeKind = iota
	// KindTrack works through every question of one track.
	KindTrack
)

// Mode configures a Controller.
type Mode struct {
	Kind ModeKind
	// Slug is the track identifier; empty in single mode.
	Slug string
}

// Single returns the single-question mode.
func Single() Mode {
	return Mode{Kind: KindSingle}
}

// Track returns the track mode for slug.
func Track(slug string) Mode {
	return Mode{Kind: KindTrack, Slug: slug}
}

// IsTrack reports whether the mode works on a question set.
func (m Mode) IsTrack() bool {
	return m.Kind == KindTrack
}

func (m Mode) String() string {
	if m.IsTrack() {
		return fmt.Sprintf("track(%s)", m.Slug)
	}
	return "single"
}
