// Package tracks is the catalog of practice databases a learner can pick.
package tracks

import "fmt"

// DefaultIcon is shown for tracks without a dedicated glyph.
const DefaultIcon = "👥"

// SingleDiagram is the reference diagram used outside of a track.
const SingleDiagram = "modelo"

// Track is one practice database.
type Track struct {
	Slug  string
	Title string
}

var catalog = []Track{
	{Slug: "recursos-humanos", Title: "Recursos Humanos"},
	{Slug: "universidade", Title: "Universidade"},
	{Slug: "e-commerce", Title: "E-Commerce"},
	{Slug: "companhia-aerea", Title: "Companhia Aérea"},
}

var icons = map[string]string{
	"recursos-humanos": "👥",
	"universidade":     "🎓",
	"e-commerce":       "🛒",
	"companhia-aerea":  "✈",
}

// All returns the catalog in display order.
func All() []Track {
	out := make([]Track, len(catalog))
	copy(out, catalog)
	return out
}

// Get looks up a track by slug.
func Get(slug string) (Track, error) {
	for _, t := range catalog {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Track{}, fmt.Errorf("unknown track %q", slug)
}

// Title returns the display title for slug, or the slug itself when the
// track is not in the catalog.
func Title(slug string) string {
	if t, err := Get(slug); err == nil {
		return t.Title
	}
	return slug
}

// Icon returns the glyph for slug.
func Icon(slug string) string {
	if icon, ok := icons[slug]; ok {
		return icon
	}
	return DefaultIcon
}

// DiagramName returns the reference diagram name for a track slug; an
// empty slug means single-question mode.
func DiagramName(slug string) string {
	if slug == "" {
		return SingleDiagram
	}
	return slug
}
