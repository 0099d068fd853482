package workspace

import "github.com/sqltrail/sqltrail/internal/trail"

// completionMsg carries a finished backend call back to the UI goroutine.
type completionMsg struct {
	done trail.Completion
}
