package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sqltrail/sqltrail/internal/app"
	"github.com/sqltrail/sqltrail/internal/trail"
	"github.com/sqltrail/sqltrail/internal/tracks"
)

var trackCmd = &cobra.Command{
	Use:   "track <slug>",
	Short: "Open a track workspace directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tracks.Get(args[0])
		if err != nil {
			return err
		}
		mode := trail.Track(t.Slug)
		return launch(cmd, &mode, true)
	},
}

var singleCmd = &cobra.Command{
	Use:   "single",
	Short: "Open single-question mode directly",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := trail.Single()
		return launch(cmd, &mode, true)
	},
}

// launch builds dependencies and runs the TUI. A nil start shows the track
// selection.
func launch(cmd *cobra.Command, start *trail.Mode, skipWelcome bool) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	return app.Run(app.Options{
		Backend:     e.client,
		Logger:      e.logger,
		Timeout:     e.cfg.Timeout,
		DiagramsDir: e.cfg.DiagramsDir,
		Start:       start,
		SkipWelcome: skipWelcome,
	})
}
