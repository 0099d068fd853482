package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/tracks"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the available tracks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		renderTracks(cmd.OutOrStdout(), tracks.All())
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions <slug>",
	Short: "List the questions of a track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tracks.Get(args[0])
		if err != nil {
			return err
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		ctx, cancel := e.requestContext(cmd)
		defer cancel()
		qs, err := e.client.FetchQuestions(ctx, t.Slug)
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}

		renderQuestions(cmd.OutOrStdout(), qs)
		return nil
	},
}

func renderTracks(w io.Writer, catalog []tracks.Track) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Slug", "Trilha"})
	for _, tr := range catalog {
		t.AppendRow(table.Row{tr.Slug, tr.Title})
	}
	t.Render()
}

func renderQuestions(w io.Writer, qs []api.Question) {
	if len(qs) == 0 {
		_, _ = fmt.Fprintln(w, "Nenhuma questão encontrada.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 80}})
	t.AppendHeader(table.Row{"#", "ID", "Enunciado"})
	for i, q := range qs {
		t.AppendRow(table.Row{i + 1, q.ID, q.Prompt})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d questões)\n", len(qs))
}
