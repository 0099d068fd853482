package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/trail"
	"github.com/sqltrail/sqltrail/internal/tracks"
	"github.com/sqltrail/sqltrail/internal/ui/components"
)

// errIncorrect is returned when the backend judged the query wrong, so the
// command exits non-zero.
var errIncorrect = errors.New("consulta incorreta")

type validateOptions struct {
	track    string
	question int
	file     string
	sql      string
}

var validateFlags validateOptions

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate one query against a question",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := validateFlags
		if opts.track != "" {
			if _, err := tracks.Get(opts.track); err != nil {
				return err
			}
		}
		query, err := opts.query()
		if err != nil {
			return err
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		mode := trail.Single()
		if opts.track != "" {
			mode = trail.Track(opts.track)
		}
		ctrl := trail.New(mode, e.client, trail.WithLogger(e.logger))

		ctx, cancel := e.requestContext(cmd)
		defer cancel()
		return runValidate(ctx, cmd.OutOrStdout(), ctrl, opts.question, query)
	},
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFlags.track, "track", "", "Track slug the question belongs to")
	f.IntVar(&validateFlags.question, "question", 0, "Question id")
	f.StringVar(&validateFlags.file, "file", "", "Read the query from a file (- for stdin)")
	f.StringVar(&validateFlags.sql, "sql", "", "Query text")
	_ = validateCmd.MarkFlagRequired("question")
	validateCmd.MarkFlagsMutuallyExclusive("file", "sql")
	validateCmd.MarkFlagsOneRequired("file", "sql")
}

func (o validateOptions) query() (string, error) {
	switch o.file {
	case "":
		return o.sql, nil
	case "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(o.file)
		if err != nil {
			return "", fmt.Errorf("read query: %w", err)
		}
		return string(b), nil
	}
}

// runValidate submits query for question id through ctrl and prints the
// outcome. In track mode the set is loaded first so the id is checked
// against it.
func runValidate(ctx context.Context, w io.Writer, ctrl *trail.Controller, id int, query string) error {
	if ctrl.Mode().IsTrack() {
		if err := ctrl.LoadTrack(ctx); err != nil {
			return fmt.Errorf("load track: %w", err)
		}
		if !ctrl.SelectQuestion(id) {
			return errors.New(ctrl.State().Status)
		}
	} else {
		ctrl.SetQuestion(api.Question{ID: id})
	}

	ctrl.SetQueryText(query)
	err := ctrl.SubmitQuery(ctx)
	st := ctrl.State()

	if st.Prompt != "" {
		_, _ = fmt.Fprintf(w, "Questão %d: %s\n\n", id, st.Prompt)
	}
	_, _ = fmt.Fprintln(w, components.StatusLabel+st.Status)
	if err != nil {
		return err
	}

	renderOutcomeTable(w, components.LearnerResultTitle, st.Learner, st.LearnerFooter)
	renderOutcomeTable(w, components.ExpectedResultTitle, st.Expected, st.ExpectedFooter)

	if st.Verdict != nil && !*st.Verdict {
		return errIncorrect
	}
	return nil
}

func renderOutcomeTable(w io.Writer, title string, res *api.TableResult, footer string) {
	_, _ = fmt.Fprintf(w, "\n%s\n", title)
	if res.Empty() {
		_, _ = fmt.Fprintln(w, components.EmptyResult)
	} else {
		renderResultRows(w, res)
	}
	if footer != "" {
		_, _ = fmt.Fprintln(w, footer)
	}
}

func renderResultRows(w io.Writer, res *api.TableResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(res.Columns))
	for i, col := range res.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, cells := range res.Rows {
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = api.FormatCell(c)
		}
		t.AppendRow(row)
	}
	t.Render()
}
