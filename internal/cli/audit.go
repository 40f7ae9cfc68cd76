package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/logodir/internal/app"
)

// ErrAuditFailed is returned by the audit command when any asset is
// unreadable.
var ErrAuditFailed = errors.New("audit failed")

func newAuditCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check that every vector logo has a readable asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := g.catalog.Service.Audit(cmd.Context())

			if err := g.emit(cmd.OutOrStdout(), auditOutput(report)); err != nil {
				return err
			}

			if !report.OK() {
				return fmt.Errorf("%w: %d of %d assets unreadable", ErrAuditFailed, len(report.Problems), report.Checked)
			}

			return nil
		},
	}
}

type auditOutput app.AuditReport

type auditProblem struct {
	Slug   string `json:"slug"`
	Reason string `json:"reason"`
}

func (o auditOutput) ToJSON() any {
	problems := make([]auditProblem, 0, len(o.Problems))
	for _, p := range o.Problems {
		problems = append(problems, auditProblem(p))
	}

	return map[string]any{
		"checked":    o.Checked,
		"problems":   problems,
		"durationMs": o.Duration.Milliseconds(),
	}
}

func (o auditOutput) ToText(w io.Writer, s Styles) error {
	if len(o.Problems) == 0 {
		_, err := fmt.Fprintln(w, s.Success.Render(fmt.Sprintf("ok: %d vector assets readable", o.Checked)))
		return err
	}

	table := Table{Headers: []string{"SLUG", "PROBLEM"}}
	for _, p := range o.Problems {
		table.AddRow(p.Slug, p.Reason)
	}

	if _, err := io.WriteString(w, table.Render(s)); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, s.Failure.Render(fmt.Sprintf("%d of %d vector assets unreadable", len(o.Problems), o.Checked)))

	return err
}
