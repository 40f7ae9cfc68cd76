package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/logodir/internal/ports"
)

func newSyncCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Add catalog records for new asset directories",
		Long: `sync scans the assets directory for <slug>/icon.svg files the catalog
does not list yet and appends a record for each. When anything was added
the catalog file is re-sorted by name and rewritten.

Only the file catalog source can be synced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := g.catalog.Service.Sync(cmd.Context())
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), syncOutput(result))
		},
	}
}

type syncOutput ports.SyncResult

func (o syncOutput) ToJSON() any {
	added := o.Added
	if added == nil {
		added = []string{}
	}

	return map[string]any{"added": added, "total": o.Total}
}

func (o syncOutput) ToText(w io.Writer, s Styles) error {
	if len(o.Added) == 0 {
		_, err := fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("catalog up to date, %d logos", o.Total)))
		return err
	}

	for _, slug := range o.Added {
		if _, err := fmt.Fprintf(w, "%s %s\n", s.Success.Render("+"), slug); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("added %d, %d logos", len(o.Added), o.Total)))

	return err
}
