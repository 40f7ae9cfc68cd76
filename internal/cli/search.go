package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/logodir/internal/app"
	"github.com/jsamuelsen/logodir/internal/domain"
)

func newSearchCmd(g *globals) *cobra.Command {
	var (
		sort     string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by name, slug or tag",
		Example: `  logoctl search git
  logoctl search --sort name-desc --page-size 20
  logoctl search dev -f json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			result, err := g.catalog.Service.Browse(cmd.Context(), app.BrowseQuery{
				Query:    query,
				Sort:     domain.SortOrder(sort),
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			return g.emit(cmd.OutOrStdout(), searchOutput{query: query, result: result, cdnURL: g.catalog.Service.CDNURL})
		},
	}

	cmd.Flags().StringVar(&sort, "sort", string(domain.SortNameAsc), "sort order: name-asc or name-desc")
	cmd.Flags().IntVar(&page, "page", 1, "page to print")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page (0 uses the configured default)")

	return cmd
}

type searchOutput struct {
	query  string
	result app.BrowseResult
	cdnURL func(domain.Logo) string
}

type searchLogo struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags"`
	FileType string   `json:"fileType"`
	CDNURL   string   `json:"cdnUrl"`
}

func (o searchOutput) ToJSON() any {
	logos := make([]searchLogo, 0, len(o.result.Logos))
	for _, l := range o.result.Logos {
		tags := l.Tags
		if tags == nil {
			tags = []string{}
		}

		logos = append(logos, searchLogo{
			Slug:     l.Slug,
			Name:     l.Name,
			Category: l.Category,
			Tags:     tags,
			FileType: string(l.FileType.OrDefault()),
			CDNURL:   o.cdnURL(l),
		})
	}

	return map[string]any{
		"query":      o.query,
		"total":      o.result.Total,
		"page":       o.result.Page,
		"pageSize":   o.result.PageSize,
		"totalPages": o.result.TotalPages,
		"sort":       o.result.Sort,
		"items":      logos,
	}
}

func (o searchOutput) ToText(w io.Writer, s Styles) error {
	if o.result.Total == 0 {
		_, err := fmt.Fprintln(w, s.Muted.Render("no logos found"))
		return err
	}

	table := Table{Headers: []string{"SLUG", "NAME", "TYPE", "TAGS"}}
	for _, l := range o.result.Logos {
		table.AddRow(l.Slug, l.DisplayName(), string(l.FileType.OrDefault()), strings.Join(l.Tags, ", "))
	}

	if _, err := io.WriteString(w, table.Render(s)); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d logos, page %d of %d",
		o.result.Total, o.result.Page, max(o.result.TotalPages, 1))))

	return err
}
