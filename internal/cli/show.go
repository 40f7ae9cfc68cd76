package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/ports"
)

func newShowCmd(g *globals) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "show <slug>",
		Short: "Print a logo and its code snippets",
		Example: `  logoctl show github
  logoctl show github --variant react`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := g.catalog.Service

			var out showOutput

			if variant != "" {
				snippet, err := svc.Snippet(ctx, args[0], variant)
				if err != nil {
					return err
				}

				detail, err := svc.GetLogo(ctx, args[0])
				if err != nil {
					return err
				}

				out = showOutput{detail: detail, tabs: []codegen.Snippet{snippet}}
			} else {
				detail, tabs, err := svc.CodeTabs(ctx, args[0])
				if err != nil {
					return err
				}

				out = showOutput{detail: detail, tabs: tabs}
			}

			out.cdnURL = svc.CDNURL(out.detail.Logo)
			if g.color {
				out.highlighter = g.highlighter
			}

			return g.emit(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "",
		"print a single snippet: react, vue, angular, svelte, cdn, html or svg")

	return cmd
}

type showOutput struct {
	detail      domain.LogoDetail
	tabs        []codegen.Snippet
	cdnURL      string
	highlighter ports.Highlighter
}

type showTab struct {
	Variant  string `json:"variant"`
	Label    string `json:"label"`
	Language string `json:"language"`
	Filename string `json:"filename"`
	Code     string `json:"code"`
}

func (o showOutput) ToJSON() any {
	tabs := make([]showTab, 0, len(o.tabs))
	for _, t := range o.tabs {
		tabs = append(tabs, showTab{
			Variant:  string(t.Variant),
			Label:    t.Label,
			Language: t.Language,
			Filename: t.Filename,
			Code:     t.Code,
		})
	}

	_, hasMarkup := o.detail.Markup()

	return map[string]any{
		"slug":      o.detail.Slug,
		"name":      o.detail.Name,
		"fileType":  o.detail.FileType.OrDefault(),
		"website":   o.detail.Website,
		"cdnUrl":    o.cdnURL,
		"hasMarkup": hasMarkup,
		"tabs":      tabs,
	}
}

func (o showOutput) ToText(w io.Writer, s Styles) error {
	d := o.detail

	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", s.Title.Render(d.DisplayName()), s.Muted.Render("("+d.Slug+")"))
	fmt.Fprintf(&sb, "%s %s\n", s.Header.Render("type:"), d.FileType.OrDefault())
	fmt.Fprintf(&sb, "%s %s\n", s.Header.Render("cdn: "), o.cdnURL)

	if d.Website != "" {
		fmt.Fprintf(&sb, "%s %s\n", s.Header.Render("web: "), d.Website)
	}

	if len(d.Tags) > 0 {
		fmt.Fprintf(&sb, "%s %s\n", s.Header.Render("tags:"), strings.Join(d.Tags, ", "))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	for _, tab := range o.tabs {
		header := fmt.Sprintf("\n%s %s\n", s.Title.Render("== "+tab.Label), s.Muted.Render(tab.Filename))
		if _, err := io.WriteString(w, header); err != nil {
			return err
		}

		if err := o.writeCode(w, tab); err != nil {
			return err
		}
	}

	return nil
}

func (o showOutput) writeCode(w io.Writer, tab codegen.Snippet) error {
	code := strings.TrimRight(tab.Code, "\n") + "\n"

	if o.highlighter != nil {
		if err := o.highlighter.Terminal(w, code, tab.Language); err == nil {
			return nil
		}
	}

	_, err := io.WriteString(w, code)

	return err
}
