package codegen

import (
	"html"
	"net/url"
	"strings"

	"github.com/jsamuelsen/logodir/internal/domain"
)

// DefaultCDNBaseURL is the public asset tree served through jsDelivr.
const DefaultCDNBaseURL = "https://cdn.jsdelivr.net/gh/callback-io/allogo@main/public/logos"

// CDNURL returns <base>/<slug>/icon.<ext>. An empty base uses DefaultCDNBaseURL
// and an unset file type uses svg.
func CDNURL(base, slug string, ft domain.FileType) string {
	if base == "" {
		base = DefaultCDNBaseURL
	}

	return strings.TrimRight(base, "/") + "/" + url.PathEscape(slug) + "/icon." + ft.Extension()
}

// AssetPath returns the site-relative asset path, or an absolute URL when
// siteBase is set.
func AssetPath(siteBase, slug string, ft domain.FileType) string {
	return strings.TrimRight(siteBase, "/") + "/logos/" + url.PathEscape(slug) + "/icon." + ft.Extension()
}

// HTMLSnippet returns an img tag referencing the hosted asset at 24px.
func HTMLSnippet(siteBase, slug string, ft domain.FileType) string {
	return `<img src="` + html.EscapeString(AssetPath(siteBase, slug, ft)) +
		`" alt="` + html.EscapeString(slug) + ` logo" width="24" height="24" />`
}

// Options configures reference generation.
type Options struct {
	// CDNBaseURL overrides DefaultCDNBaseURL.
	CDNBaseURL string

	// SiteBaseURL prefixes asset paths in the HTML snippet. Empty keeps them relative.
	SiteBaseURL string
}

// Snippet is one rendered code tab.
type Snippet struct {
	Variant  Variant
	Label    string
	Language string
	Filename string
	Code     string
}

// Render produces a single snippet for a logo.
//
// Variants generated from markup fail with a not found error when the
// detail carries none, as for raster logos.
func Render(detail domain.LogoDetail, v Variant, opts Options) (Snippet, error) {
	meta, ok := variantInfo[v]
	if !ok {
		return Snippet{}, domain.NewValidationErrorWithValue("variant", "unknown variant", string(v))
	}

	markup, hasMarkup := detail.Markup()
	if meta.needsMarkup && !hasMarkup {
		return Snippet{}, domain.NewNotFoundError("markup", detail.Slug)
	}

	snippet := Snippet{
		Variant:  v,
		Label:    meta.label,
		Language: meta.language,
		Filename: meta.filename,
	}

	switch v {
	case VariantCDN:
		snippet.Code = CDNURL(opts.CDNBaseURL, detail.Slug, detail.FileType)
	case VariantHTML:
		snippet.Code = HTMLSnippet(opts.SiteBaseURL, detail.Slug, detail.FileType)
	case VariantSVG:
		snippet.Code = markup
	default:
		code, err := Generate(v, detail.DisplayName(), markup)
		if err != nil {
			return Snippet{}, err
		}

		snippet.Code = code
	}

	return snippet, nil
}

// Tabs returns the code tabs shown for a logo: the CDN link first, then,
// when markup is present, the four components and the raw svg.
func Tabs(detail domain.LogoDetail, opts Options) []Snippet {
	order := []Variant{VariantCDN}
	if _, ok := detail.Markup(); ok {
		order = append(order, ComponentVariants...)
		order = append(order, VariantSVG)
	}

	tabs := make([]Snippet, 0, len(order))
	for _, v := range order {
		// cannot fail: every variant in order is known and markup was checked
		snippet, _ := Render(detail, v, opts)
		tabs = append(tabs, snippet)
	}

	return tabs
}
