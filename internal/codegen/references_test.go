package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/domain"
)

func TestCDNURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		slug string
		ft   domain.FileType
		want string
	}{
		{
			name: "default base and type",
			slug: "github",
			want: DefaultCDNBaseURL + "/github/icon.svg",
		},
		{
			name: "custom base with trailing slash",
			base: "https://cdn.example.com/logos/",
			slug: "stripe",
			ft:   domain.FileTypePNG,
			want: "https://cdn.example.com/logos/stripe/icon.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CDNURL(tt.base, tt.slug, tt.ft)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, strings.HasSuffix(CDNURL("", "github", ""), "/github/icon.svg"))
}

func TestHTMLSnippet(t *testing.T) {
	assert.Equal(t,
		`<img src="/logos/github/icon.svg" alt="github logo" width="24" height="24" />`,
		HTMLSnippet("", "github", ""))

	assert.Equal(t,
		`<img src="https://logos.example.com/logos/acme/icon.jpg" alt="acme logo" width="24" height="24" />`,
		HTMLSnippet("https://logos.example.com/", "acme", domain.FileTypeJPG))
}

func labels(tabs []Snippet) []string {
	out := make([]string, 0, len(tabs))
	for _, s := range tabs {
		out = append(out, s.Label)
	}

	return out
}

func TestTabs(t *testing.T) {
	logo := domain.Logo{Slug: "github", Name: "GitHub", FileType: domain.FileTypeSVG}

	t.Run("svg logo gets all tabs", func(t *testing.T) {
		tabs := Tabs(domain.NewLogoDetailWithMarkup(logo, sampleMarkup), Options{})

		assert.Equal(t, []string{"CDN Link", "React", "Vue", "Angular", "Svelte", "SVG"}, labels(tabs))
		assert.Equal(t, DefaultCDNBaseURL+"/github/icon.svg", tabs[0].Code)
		assert.Equal(t, "Icon.tsx", tabs[1].Filename)
		assert.Contains(t, tabs[1].Code, "IconGithub")
		assert.Equal(t, sampleMarkup, tabs[5].Code)
	})

	t.Run("raster logo gets only the cdn link", func(t *testing.T) {
		png := logo
		png.FileType = domain.FileTypePNG

		tabs := Tabs(domain.NewLogoDetail(png), Options{CDNBaseURL: "https://cdn.test"})

		require.Len(t, tabs, 1)
		assert.Equal(t, "https://cdn.test/github/icon.png", tabs[0].Code)
		assert.Equal(t, "bash", tabs[0].Language)
	})
}

func TestRender(t *testing.T) {
	svg := domain.NewLogoDetailWithMarkup(domain.Logo{Slug: "my-logo"}, sampleMarkup)
	png := domain.NewLogoDetail(domain.Logo{Slug: "photo", Name: "Photo", FileType: domain.FileTypePNG})

	t.Run("blank name falls back to slug", func(t *testing.T) {
		snippet, err := Render(svg, VariantAngular, Options{})
		require.NoError(t, err)
		assert.Contains(t, snippet.Code, "selector: 'app-my-logo',")
		assert.Contains(t, snippet.Code, "IconMyLogoComponent")
	})

	t.Run("component variant without markup", func(t *testing.T) {
		_, err := Render(png, VariantReact, Options{})
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("html works for raster", func(t *testing.T) {
		snippet, err := Render(png, VariantHTML, Options{})
		require.NoError(t, err)
		assert.Contains(t, snippet.Code, "/logos/photo/icon.png")
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := Render(svg, Variant("solid"), Options{})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
