package handlers

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/adapters/http/dto"
	"github.com/jsamuelsen/logodir/internal/app"
	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/mocks"
	"github.com/jsamuelsen/logodir/internal/ports"
)

const testMarkup = `<svg viewBox="0 0 24 24" width="24" height="24"><path d="M0 0h24v24H0z"/></svg>`

var testCatalog = []domain.Logo{
	{Slug: "github", Name: "GitHub", Category: "dev", Tags: []string{"git"}, FileType: domain.FileTypeSVG},
	{Slug: "apple", Name: "Apple", FileType: domain.FileTypeSVG},
	{Slug: "zoom", Name: "Zoom", FileType: domain.FileTypePNG},
}

// fakeHighlighter wraps code in a marker so tests can see it was used.
type fakeHighlighter struct {
	err error
}

func (f fakeHighlighter) HTML(code, language, theme string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return "<pre data-lang=\"" + language + "\" data-theme=\"" + theme + "\">" + code + "</pre>", nil
}

func (f fakeHighlighter) Terminal(_ io.Writer, _, _ string) error {
	return nil
}

func newLogoEngine(t *testing.T, store *mocks.MockCatalogStore, highlighter ports.Highlighter) *gin.Engine {
	t.Helper()

	svc := app.NewCatalogService(app.CatalogServiceConfig{
		Store:           store,
		Snippets:        codegen.Options{CDNBaseURL: "https://cdn.test/logos", SiteBaseURL: "https://logos.test"},
		SiteBaseURL:     "https://logos.test",
		DefaultPageSize: 2,
		MaxPageSize:     10,
	})

	engine := gin.New()
	NewLogoHandler(svc, highlighter).RegisterRoutes(engine.Group("/api/v1"))
	engine.GET("/sitemap.xml", NewSitemapHandler(svc).Sitemap)

	return engine
}

func get(engine *gin.Engine, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestLogoHandler_Browse(t *testing.T) {
	store := mocks.NewMockCatalogStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(testCatalog)

	w := get(newLogoEngine(t, store, nil), "/api/v1/logos?sort=name-desc&size=small")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", w.Header().Get("X-Total-Count"))

	var page dto.Page[dto.LogoResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	require.Len(t, page.Items, 2)
	assert.Equal(t, "zoom", page.Items[0].Slug)
	assert.Equal(t, "github", page.Items[1].Slug)
	assert.Equal(t, "https://cdn.test/logos/zoom/icon.png", page.Items[0].CDNURL)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 8, page.Columns)
	assert.Equal(t, "name-desc", page.Sort)
	assert.True(t, page.HasMore())
}

func TestLogoHandler_BrowseRejectsBadQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
		field    string
	}{
		{name: "unknown sort", query: "sort=popular", wantCode: dto.ErrorCodeValidation, field: "sort"},
		{name: "page size above maximum", query: "page_size=11", wantCode: dto.ErrorCodeValidation, field: "page_size"},
		{name: "non-numeric page", query: "page=abc", wantCode: dto.ErrorCodeBadRequest},
		{name: "page far past any catalog", query: "page=9223372036854775807&page_size=2", wantCode: dto.ErrorCodeValidation, field: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newLogoEngine(t, mocks.NewMockCatalogStore(t), nil), "/api/v1/logos?"+tt.query)

			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			if tt.field != "" {
				assert.Contains(t, resp.Error.Details, tt.field)
			}
		})
	}
}

func TestLogoHandler_Detail(t *testing.T) {
	t.Run("vector logo includes markup", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "github").
			Return(domain.NewLogoDetailWithMarkup(testCatalog[0], testMarkup), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/github")

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.LogoDetailResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.HasMarkup)
		assert.Equal(t, testMarkup, resp.Markup)
		assert.Equal(t, "https://cdn.test/logos/github/icon.svg", resp.CDNURL)
	})

	t.Run("unknown slug", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "nope").Return(domain.LogoDetail{}, domain.LogoNotFound("nope"))

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/nope")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrorCodeNotFound, decodeError(t, w).Error.Code)
	})
}

func TestLogoHandler_CodeTabs(t *testing.T) {
	t.Run("plain tabs", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "github").
			Return(domain.NewLogoDetailWithMarkup(testCatalog[0], testMarkup), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/github/code")

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.CodeTabsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Tabs, 6)
		assert.Equal(t, "CDN Link", resp.Tabs[0].Label)
		assert.Equal(t, "React", resp.Tabs[1].Label)
		assert.Empty(t, resp.Tabs[1].HTML)
		assert.Empty(t, resp.Theme)
	})

	t.Run("highlighted tabs", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "zoom").Return(domain.NewLogoDetail(testCatalog[2]), nil)

		w := get(newLogoEngine(t, store, fakeHighlighter{}), "/api/v1/logos/zoom/code?format=html&theme=light")

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.CodeTabsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Tabs, 1)
		assert.Equal(t, "light", resp.Theme)
		assert.Equal(t, `<pre data-lang="bash" data-theme="light">https://cdn.test/logos/zoom/icon.png</pre>`, resp.Tabs[0].HTML)
	})

	t.Run("html without a highlighter", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "zoom").Return(domain.NewLogoDetail(testCatalog[2]), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/zoom/code?format=html")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("highlighter failure", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "zoom").Return(domain.NewLogoDetail(testCatalog[2]), nil)

		w := get(newLogoEngine(t, store, fakeHighlighter{err: errors.New("lexer exploded")}), "/api/v1/logos/zoom/code?format=html")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "lexer exploded")
	})

	t.Run("bad theme", func(t *testing.T) {
		w := get(newLogoEngine(t, mocks.NewMockCatalogStore(t), nil), "/api/v1/logos/zoom/code?theme=solarized")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogoHandler_Snippet(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "github").
			Return(domain.NewLogoDetailWithMarkup(testCatalog[0], testMarkup), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/github/code/svelte")

		require.Equal(t, http.StatusOK, w.Code)

		var tab dto.CodeTabResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tab))
		assert.Equal(t, "svelte", tab.Variant)
		assert.Equal(t, "Icon.svelte", tab.Filename)
		assert.Contains(t, tab.Code, "{...$$restProps}")
	})

	t.Run("plain text", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "github").
			Return(domain.NewLogoDetailWithMarkup(testCatalog[0], testMarkup), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/github/code/cdn", "Accept", "text/plain")

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
		assert.Equal(t, "https://cdn.test/logos/github/icon.svg", w.Body.String())
	})

	t.Run("unknown variant", func(t *testing.T) {
		w := get(newLogoEngine(t, mocks.NewMockCatalogStore(t), nil), "/api/v1/logos/github/code/elm")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]string{"variant": "unknown variant"}, map[string]string(decodeError(t, w).Error.Details))
	})

	t.Run("markup variant for a raster logo", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "zoom").Return(domain.NewLogoDetail(testCatalog[2]), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/zoom/code/react")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLogoHandler_Download(t *testing.T) {
	t.Run("svg", func(t *testing.T) {
		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "github").
			Return(domain.NewLogoDetailWithMarkup(testCatalog[0], testMarkup), nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/github/download")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="github.svg"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, testMarkup, w.Body.String())
	})

	t.Run("png", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G'}

		store := mocks.NewMockCatalogStore(t)
		store.EXPECT().GetDetail(mock.Anything, "zoom").Return(domain.NewLogoDetail(testCatalog[2]), nil)
		store.EXPECT().ReadAsset(mock.Anything, "zoom", domain.FileTypePNG).Return(png, nil)

		w := get(newLogoEngine(t, store, nil), "/api/v1/logos/zoom/download")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, png, w.Body.Bytes())
	})
}

func TestLogoHandler_Slugs(t *testing.T) {
	store := mocks.NewMockCatalogStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(testCatalog)

	w := get(newLogoEngine(t, store, nil), "/api/v1/slugs")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slugs":["github","apple","zoom"],"total":3}`, w.Body.String())
}

func TestSitemapHandler(t *testing.T) {
	store := mocks.NewMockCatalogStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(testCatalog[:1])

	w := get(newLogoEngine(t, store, nil), "/sitemap.xml")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "<?xml"))

	var set urlSet
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &set))

	require.Len(t, set.URLs, 4)
	assert.Equal(t, "https://logos.test", set.URLs[0].Loc)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "https://logos.test/privacy", set.URLs[1].Loc)
	assert.Equal(t, "monthly", set.URLs[1].ChangeFreq)
	assert.Equal(t, "https://logos.test/logo/github", set.URLs[3].Loc)
	assert.Equal(t, "0.8", set.URLs[3].Priority)
	assert.NotEmpty(t, set.URLs[3].LastMod)
}
