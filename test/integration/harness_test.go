//go:build integration

package integration

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/adapters/highlight"
	httpadapter "github.com/jsamuelsen/logodir/internal/adapters/http"
	"github.com/jsamuelsen/logodir/internal/adapters/http/handlers"
	"github.com/jsamuelsen/logodir/internal/adapters/metrics"
	"github.com/jsamuelsen/logodir/internal/bootstrap"
	"github.com/jsamuelsen/logodir/internal/platform/config"
	"github.com/jsamuelsen/logodir/internal/platform/logging"
)

const fixtureMarkup = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" class="logo"><path fill-rule="evenodd" d="M0 0h24v24H0z"/></svg>`

const fixtureCatalog = `[
  {"slug": "apple", "name": "Apple", "category": "tech", "fileType": "svg"},
  {"slug": "github", "name": "GitHub", "category": "dev", "tags": ["git", "code"], "website": "https://github.com", "fileType": "svg"},
  {"slug": "gitlab", "name": "GitLab", "category": "dev", "tags": ["git"]},
  {"slug": "zoom", "name": "Zoom", "category": "video", "fileType": "png"}
]`

// writeFixture lays out a catalog the way the repository does: a JSON
// data file plus public/logos/<slug>/icon.<ext>.
func writeFixture(t testing.TB) (dataFile, assetsDir string) {
	t.Helper()

	root := t.TempDir()
	dataFile = filepath.Join(root, "src", "data", "logos.json")
	assetsDir = filepath.Join(root, "public", "logos")

	require.NoError(t, os.MkdirAll(filepath.Dir(dataFile), 0o755))
	require.NoError(t, os.WriteFile(dataFile, []byte(fixtureCatalog), 0o600))

	assets := map[string]string{
		"apple/icon.svg":  fixtureMarkup,
		"github/icon.svg": fixtureMarkup,
		"gitlab/icon.svg": fixtureMarkup,
		"zoom/icon.png":   "\x89PNG\r\n\x1a\n",
	}

	for name, content := range assets {
		path := filepath.Join(assetsDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dataFile, assetsDir
}

// fixtureConfig returns the default configuration pointed at a fresh
// fixture catalog.
func fixtureConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg, err := config.LoadDir(t.TempDir(), "")
	require.NoError(t, err)

	cfg.Catalog.DataFile, cfg.Catalog.AssetsDir = writeFixture(t)
	cfg.Site.BaseURL = "https://logos.test"
	cfg.Site.CDNBaseURL = "https://cdn.test/logos"
	cfg.Grid.DefaultPageSize = 2

	require.NoError(t, cfg.Validate())

	return cfg
}

// startService serves the full router over cfg and returns its base URL.
func startService(t testing.TB, cfg *config.Config) string {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := logging.NewWithWriter(&logging.Config{Level: "error", Format: "json", Service: "logodir"}, os.Stderr)
	reg := prometheus.NewRegistry()

	catalog, err := bootstrap.NewCatalog(bootstrap.Options{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.NewPrometheusRecorderWithRegistry(reg),
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = catalog.Close() })

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:      logger,
		ServiceName: "logodir",
		Logos:       handlers.NewLogoHandler(catalog.Service, highlight.New()),
		Sitemap:     handlers.NewSitemapHandler(catalog.Service),
		Health:      handlers.NewHealthHandler(catalog.Health, handlers.NewBuildInfo("integration", "", ""), reg),
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server.URL
}
