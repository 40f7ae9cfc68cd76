// Package bootstrap assembles the catalog from configuration. Both the
// HTTP service and logoctl start from here.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/logodir/internal/adapters/clients"
	"github.com/jsamuelsen/logodir/internal/adapters/clients/acl"
	"github.com/jsamuelsen/logodir/internal/adapters/storage/cache"
	"github.com/jsamuelsen/logodir/internal/adapters/storage/filestore"
	"github.com/jsamuelsen/logodir/internal/app"
	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/platform/config"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// UserAgent is sent with catalog requests to the CDN mirror.
const UserAgent = "logodir"

// Options configures NewCatalog.
type Options struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics ports.MetricsRecorder

	// Watch overrides catalog.watch. logoctl never watches.
	Watch *bool
}

// Catalog is the wired catalog: the service, the store behind it and the
// store's health check. The asset audit is not a health check; a missing
// asset is a per-lookup not-found, and logoctl audit reports it.
type Catalog struct {
	Service *app.CatalogService
	Store   ports.CatalogStore
	Health  *ports.DefaultHealthRegistry

	// Source is catalog.source, reported in build info.
	Source string

	closers []func() error
}

// Close stops background work such as the file watcher.
func (c *Catalog) Close() error {
	var errs []error

	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewCatalog builds the store selected by catalog.source, wraps it in the
// asset cache when enabled and creates the CatalogService on top.
func NewCatalog(opts Options) (*Catalog, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New("bootstrap: config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		Health: ports.NewHealthRegistry(),
		Source: cfg.Catalog.Source,
	}

	var (
		cached *cache.Store
		files  *filestore.Store
		syncer ports.CatalogSyncer
		store  ports.CatalogStore
	)

	switch cfg.Catalog.Source {
	case config.SourceFile:
		fs := filestore.New(filestore.Config{
			DataFile:  cfg.Catalog.DataFile,
			AssetsDir: cfg.Catalog.AssetsDir,
			Logger:    logger,
			Metrics:   opts.Metrics,
			OnChange: func() {
				if cached != nil {
					cached.Invalidate(context.Background())
				}
			},
		})

		if err := c.Health.Register(fs); err != nil {
			return nil, fmt.Errorf("registering catalog health check: %w", err)
		}

		files = fs
		store, syncer = fs, fs

	case config.SourceCDN:
		client, err := clients.New(clients.Config{
			BaseURL:     cfg.Catalog.CDN.BaseURL,
			ServiceName: "catalog-cdn",
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Transport:   cfg.Client.Transport,
			UserAgent:   UserAgent,
			Logger:      logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating CDN client: %w", err)
		}

		cdn := acl.NewCatalogStore(acl.CatalogConfig{
			Client:     client,
			DataPath:   cfg.Catalog.CDN.DataPath,
			AssetsPath: cfg.Catalog.CDN.AssetsPath,
			Refresh:    cfg.Catalog.CDN.Refresh,
			Metrics:    opts.Metrics,
			Logger:     logger,
		})

		if err := c.Health.Register(cdn); err != nil {
			return nil, fmt.Errorf("registering catalog health check: %w", err)
		}

		store = cdn

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}

	if cfg.Cache.Enabled {
		cached = cache.NewStore(store, cache.NewLRU(cfg.Cache.Size, cfg.Cache.TTL), opts.Metrics, logger)
		store = cached
	}

	// The watcher goroutine reads cached, so it starts only after the cache
	// is in place.
	if files != nil {
		watch := cfg.Catalog.Watch
		if opts.Watch != nil {
			watch = *opts.Watch
		}

		if watch {
			w, err := files.Watch(cfg.Catalog.WatchDebounce)
			if err != nil {
				return nil, fmt.Errorf("watching catalog: %w", err)
			}

			c.closers = append(c.closers, w.Close)
		}
	}

	c.Store = store
	c.Service = app.NewCatalogService(app.CatalogServiceConfig{
		Store:   store,
		Syncer:  syncer,
		Metrics: opts.Metrics,
		Logger:  logger,
		Snippets: codegen.Options{
			CDNBaseURL:  cfg.Site.CDNBaseURL,
			SiteBaseURL: cfg.Site.BaseURL,
		},
		SiteBaseURL:      cfg.Site.BaseURL,
		DefaultPageSize:  cfg.Grid.DefaultPageSize,
		MaxPageSize:      cfg.Grid.MaxPageSize,
		AuditConcurrency: cfg.Catalog.AuditConcurrency,
	})

	return c, nil
}
