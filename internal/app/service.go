// Package app holds the catalog use cases. It sequences the domain
// pipeline (search, sort, window) and the code generators over a
// ports.CatalogStore and reports what happened to a ports.MetricsRecorder.
//
// Nothing here knows about HTTP or the command line; handlers and commands
// translate the returned domain errors.
package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/platform/config"
	"github.com/jsamuelsen/logodir/internal/platform/telemetry"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// CatalogServiceConfig configures a CatalogService. Only Store is required.
type CatalogServiceConfig struct {
	Store   ports.CatalogStore
	Metrics ports.MetricsRecorder
	Logger  *slog.Logger

	// Syncer reconciles the catalog on Sync. When nil, Store is used if it
	// implements ports.CatalogSyncer.
	Syncer ports.CatalogSyncer

	// Snippets configures the CDN and site URLs embedded in snippets.
	Snippets codegen.Options

	// SiteBaseURL prefixes sitemap locations.
	SiteBaseURL string

	DefaultPageSize  int
	MaxPageSize      int
	AuditConcurrency int
}

// CatalogService implements the catalog use cases.
type CatalogService struct {
	store   ports.CatalogStore
	syncer  ports.CatalogSyncer
	metrics ports.MetricsRecorder
	logger  *slog.Logger
	tracer  trace.Tracer

	executor *Executor

	snippets         codegen.Options
	siteBaseURL      string
	defaultPageSize  int
	maxPageSize      int
	auditConcurrency int
}

// NewCatalogService creates a CatalogService. It panics without a store.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Store == nil {
		panic("CatalogService: Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	recorder := cfg.Metrics
	if recorder == nil {
		recorder = discardMetrics{}
	}

	logger = logger.With(slog.String("component", "app.CatalogService"))

	syncer := cfg.Syncer
	if syncer == nil {
		syncer, _ = cfg.Store.(ports.CatalogSyncer)
	}

	svc := &CatalogService{
		store:            cfg.Store,
		syncer:           syncer,
		metrics:          recorder,
		logger:           logger,
		tracer:           telemetry.Tracer(),
		executor:         NewExecutor(logger),
		snippets:         cfg.Snippets,
		siteBaseURL:      strings.TrimSuffix(cfg.SiteBaseURL, "/"),
		defaultPageSize:  cfg.DefaultPageSize,
		maxPageSize:      cfg.MaxPageSize,
		auditConcurrency: cfg.AuditConcurrency,
	}

	if svc.defaultPageSize <= 0 {
		svc.defaultPageSize = config.DefaultPageSize
	}

	if svc.maxPageSize < svc.defaultPageSize {
		svc.maxPageSize = max(config.MaxPageSize, svc.defaultPageSize)
	}

	if svc.auditConcurrency <= 0 {
		svc.auditConcurrency = config.DefaultAuditConcurrency
	}

	return svc
}

// Search runs the search stage over the whole catalog.
func (s *CatalogService) Search(ctx context.Context, query string) []domain.Logo {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Search")
	defer span.End()

	result := domain.Search(query, s.store.ListAll(ctx))
	s.metrics.RecordSearch(strings.TrimSpace(query) == "", len(result))

	span.SetAttributes(attribute.Int("logodir.results", len(result)))

	return result
}

// GetLogo resolves one logo with its markup when it has one. Every failure
// is a not found error.
func (s *CatalogService) GetLogo(ctx context.Context, slug string) (domain.LogoDetail, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.GetLogo",
		trace.WithAttributes(attribute.String("logodir.slug", slug)),
	)
	defer span.End()

	detail, err := s.store.GetDetail(ctx, slug)
	if err != nil {
		s.metrics.RecordLookup(ports.LookupNotFound)
		span.SetStatus(codes.Error, err.Error())
		s.logger.DebugContext(ctx, "logo not found", slog.String("slug", slug), slog.String("error", err.Error()))

		// Stores already report not found; anything else still collapses to it.
		if !domain.IsNotFound(err) {
			return domain.LogoDetail{}, domain.LogoNotFound(slug)
		}

		return domain.LogoDetail{}, err
	}

	s.metrics.RecordLookup(ports.LookupFound)

	_, hasMarkup := detail.Markup()
	span.SetAttributes(attribute.Bool("logodir.has_markup", hasMarkup))

	return detail, nil
}

// ListSlugs returns every slug in catalog order.
func (s *CatalogService) ListSlugs(ctx context.Context) []string {
	logos := s.store.ListAll(ctx)

	slugs := make([]string, len(logos))
	for i, logo := range logos {
		slugs[i] = logo.Slug
	}

	return slugs
}

// CDNURL returns the CDN reference for a logo.
func (s *CatalogService) CDNURL(logo domain.Logo) string {
	return codegen.CDNURL(s.snippets.CDNBaseURL, logo.Slug, logo.FileType)
}

type discardMetrics struct{}

func (discardMetrics) RecordSearch(bool, int)                              {}
func (discardMetrics) RecordLookup(string)                                 {}
func (discardMetrics) RecordSnippet(string)                                {}
func (discardMetrics) RecordCatalogLoad(string, int, time.Duration, error) {}
func (discardMetrics) RecordCacheLookup(bool)                              {}
