package cache

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/ports"
)

var _ ports.CatalogStore = (*Store)(nil)

// Store serves asset reads from a ports.Cache and falls through to the
// wrapped store on a miss. Catalog listings are never cached.
type Store struct {
	next    ports.CatalogStore
	cache   ports.Cache
	metrics ports.MetricsRecorder
	logger  *slog.Logger
}

// NewStore wraps next. metrics may be nil.
func NewStore(next ports.CatalogStore, cache ports.Cache, metrics ports.MetricsRecorder, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		next:    next,
		cache:   cache,
		metrics: metrics,
		logger:  logger.With(slog.String("component", "asset-cache")),
	}
}

// ListAll implements ports.CatalogReader.
func (s *Store) ListAll(ctx context.Context) []domain.Logo {
	return s.next.ListAll(ctx)
}

// GetDetail resolves the record from the wrapped store's listing and reads
// the markup through the cache.
func (s *Store) GetDetail(ctx context.Context, slug string) (domain.LogoDetail, error) {
	if ctx.Err() != nil {
		return domain.LogoDetail{}, domain.LogoNotFound(slug)
	}

	for _, logo := range s.next.ListAll(ctx) {
		if logo.Slug != slug {
			continue
		}

		if !logo.FileType.HasMarkup() {
			return domain.NewLogoDetail(logo), nil
		}

		markup, err := s.ReadAsset(ctx, slug, logo.FileType)
		if err != nil {
			return domain.LogoDetail{}, err
		}

		return domain.NewLogoDetailWithMarkup(logo, string(markup)), nil
	}

	return domain.LogoDetail{}, domain.LogoNotFound(slug)
}

// ReadAsset implements ports.AssetReader. A cancelled caller gets not
// found even when the asset is cached.
func (s *Store) ReadAsset(ctx context.Context, slug string, ft domain.FileType) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, domain.LogoNotFound(slug)
	}

	key := Key(slug, ft)

	if data, err := s.cache.Get(ctx, key); err == nil {
		s.record(true)
		return data, nil
	}

	s.record(false)

	data, err := s.next.ReadAsset(ctx, slug, ft)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, data); err != nil {
		s.logger.WarnContext(ctx, "asset not cached", slog.String("key", key), slog.String("error", err.Error()))
	}

	return data, nil
}

// Invalidate drops every cached asset.
func (s *Store) Invalidate(ctx context.Context) {
	s.cache.Purge(ctx)
	s.logger.DebugContext(ctx, "asset cache purged")
}

// Key is the cache key of a logo asset.
func Key(slug string, ft domain.FileType) string {
	return slug + "/icon." + ft.OrDefault().Extension()
}

func (s *Store) record(hit bool) {
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(hit)
	}
}
