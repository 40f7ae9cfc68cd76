package acl

import (
	"context"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen/logodir/internal/adapters/clients"
	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/platform/logging"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// SourceName labels metrics for the cdn source.
const SourceName = "cdn"

// DefaultRefresh is how long a fetched catalog is served before refetching.
const DefaultRefresh = 10 * time.Minute

const failureRetry = 30 * time.Second

var (
	_ ports.CatalogStore  = (*CatalogStore)(nil)
	_ ports.HealthChecker = (*CatalogStore)(nil)
)

// CatalogConfig configures a CatalogStore.
type CatalogConfig struct {
	// Client is rooted at the mirror, e.g.
	// https://cdn.jsdelivr.net/gh/callback-io/allogo@main.
	Client *clients.Client

	// DataPath and AssetsPath are relative to the client's base URL.
	DataPath   string
	AssetsPath string

	Refresh time.Duration
	Metrics ports.MetricsRecorder
	Logger  *slog.Logger
}

type catalogSnapshot struct {
	logos     []domain.Logo
	bySlug    map[string]int
	fetchedAt time.Time
}

// withFetchedAt returns a copy; snapshots are shared with readers.
func (c *catalogSnapshot) withFetchedAt(t time.Time) *catalogSnapshot {
	cp := *c
	cp.fetchedAt = t

	return &cp
}

// CatalogStore serves the catalog from a CDN mirror of the repository
// layout. The listing is fetched lazily and reused for Refresh. When a
// refetch fails the previous listing keeps being served; with no previous
// listing the catalog is empty.
type CatalogStore struct {
	cfg    CatalogConfig
	logger *slog.Logger
	now    func() time.Time
	group  singleflight.Group

	mu      sync.RWMutex
	current *catalogSnapshot
	lastErr error
}

// NewCatalogStore creates a CatalogStore. It panics without a client.
func NewCatalogStore(cfg CatalogConfig) *CatalogStore {
	if cfg.Client == nil {
		panic("acl.CatalogStore: Client is required")
	}

	if cfg.Refresh <= 0 {
		cfg.Refresh = DefaultRefresh
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogStore{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "catalog-cdn")),
		now:    time.Now,
	}
}

// ListAll implements ports.CatalogReader.
func (s *CatalogStore) ListAll(ctx context.Context) []domain.Logo {
	return slices.Clone(s.snapshot(ctx).logos)
}

// GetDetail implements ports.CatalogReader.
func (s *CatalogStore) GetDetail(ctx context.Context, slug string) (domain.LogoDetail, error) {
	if ctx.Err() != nil {
		return domain.LogoDetail{}, domain.LogoNotFound(slug)
	}

	snap := s.snapshot(ctx)

	idx, ok := snap.bySlug[slug]
	if !ok {
		return domain.LogoDetail{}, domain.LogoNotFound(slug)
	}

	logo := snap.logos[idx]
	if !logo.FileType.HasMarkup() {
		return domain.NewLogoDetail(logo), nil
	}

	markup, err := s.ReadAsset(ctx, slug, logo.FileType)
	if err != nil {
		return domain.LogoDetail{}, err
	}

	return domain.NewLogoDetailWithMarkup(logo, string(markup)), nil
}

// ReadAsset implements ports.AssetReader.
func (s *CatalogStore) ReadAsset(ctx context.Context, slug string, ft domain.FileType) ([]byte, error) {
	if ValidateSlug(slug) != nil || slug == "" || ctx.Err() != nil {
		return nil, domain.LogoNotFound(slug)
	}

	assetPath := path.Join(s.cfg.AssetsPath, slug, "icon."+ft.Extension())

	data, err := s.cfg.Client.Fetch(ctx, assetPath)
	if err != nil {
		cause := MapFetchError(err, s.cfg.Client.ServiceName(), "fetch asset", "asset", assetPath)
		logging.FromContext(ctx).DebugContext(ctx, "asset unavailable",
			slog.String("slug", slug),
			slog.String("error", cause.Error()),
		)

		return nil, domain.LogoNotFound(slug)
	}

	return data, nil
}

// Invalidate forces the next call to refetch the listing.
func (s *CatalogStore) Invalidate() {
	s.mu.Lock()
	if s.current != nil {
		s.current = s.current.withFetchedAt(time.Time{})
	}
	s.mu.Unlock()
}

// Name implements ports.HealthChecker.
func (s *CatalogStore) Name() string {
	return "catalog-cdn"
}

// Check reports the mirror as unhealthy while its circuit is open or the
// last listing fetch failed.
func (s *CatalogStore) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.cfg.Client.CircuitState() == clients.StateOpen {
		return domain.NewUnavailableError(s.Name(), "circuit breaker open")
	}

	s.snapshot(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}

func (s *CatalogStore) snapshot(ctx context.Context) *catalogSnapshot {
	s.mu.RLock()
	snap := s.current
	s.mu.RUnlock()

	if snap != nil && s.now().Sub(snap.fetchedAt) < s.cfg.Refresh {
		return snap
	}

	// Concurrent callers share one fetch that outlives any single caller.
	v, _, _ := s.group.Do("catalog", func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx)), nil
	})

	return v.(*catalogSnapshot)
}

func (s *CatalogStore) refresh(ctx context.Context) *catalogSnapshot {
	start := s.now()

	snap, err := s.fetch(ctx)

	if s.cfg.Metrics != nil {
		s.cfg.Metrics.RecordCatalogLoad(SourceName, len(snap.logos), s.now().Sub(start), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = err

	if err != nil {
		s.logger.WarnContext(ctx, "catalog fetch failed", slog.String("error", err.Error()))

		if s.current == nil {
			return snap
		}

		// Serve the stale listing and retry after failureRetry.
		retryAt := s.now().Add(min(failureRetry, s.cfg.Refresh))
		s.current = s.current.withFetchedAt(retryAt.Add(-s.cfg.Refresh))

		return s.current
	}

	s.logger.InfoContext(ctx, "catalog fetched", slog.Int("logos", len(snap.logos)))
	s.current = snap

	return snap
}

func (s *CatalogStore) fetch(ctx context.Context) (*catalogSnapshot, error) {
	empty := &catalogSnapshot{bySlug: map[string]int{}}
	service := s.cfg.Client.ServiceName()

	body, err := s.cfg.Client.Fetch(ctx, s.cfg.DataPath)
	if err != nil {
		return empty, MapFetchError(err, service, "fetch catalog", "catalog", s.cfg.DataPath)
	}

	records, err := DecodeJSON[[]LogoDTO](body)
	if err != nil {
		return empty, domain.NewUnavailableError(service, err.Error())
	}

	logos, errs := TranslateEach(records, TranslateLogo)
	for _, err := range errs {
		s.logger.WarnContext(ctx, "skipping invalid catalog record", slog.String("error", err.Error()))
	}

	snap := &catalogSnapshot{
		logos:     make([]domain.Logo, 0, len(logos)),
		bySlug:    make(map[string]int, len(logos)),
		fetchedAt: s.now(),
	}

	for _, logo := range logos {
		if _, dup := snap.bySlug[logo.Slug]; dup {
			s.logger.WarnContext(ctx, "skipping catalog record",
				slog.String("error", domain.NewConflictError(logo.Slug, strings.TrimPrefix(s.cfg.DataPath, "/")).Error()),
			)

			continue
		}

		snap.bySlug[logo.Slug] = len(snap.logos)
		snap.logos = append(snap.logos, logo)
	}

	return snap, nil
}
