// Package filestore serves the logo catalog from the repository layout:
// a JSON array of records plus one directory per slug holding icon.<ext>.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/platform/logging"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// SourceName labels metrics and health checks for this store.
const SourceName = "file"

var _ ports.CatalogStore = (*Store)(nil)
var _ ports.HealthChecker = (*Store)(nil)
var _ ports.CatalogSyncer = (*Store)(nil)

var validate = validator.New(validator.WithRequiredStructEnabled())

// record is the on-disk shape of a catalog entry.
type record struct {
	Slug     string   `json:"slug"               validate:"required,lowercase,excludesall=/\\,ne=.,ne=.."`
	Name     string   `json:"name"               validate:"required"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Website  string   `json:"website,omitempty"`
	FileType string   `json:"fileType,omitempty" validate:"omitempty,oneof=svg png jpg"`
}

func (r record) toDomain() domain.Logo {
	// validated, cannot fail
	ft, _ := domain.ParseFileType(r.FileType)

	return domain.Logo{
		Slug:     r.Slug,
		Name:     r.Name,
		Category: r.Category,
		Tags:     r.Tags,
		Website:  r.Website,
		FileType: ft,
	}
}

// Config configures a Store.
type Config struct {
	// DataFile is the JSON catalog, usually src/data/logos.json.
	DataFile string

	// AssetsDir holds <slug>/icon.<ext>, usually public/logos.
	AssetsDir string

	Logger  *slog.Logger
	Metrics ports.MetricsRecorder

	// OnChange runs after the watcher invalidates the catalog.
	OnChange func()
}

type snapshot struct {
	logos   []domain.Logo
	bySlug  map[string]int
	modTime time.Time
	size    int64
}

// Store is a file-backed ports.CatalogStore. The catalog is parsed once
// and reused until the data file's size or modification time changes, or
// until Invalidate is called.
type Store struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	current *snapshot
	lastErr error
}

// New creates a Store. Nothing is read until the first call.
func New(cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "catalog-file")),
	}
}

// ListAll returns every valid record in file order. A missing or broken
// data file yields an empty catalog.
func (s *Store) ListAll(_ context.Context) []domain.Logo {
	return slices.Clone(s.load().logos)
}

// GetDetail implements ports.CatalogReader.
func (s *Store) GetDetail(ctx context.Context, slug string) (domain.LogoDetail, error) {
	if ctx.Err() != nil {
		return domain.LogoDetail{}, domain.LogoNotFound(slug)
	}

	snap := s.load()

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
func (s *Store) ReadAsset(ctx context.Context, slug string, ft domain.FileType) ([]byte, error) {
	if !safeSlug(slug) || ctx.Err() != nil {
		return nil, domain.LogoNotFound(slug)
	}

	path := s.assetPath(slug, ft)

	data, err := os.ReadFile(path)
	if err != nil {
		logging.FromContext(ctx).DebugContext(ctx, "asset unreadable",
			slog.String("slug", slug),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		return nil, domain.LogoNotFound(slug)
	}

	// The read itself cannot be interrupted; a caller that gave up meanwhile
	// still gets not found.
	if ctx.Err() != nil {
		return nil, domain.LogoNotFound(slug)
	}

	logging.Trace(ctx, s.logger, "asset read", slog.String("path", path), slog.Int("bytes", len(data)))

	return data, nil
}

// Invalidate drops the parsed catalog so the next call reloads it.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "catalog-file"
}

// Check reports the data file as unhealthy when it cannot be loaded.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.load()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastErr != nil {
		return domain.NewUnavailableError(s.Name(), s.lastErr.Error())
	}

	return nil
}

func (s *Store) assetPath(slug string, ft domain.FileType) string {
	return filepath.Join(s.cfg.AssetsDir, slug, "icon."+ft.Extension())
}

// load returns the current snapshot, re-reading the data file when it
// changed on disk. It never fails.
func (s *Store) load() *snapshot {
	info, statErr := os.Stat(s.cfg.DataFile)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && statErr == nil &&
		info.ModTime().Equal(s.current.modTime) && info.Size() == s.current.size {
		return s.current
	}

	start := time.Now()
	snap, err := s.read(info, statErr)
	s.lastErr = err

	if s.cfg.Metrics != nil {
		s.cfg.Metrics.RecordCatalogLoad(SourceName, len(snap.logos), time.Since(start), err)
	}

	if err != nil {
		s.logger.Warn("catalog unavailable, serving empty catalog",
			slog.String("path", s.cfg.DataFile),
			slog.String("error", err.Error()),
		)

		// Not cached: the next call retries.
		return snap
	}

	s.logger.Debug("catalog loaded", slog.Int("logos", len(snap.logos)))
	s.current = snap

	return snap
}

func (s *Store) read(info fs.FileInfo, statErr error) (*snapshot, error) {
	empty := &snapshot{bySlug: map[string]int{}}

	if statErr != nil {
		return empty, fmt.Errorf("stat catalog: %w", statErr)
	}

	data, err := os.ReadFile(s.cfg.DataFile)
	if err != nil {
		return empty, fmt.Errorf("reading catalog: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return empty, fmt.Errorf("parsing catalog: %w", err)
	}

	snap := &snapshot{
		logos:   make([]domain.Logo, 0, len(records)),
		bySlug:  make(map[string]int, len(records)),
		modTime: info.ModTime(),
		size:    info.Size(),
	}

	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			s.logger.Warn("skipping invalid catalog record",
				slog.Int("index", i),
				slog.String("slug", rec.Slug),
				slog.String("error", describeValidation(err)),
			)

			continue
		}

		if _, dup := snap.bySlug[rec.Slug]; dup {
			s.logger.Warn("skipping catalog record",
				slog.Int("index", i),
				slog.String("error", domain.NewConflictError(rec.Slug, s.cfg.DataFile).Error()),
			)

			continue
		}

		snap.bySlug[rec.Slug] = len(snap.logos)
		snap.logos = append(snap.logos, rec.toDomain())
	}

	return snap, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+" "+fe.Tag())
	}

	return strings.Join(parts, ", ")
}

func safeSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." && !strings.ContainsAny(slug, `/\`)
}
