// Package ports defines the contracts between the catalog use cases and
// the adapters that back them.
//
// Ports take a context first, speak in domain types and report failures
// with domain errors.
package ports

import (
	"context"

	"github.com/jsamuelsen/logodir/internal/domain"
)

// CatalogReader is the read side of a logo catalog.
type CatalogReader interface {
	// ListAll returns every logo in catalog order. A missing or unreadable
	// data source yields an empty slice; it never fails.
	ListAll(ctx context.Context) []domain.Logo

	// GetDetail resolves one logo and, for svg logos, its markup.
	// Every failure is reported as domain.ErrNotFound: an unknown slug,
	// an unreadable svg asset and a cancelled or timed-out read alike.
	GetDetail(ctx context.Context, slug string) (domain.LogoDetail, error)
}

// AssetReader reads the stored asset bytes of a logo.
type AssetReader interface {
	// ReadAsset returns the asset for slug with the given file type.
	// Returns domain.ErrNotFound when it cannot be read.
	ReadAsset(ctx context.Context, slug string, ft domain.FileType) ([]byte, error)
}

// CatalogStore combines catalog and asset access. Adapters implement it.
type CatalogStore interface {
	CatalogReader
	AssetReader
}

// Cache stores asset bytes for a CatalogStore decorator.
type Cache interface {
	// Get returns the cached value. Returns domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. A missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Purge drops every entry.
	Purge(ctx context.Context)
}

// SyncResult reports what a catalog sync changed.
type SyncResult struct {
	// Added lists the slugs appended to the catalog, in catalog order.
	Added []string

	// Total is the number of records after the sync.
	Total int
}

// CatalogSyncer reconciles a catalog with the assets it can see. Only
// writable stores implement it.
type CatalogSyncer interface {
	Sync(ctx context.Context) (SyncResult, error)
}
