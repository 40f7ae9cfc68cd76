package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// Sync adds catalog records for assets the catalog does not list yet and
// confirms that every added slug is served afterwards. It needs a store
// configured with a ports.CatalogSyncer.
func (s *CatalogService) Sync(ctx context.Context) (ports.SyncResult, error) {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Sync")
	defer span.End()

	syncer := s.syncer

	return Run(ctx, s.executor, Operation[ports.SyncResult, ports.SyncResult, ports.SyncResult]{
		Name: "catalog.sync",
		Validate: func(context.Context) error {
			if syncer == nil {
				return domain.NewValidationError("catalog.source", "the configured catalog is read-only")
			}

			return nil
		},
		Perform: func(ctx context.Context) (ports.SyncResult, error) {
			return syncer.Sync(ctx)
		},
		Verify: func(ctx context.Context, performed ports.SyncResult) (ports.SyncResult, error) {
			if len(performed.Added) == 0 {
				return performed, nil
			}

			served := make(map[string]bool)
			for _, slug := range s.ListSlugs(ctx) {
				served[slug] = true
			}

			var missing []string

			for _, slug := range performed.Added {
				if !served[slug] {
					missing = append(missing, slug)
				}
			}

			if len(missing) > 0 {
				return performed, fmt.Errorf("added slugs not served: %s", strings.Join(missing, ", "))
			}

			return performed, nil
		},
		Report: func(ctx context.Context, verified ports.SyncResult) (ports.SyncResult, error) {
			s.logger.InfoContext(ctx, "catalog synced",
				slog.Int("added", len(verified.Added)),
				slog.Int("total", verified.Total),
			)

			return verified, nil
		},
	})
}
