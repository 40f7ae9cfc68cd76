package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/logodir/internal/domain"
)

// AuditProblem names a logo whose asset cannot be read.
type AuditProblem struct {
	Slug   string
	Reason string
}

// AuditReport summarises an asset audit.
type AuditReport struct {
	Checked  int
	Problems []AuditProblem
	Duration time.Duration
}

// OK reports whether every checked asset was readable.
func (r AuditReport) OK() bool {
	return len(r.Problems) == 0
}

// Audit reads the markup of every vector logo, with bounded concurrency,
// and reports those whose asset cannot be read. Raster logos are not
// checked.
func (s *CatalogService) Audit(ctx context.Context) AuditReport {
	ctx, span := s.tracer.Start(ctx, "CatalogService.Audit")
	defer span.End()

	start := time.Now()
	var logos []domain.Logo

	for _, logo := range s.store.ListAll(ctx) {
		if logo.FileType.HasMarkup() {
			logos = append(logos, logo)
		}
	}

	results := ForEachLimit(ctx, s.auditConcurrency, logos, func(ctx context.Context, logo domain.Logo) (struct{}, error) {
		_, err := s.store.ReadAsset(ctx, logo.Slug, domain.FileTypeSVG)
		return struct{}{}, err
	})

	report := AuditReport{Checked: len(logos)}

	for i, result := range results {
		if result.Err == nil {
			continue
		}

		report.Problems = append(report.Problems, AuditProblem{
			Slug:   logos[i].Slug,
			Reason: result.Err.Error(),
		})
	}

	report.Duration = time.Since(start)

	span.SetAttributes(
		attribute.Int("logodir.checked", report.Checked),
		attribute.Int("logodir.problems", len(report.Problems)),
	)

	s.logger.InfoContext(ctx, "asset audit finished",
		slog.Int("checked", report.Checked),
		slog.Int("problems", len(report.Problems)),
		slog.Duration("duration", report.Duration),
	)

	return report
}
