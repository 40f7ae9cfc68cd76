package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jsamuelsen/logodir/internal/domain"
)

// BrowseQuery selects one window of the searched and sorted catalog.
// Zero values mean: no filter, name-asc, first page, default page size,
// medium grid.
type BrowseQuery struct {
	Query    string
	Sort     domain.SortOrder
	Page     int
	PageSize int
	Size     domain.GridSize
}

// BrowseResult is one window of the catalog.
type BrowseResult struct {
	Logos      []domain.Logo
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	Sort       domain.SortOrder
	Size       domain.GridSize
	Columns    int
}

// Browse filters the catalog by Query, sorts it and returns the requested
// page. A page past the end is empty, not an error.
func (s *CatalogService) Browse(ctx context.Context, q BrowseQuery) (BrowseResult, error) {
	order, err := domain.ParseSortOrder(string(q.Sort))
	if err != nil {
		return BrowseResult{}, err
	}

	size, err := domain.ParseGridSize(string(q.Size))
	if err != nil {
		return BrowseResult{}, err
	}

	page, pageSize, err := s.window(q.Page, q.PageSize)
	if err != nil {
		return BrowseResult{}, err
	}

	ctx, span := s.tracer.Start(ctx, "CatalogService.Browse")
	defer span.End()

	sorted := domain.Sort(s.Search(ctx, q.Query), order)

	total := len(sorted)
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := min(start+pageSize, total)

	span.SetAttributes(
		attribute.Int("logodir.total", total),
		attribute.Int("logodir.page", page),
	)

	return BrowseResult{
		Logos:      sorted[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
		Sort:       order,
		Size:       size,
		Columns:    size.Columns(),
	}, nil
}

func (s *CatalogService) window(page, pageSize int) (int, int, error) {
	switch {
	case page < 0:
		return 0, 0, domain.NewValidationErrorWithValue("page", "must be at least 1", page)
	case page == 0:
		page = 1
	}

	switch {
	case pageSize < 0:
		return 0, 0, domain.NewValidationErrorWithValue("page_size", "must be at least 1", pageSize)
	case pageSize == 0:
		pageSize = s.defaultPageSize
	case pageSize > s.maxPageSize:
		return 0, 0, domain.NewValidationErrorWithValue("page_size", "exceeds the maximum page size", pageSize)
	}

	return page, pageSize, nil
}
