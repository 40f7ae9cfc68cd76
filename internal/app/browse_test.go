package app

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/mocks"
)

func TestCatalogService_Browse(t *testing.T) {
	tests := []struct {
		name      string
		query     BrowseQuery
		wantSlugs []string
		wantTotal int
		wantPages int
		wantPage  int
		wantCols  int
	}{
		{
			name:      "defaults sort by name and use the default page size",
			query:     BrowseQuery{},
			wantSlugs: []string{"apple", "github"},
			wantTotal: 4,
			wantPages: 2,
			wantPage:  1,
			wantCols:  6,
		},
		{
			name:      "second page",
			query:     BrowseQuery{Page: 2},
			wantSlugs: []string{"gitlab", "zoom"},
			wantTotal: 4,
			wantPages: 2,
			wantPage:  2,
			wantCols:  6,
		},
		{
			name:      "descending with small grid",
			query:     BrowseQuery{Sort: domain.SortNameDesc, PageSize: 3, Size: domain.GridSmall},
			wantSlugs: []string{"zoom", "gitlab", "github"},
			wantTotal: 4,
			wantPages: 2,
			wantPage:  1,
			wantCols:  8,
		},
		{
			name:      "query filters before paging",
			query:     BrowseQuery{Query: "git"},
			wantSlugs: []string{"github", "gitlab"},
			wantTotal: 2,
			wantPages: 1,
			wantPage:  1,
			wantCols:  6,
		},
		{
			name:      "page past the end is empty",
			query:     BrowseQuery{Page: 9},
			wantSlugs: []string{},
			wantTotal: 4,
			wantPages: 2,
			wantPage:  9,
			wantCols:  6,
		},
		{
			name:      "largest page does not overflow the offset",
			query:     BrowseQuery{Page: math.MaxInt, PageSize: 2},
			wantSlugs: []string{},
			wantTotal: 4,
			wantPages: 2,
			wantPage:  math.MaxInt,
			wantCols:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockCatalogStore(t)
			store.EXPECT().ListAll(mock.Anything).Return(catalog)

			var (
				got BrowseResult
				err error
			)
			require.NotPanics(t, func() {
				got, err = newTestService(t, store, nil).Browse(context.Background(), tt.query)
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlugs, slugsOf(got.Logos))
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantCols, got.Columns)
		})
	}
}

func TestCatalogService_BrowseValidation(t *testing.T) {
	tests := []struct {
		name  string
		query BrowseQuery
		field string
	}{
		{name: "unknown sort", query: BrowseQuery{Sort: "popular"}, field: "sort"},
		{name: "unknown size", query: BrowseQuery{Size: "huge"}, field: "size"},
		{name: "negative page", query: BrowseQuery{Page: -1}, field: "page"},
		{name: "negative page size", query: BrowseQuery{PageSize: -5}, field: "page_size"},
		{name: "page size above maximum", query: BrowseQuery{PageSize: 11}, field: "page_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// validation fails before the store is touched
			svc := newTestService(t, mocks.NewMockCatalogStore(t), nil)

			_, err := svc.Browse(context.Background(), tt.query)

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}
