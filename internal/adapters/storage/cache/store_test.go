package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/mocks"
)

const svg = `<svg width="24" height="24"/>`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var catalog = []domain.Logo{
	{Slug: "github", Name: "GitHub", FileType: domain.FileTypeSVG},
	{Slug: "acme", Name: "Acme", FileType: domain.FileTypePNG},
}

func TestStore_ReadAsset_CachesAfterFirstRead(t *testing.T) {
	next := mocks.NewMockCatalogStore(t)
	metrics := mocks.NewMockMetricsRecorder(t)

	next.EXPECT().ReadAsset(mock.Anything, "github", domain.FileTypeSVG).Return([]byte(svg), nil).Once()
	metrics.EXPECT().RecordCacheLookup(false).Return().Once()
	metrics.EXPECT().RecordCacheLookup(true).Return().Twice()

	s := NewStore(next, NewLRU(8, 0), metrics, discardLogger())

	for range 3 {
		data, err := s.ReadAsset(context.Background(), "github", domain.FileTypeSVG)
		require.NoError(t, err)
		assert.Equal(t, []byte(svg), data)
	}
}

func TestStore_ReadAsset_CancelledContextMissesWarmCache(t *testing.T) {
	next := mocks.NewMockCatalogStore(t)
	next.EXPECT().ReadAsset(mock.Anything, "acme", domain.FileTypePNG).Return([]byte("png"), nil).Once()

	s := NewStore(next, NewLRU(8, 0), nil, discardLogger())

	_, err := s.ReadAsset(context.Background(), "acme", domain.FileTypePNG)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data, err := s.ReadAsset(ctx, "acme", domain.FileTypePNG)
	assert.Nil(t, data)
	assert.True(t, domain.IsNotFound(err))
}

func TestStore_ReadAsset_DoesNotCacheFailures(t *testing.T) {
	next := mocks.NewMockCatalogStore(t)

	next.EXPECT().ReadAsset(mock.Anything, "ghost", domain.FileTypeSVG).
		Return(nil, domain.LogoNotFound("ghost")).Twice()

	s := NewStore(next, NewLRU(8, 0), nil, discardLogger())

	for range 2 {
		_, err := s.ReadAsset(context.Background(), "ghost", domain.FileTypeSVG)
		assert.True(t, domain.IsNotFound(err))
	}
}

func TestStore_GetDetail(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		setup      func(*mocks.MockCatalogStore)
		wantMarkup bool
		wantErr    bool
	}{
		{
			name: "vector logo",
			slug: "github",
			setup: func(m *mocks.MockCatalogStore) {
				m.EXPECT().ListAll(mock.Anything).Return(catalog)
				m.EXPECT().ReadAsset(mock.Anything, "github", domain.FileTypeSVG).Return([]byte(svg), nil)
			},
			wantMarkup: true,
		},
		{
			name: "raster logo",
			slug: "acme",
			setup: func(m *mocks.MockCatalogStore) {
				m.EXPECT().ListAll(mock.Anything).Return(catalog)
			},
		},
		{
			name: "unknown slug",
			slug: "nope",
			setup: func(m *mocks.MockCatalogStore) {
				m.EXPECT().ListAll(mock.Anything).Return(catalog)
			},
			wantErr: true,
		},
		{
			name: "unreadable markup",
			slug: "github",
			setup: func(m *mocks.MockCatalogStore) {
				m.EXPECT().ListAll(mock.Anything).Return(catalog)
				m.EXPECT().ReadAsset(mock.Anything, "github", domain.FileTypeSVG).
					Return(nil, domain.LogoNotFound("github"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := mocks.NewMockCatalogStore(t)
			tt.setup(next)

			s := NewStore(next, NewLRU(8, 0), nil, discardLogger())

			detail, err := s.GetDetail(context.Background(), tt.slug)
			if tt.wantErr {
				assert.True(t, domain.IsNotFound(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.slug, detail.Slug)

			markup, ok := detail.Markup()
			assert.Equal(t, tt.wantMarkup, ok)

			if tt.wantMarkup {
				assert.Equal(t, svg, markup)
			}
		})
	}
}

func TestStore_Invalidate(t *testing.T) {
	next := mocks.NewMockCatalogStore(t)
	next.EXPECT().ReadAsset(mock.Anything, "github", domain.FileTypeSVG).Return([]byte(svg), nil).Twice()

	s := NewStore(next, NewLRU(8, 0), nil, discardLogger())
	ctx := context.Background()

	_, err := s.ReadAsset(ctx, "github", domain.FileTypeSVG)
	require.NoError(t, err)

	s.Invalidate(ctx)

	_, err = s.ReadAsset(ctx, "github", domain.FileTypeSVG)
	require.NoError(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "github/icon.svg", Key("github", ""))
	assert.Equal(t, "acme/icon.png", Key("acme", domain.FileTypePNG))
}
