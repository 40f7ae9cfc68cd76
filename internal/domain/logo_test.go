package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		raw     string
		want    FileType
		wantErr bool
	}{
		{"", FileTypeSVG, false},
		{"svg", FileTypeSVG, false},
		{"PNG", FileTypePNG, false},
		{" jpg ", FileTypeJPG, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFileType(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileType_Defaults(t *testing.T) {
	var unset FileType

	assert.Equal(t, FileTypeSVG, unset.OrDefault())
	assert.Equal(t, "svg", unset.Extension())
	assert.True(t, unset.HasMarkup())
	assert.Equal(t, "image/svg+xml", unset.MediaType())

	assert.False(t, FileTypePNG.HasMarkup())
	assert.Equal(t, "image/png", FileTypePNG.MediaType())
	assert.Equal(t, "image/jpeg", FileTypeJPG.MediaType())
	assert.Equal(t, "jpg", FileTypeJPG.Extension())
}

func TestLogo_DisplayName(t *testing.T) {
	assert.Equal(t, "GitHub", Logo{Slug: "github", Name: "GitHub"}.DisplayName())
	assert.Equal(t, "github", Logo{Slug: "github", Name: "  "}.DisplayName())
	assert.Empty(t, Logo{}.DisplayName())
}

func TestLogoDetail_Markup(t *testing.T) {
	logo := Logo{Slug: "github", Name: "GitHub"}

	withMarkup := NewLogoDetailWithMarkup(logo, "<svg/>")
	markup, ok := withMarkup.Markup()
	assert.True(t, ok)
	assert.Equal(t, "<svg/>", markup)
	assert.Equal(t, "github", withMarkup.Slug)

	withoutMarkup := NewLogoDetail(logo)
	markup, ok = withoutMarkup.Markup()
	assert.False(t, ok)
	assert.Empty(t, markup)

	// An empty asset is still markup that was read.
	empty := NewLogoDetailWithMarkup(logo, "")
	_, ok = empty.Markup()
	assert.True(t, ok)
}

func TestParseSortOrder(t *testing.T) {
	order, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortNameAsc, order)

	order, err = ParseSortOrder("name-desc")
	require.NoError(t, err)
	assert.Equal(t, SortNameDesc, order)

	_, err = ParseSortOrder("popularity")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestParseGridSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    GridSize
		columns int
	}{
		{"", GridMedium, 6},
		{"small", GridSmall, 8},
		{"medium", GridMedium, 6},
		{"large", GridLarge, 6},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseGridSize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.columns, got.Columns())
		})
	}

	_, err := ParseGridSize("huge")
	require.Error(t, err)
}
