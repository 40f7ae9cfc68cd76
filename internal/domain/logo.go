package domain

import (
	"fmt"
	"strings"
)

// FileType identifies the asset format stored for a logo.
type FileType string

// Supported asset formats.
const (
	FileTypeSVG FileType = "svg"
	FileTypePNG FileType = "png"
	FileTypeJPG FileType = "jpg"
)

// ParseFileType converts a raw catalog value into a FileType.
// An empty value yields FileTypeSVG.
func ParseFileType(raw string) (FileType, error) {
	switch ft := FileType(strings.ToLower(strings.TrimSpace(raw))); ft {
	case "":
		return FileTypeSVG, nil
	case FileTypeSVG, FileTypePNG, FileTypeJPG:
		return ft, nil
	default:
		return "", NewValidationErrorWithValue("fileType", "must be one of svg, png, jpg", raw)
	}
}

// OrDefault returns the file type, treating an unset value as svg.
func (f FileType) OrDefault() FileType {
	if f == "" {
		return FileTypeSVG
	}

	return f
}

// Extension returns the file extension used by the asset path.
func (f FileType) Extension() string {
	return string(f.OrDefault())
}

// HasMarkup reports whether assets of this type carry text markup.
func (f FileType) HasMarkup() bool {
	return f.OrDefault() == FileTypeSVG
}

// MediaType returns the MIME type served for the asset.
func (f FileType) MediaType() string {
	switch f.OrDefault() {
	case FileTypePNG:
		return "image/png"
	case FileTypeJPG:
		return "image/jpeg"
	default:
		return "image/svg+xml"
	}
}

// Logo is one catalog entry. Slug is its only stable identity.
type Logo struct {
	Slug     string
	Name     string
	Category string
	Tags     []string
	Website  string
	FileType FileType
}

// DisplayName returns the name used for generated identifiers,
// falling back to the slug when the name is blank.
func (l Logo) DisplayName() string {
	if name := strings.TrimSpace(l.Name); name != "" {
		return name
	}

	return strings.TrimSpace(l.Slug)
}

// LogoDetail is a Logo plus the markup read for it, when there is any.
//
// Markup is only ever present for svg records whose asset was read
// successfully. Use Markup to access it.
type LogoDetail struct {
	Logo

	markup    string
	hasMarkup bool
}

// NewLogoDetail returns a detail without markup, as used for raster records.
func NewLogoDetail(logo Logo) LogoDetail {
	return LogoDetail{Logo: logo}
}

// NewLogoDetailWithMarkup returns a detail carrying the raw svg markup.
func NewLogoDetailWithMarkup(logo Logo, markup string) LogoDetail {
	return LogoDetail{Logo: logo, markup: markup, hasMarkup: true}
}

// Markup returns the raw markup and whether it is present.
func (d LogoDetail) Markup() (string, bool) {
	return d.markup, d.hasMarkup
}

// SortOrder selects the comparator applied by Sort.
type SortOrder string

// Supported sort orders.
const (
	SortNameAsc  SortOrder = "name-asc"
	SortNameDesc SortOrder = "name-desc"
)

// ParseSortOrder validates a caller-supplied order. Empty means name-asc.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch order := SortOrder(strings.TrimSpace(raw)); order {
	case "":
		return SortNameAsc, nil
	case SortNameAsc, SortNameDesc:
		return order, nil
	default:
		return "", NewValidationErrorWithValue("sort",
			fmt.Sprintf("must be %s or %s", SortNameAsc, SortNameDesc), raw)
	}
}

// GridSize is the tile size preset of the browse grid.
type GridSize string

// Grid size presets.
const (
	GridSmall  GridSize = "small"
	GridMedium GridSize = "medium"
	GridLarge  GridSize = "large"
)

// ParseGridSize validates a grid size preset. Empty means medium.
func ParseGridSize(raw string) (GridSize, error) {
	switch size := GridSize(strings.TrimSpace(raw)); size {
	case "":
		return GridMedium, nil
	case GridSmall, GridMedium, GridLarge:
		return size, nil
	default:
		return "", NewValidationErrorWithValue("size", "must be small, medium or large", raw)
	}
}

// Columns returns how many tiles fit in one row at this preset.
func (g GridSize) Columns() int {
	if g == GridSmall {
		return 8
	}

	return 6
}
