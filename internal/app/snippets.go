package app

import (
	"context"

	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/domain"
)

// CodeTabs returns the code tabs of a logo.
func (s *CatalogService) CodeTabs(ctx context.Context, slug string) (domain.LogoDetail, []codegen.Snippet, error) {
	detail, err := s.GetLogo(ctx, slug)
	if err != nil {
		return domain.LogoDetail{}, nil, err
	}

	tabs := codegen.Tabs(detail, s.snippets)
	for _, tab := range tabs {
		s.metrics.RecordSnippet(string(tab.Variant))
	}

	return detail, tabs, nil
}

// Snippet renders one variant for a logo. An unknown variant is a
// validation error; a markup variant for a raster logo is not found.
func (s *CatalogService) Snippet(ctx context.Context, slug, variant string) (codegen.Snippet, error) {
	v, ok := codegen.ParseVariant(variant)
	if !ok {
		return codegen.Snippet{}, domain.NewValidationErrorWithValue("variant", "unknown variant", variant)
	}

	detail, err := s.GetLogo(ctx, slug)
	if err != nil {
		return codegen.Snippet{}, err
	}

	snippet, err := codegen.Render(detail, v, s.snippets)
	if err != nil {
		return codegen.Snippet{}, err
	}

	s.metrics.RecordSnippet(string(v))

	return snippet, nil
}

// Asset is a downloadable logo file.
type Asset struct {
	Logo      domain.Logo
	Data      []byte
	MediaType string
	Filename  string
}

// Download returns the logo's asset. Vector logos are served from the
// detail markup; raster logos are read from the store.
func (s *CatalogService) Download(ctx context.Context, slug string) (Asset, error) {
	detail, err := s.GetLogo(ctx, slug)
	if err != nil {
		return Asset{}, err
	}

	asset := Asset{
		Logo:      detail.Logo,
		MediaType: detail.FileType.MediaType(),
		Filename:  slug + "." + detail.FileType.Extension(),
	}

	if markup, ok := detail.Markup(); ok {
		asset.Data = []byte(markup)
		return asset, nil
	}

	data, err := s.store.ReadAsset(ctx, slug, detail.FileType)
	if err != nil {
		return Asset{}, domain.LogoNotFound(slug)
	}

	asset.Data = data

	return asset, nil
}
