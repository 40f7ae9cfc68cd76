package dto

import (
	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/domain"
)

// LogoResponse is a catalog record.
type LogoResponse struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags"`
	Website  string   `json:"website,omitempty"`
	FileType string   `json:"fileType"`
	CDNURL   string   `json:"cdnUrl"`
}

// LogoDetailResponse is a record with its markup, when it has any.
type LogoDetailResponse struct {
	LogoResponse

	HasMarkup bool   `json:"hasMarkup"`
	Markup    string `json:"markup,omitempty"`
}

// CodeTabResponse is one generated snippet. HTML is set when the caller
// asked for highlighted output.
type CodeTabResponse struct {
	Variant  string `json:"variant"`
	Label    string `json:"label"`
	Language string `json:"language"`
	Filename string `json:"filename"`
	Code     string `json:"code"`
	HTML     string `json:"html,omitempty"`
}

// CodeTabsResponse lists the tabs of one logo.
type CodeTabsResponse struct {
	Slug  string            `json:"slug"`
	Theme string            `json:"theme,omitempty"`
	Tabs  []CodeTabResponse `json:"tabs"`
}

// CodeRequest is the query of the code endpoints.
type CodeRequest struct {
	Format string `form:"format" validate:"omitempty,oneof=text html"`
	Theme  string `form:"theme"  validate:"omitempty,oneof=dark light"`
}

// Highlighted reports whether HTML output was requested.
func (r CodeRequest) Highlighted() bool {
	return r.Format == "html"
}

// SlugsResponse lists every slug in catalog order.
type SlugsResponse struct {
	Slugs []string `json:"slugs"`
	Total int      `json:"total"`
}

// NewLogoResponse converts a record. cdnURL is resolved by the caller.
func NewLogoResponse(logo domain.Logo, cdnURL string) LogoResponse {
	tags := logo.Tags
	if tags == nil {
		tags = []string{}
	}

	return LogoResponse{
		Slug:     logo.Slug,
		Name:     logo.Name,
		Category: logo.Category,
		Tags:     tags,
		Website:  logo.Website,
		FileType: string(logo.FileType.OrDefault()),
		CDNURL:   cdnURL,
	}
}

// NewLogoDetailResponse converts a detail.
func NewLogoDetailResponse(detail domain.LogoDetail, cdnURL string) LogoDetailResponse {
	markup, ok := detail.Markup()

	return LogoDetailResponse{
		LogoResponse: NewLogoResponse(detail.Logo, cdnURL),
		HasMarkup:    ok,
		Markup:       markup,
	}
}

// NewCodeTabResponse converts a generated snippet.
func NewCodeTabResponse(s codegen.Snippet) CodeTabResponse {
	return CodeTabResponse{
		Variant:  string(s.Variant),
		Label:    s.Label,
		Language: s.Language,
		Filename: s.Filename,
		Code:     s.Code,
	}
}
