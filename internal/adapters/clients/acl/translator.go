package acl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsamuelsen/logodir/internal/domain"
)

// LogoDTO is a record of the published logos.json.
type LogoDTO struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Website  string   `json:"website"`
	FileType string   `json:"fileType"`
}

// Translator converts one external value into its domain form, rejecting
// values the domain cannot represent.
type Translator[External any, Domain any] func(ext *External) (Domain, error)

// TranslateEach applies translate to every item. Items that fail are
// skipped and their errors, tagged with the index, are returned alongside.
func TranslateEach[E any, D any](items []E, translate Translator[E, D]) ([]D, []error) {
	out := make([]D, 0, len(items))

	var errs []error

	for i := range items {
		d, err := translate(&items[i])
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}

		out = append(out, d)
	}

	return out, errs
}

// DecodeJSON decodes a response body.
func DecodeJSON[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decoding response: %w", err)
	}

	return v, nil
}

// TranslateLogo validates a published record.
func TranslateLogo(ext *LogoDTO) (domain.Logo, error) {
	if err := ValidateRequired(ext.Slug, "slug"); err != nil {
		return domain.Logo{}, err
	}

	if err := ValidateSlug(ext.Slug); err != nil {
		return domain.Logo{}, err
	}

	if err := ValidateRequired(ext.Name, "name"); err != nil {
		return domain.Logo{}, err
	}

	ft, err := domain.ParseFileType(ext.FileType)
	if err != nil {
		return domain.Logo{}, err
	}

	return domain.Logo{
		Slug:     ext.Slug,
		Name:     ext.Name,
		Category: ext.Category,
		Tags:     ext.Tags,
		Website:  ext.Website,
		FileType: ft,
	}, nil
}

// ValidateRequired rejects an empty value.
func ValidateRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "is required")
	}

	return nil
}

// ValidateSlug rejects slugs that cannot name an asset directory.
func ValidateSlug(slug string) error {
	if slug != strings.ToLower(slug) {
		return domain.NewValidationErrorWithValue("slug", "must be lowercase", slug)
	}

	if slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return domain.NewValidationErrorWithValue("slug", "must be a single path segment", slug)
	}

	return nil
}
