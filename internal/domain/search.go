package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Search filters logos by a free-text query.
//
// A blank query returns logos unchanged. Otherwise a logo matches when its
// name, slug, category or any tag contains the query, ignoring case.
// Logos whose name or slug equals the query come first; relative order is
// otherwise preserved.
func Search(query string, logos []Logo) []Logo {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return logos
	}

	matches := make([]Logo, 0, len(logos))
	for _, logo := range logos {
		if logo.matches(q) {
			matches = append(matches, logo)
		}
	}

	slices.SortStableFunc(matches, func(a, b Logo) int {
		return a.rank(q) - b.rank(q)
	})

	return matches
}

// matches expects q to be lowercased already.
func (l Logo) matches(q string) bool {
	if strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.Slug), q) ||
		strings.Contains(strings.ToLower(l.Category), q) {
		return true
	}

	return slices.ContainsFunc(l.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), q)
	})
}

func (l Logo) rank(q string) int {
	if strings.ToLower(l.Name) == q || strings.ToLower(l.Slug) == q {
		return 0
	}

	return 1
}

// Sort returns a copy of logos ordered by name using the root collation.
// Logos with equal names keep their input order.
func Sort(logos []Logo, order SortOrder) []Logo {
	return SortLocale(logos, order, language.Und)
}

// SortLocale is Sort with an explicit collation locale.
func SortLocale(logos []Logo, order SortOrder, tag language.Tag) []Logo {
	sorted := slices.Clone(logos)
	compare := NameComparator(tag)

	sign := 1
	if order == SortNameDesc {
		sign = -1
	}

	slices.SortStableFunc(sorted, func(a, b Logo) int {
		return sign * compare(a.Name, b.Name)
	})

	return sorted
}

// NameComparator returns a locale-aware comparison for display names.
// Collators keep internal buffers, so the returned function must not be
// shared between goroutines.
func NameComparator(tag language.Tag) func(a, b string) int {
	return collate.New(tag).CompareString
}
