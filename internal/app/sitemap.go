package app

import (
	"context"
	"time"
)

// Sitemap change frequencies and priorities.
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// SitemapEntry is one URL of the public site.
type SitemapEntry struct {
	Loc          string
	LastModified time.Time
	ChangeFreq   string
	Priority     float64
}

// Sitemap lists the home page, the legal pages and one page per logo.
func (s *CatalogService) Sitemap(ctx context.Context) []SitemapEntry {
	slugs := s.ListSlugs(ctx)
	now := time.Now().UTC()

	entries := make([]SitemapEntry, 0, len(slugs)+3)
	entries = append(entries,
		SitemapEntry{Loc: s.siteBaseURL, ChangeFreq: ChangeDaily, Priority: 1, LastModified: now},
		SitemapEntry{Loc: s.siteBaseURL + "/privacy", ChangeFreq: ChangeMonthly, Priority: 0.5, LastModified: now},
		SitemapEntry{Loc: s.siteBaseURL + "/terms", ChangeFreq: ChangeMonthly, Priority: 0.5, LastModified: now},
	)

	for _, slug := range slugs {
		entries = append(entries, SitemapEntry{
			Loc:          s.siteBaseURL + "/logo/" + slug,
			LastModified: now,
			ChangeFreq:   ChangeWeekly,
			Priority:     0.8,
		})
	}

	return entries
}
