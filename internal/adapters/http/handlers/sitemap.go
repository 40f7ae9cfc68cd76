package handlers

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/logodir/internal/app"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapHandler serves /sitemap.xml.
type SitemapHandler struct {
	service *app.CatalogService
}

// NewSitemapHandler creates a SitemapHandler.
func NewSitemapHandler(service *app.CatalogService) *SitemapHandler {
	return &SitemapHandler{service: service}
}

// Sitemap writes the sitemap for the current catalog.
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	entries := h.service.Sitemap(c.Request.Context())

	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]sitemapURL, len(entries))}
	for i, entry := range entries {
		set.URLs[i] = sitemapURL{
			Loc:        entry.Loc,
			ChangeFreq: entry.ChangeFreq,
			Priority:   strconv.FormatFloat(entry.Priority, 'f', 1, 64),
		}

		if !entry.LastModified.IsZero() {
			set.URLs[i].LastMod = entry.LastModified.Format("2006-01-02")
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
