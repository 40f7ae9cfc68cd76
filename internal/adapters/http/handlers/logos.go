package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/logodir/internal/adapters/http/dto"
	"github.com/jsamuelsen/logodir/internal/app"
	"github.com/jsamuelsen/logodir/internal/codegen"
	"github.com/jsamuelsen/logodir/internal/domain"
	"github.com/jsamuelsen/logodir/internal/ports"
)

// LogoHandler serves the catalog endpoints.
type LogoHandler struct {
	service     *app.CatalogService
	highlighter ports.Highlighter
}

// NewLogoHandler creates a LogoHandler. A nil highlighter disables
// format=html on the code endpoints.
func NewLogoHandler(service *app.CatalogService, highlighter ports.Highlighter) *LogoHandler {
	return &LogoHandler{service: service, highlighter: highlighter}
}

// RegisterRoutes mounts the catalog endpoints on rg, normally /api/v1.
func (h *LogoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	logos := rg.Group("/logos")
	logos.GET("", h.Browse)
	logos.GET("/:slug", h.Detail)
	logos.GET("/:slug/code", h.CodeTabs)
	logos.GET("/:slug/code/:variant", h.Snippet)
	logos.GET("/:slug/download", h.Download)

	rg.GET("/slugs", h.Slugs)
}

// Browse handles GET /api/v1/logos: search, sort and one page of results.
func (h *LogoHandler) Browse(c *gin.Context) {
	var req dto.BrowseRequest
	if err := dto.BindQuery(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	result, err := h.service.Browse(c.Request.Context(), app.BrowseQuery{
		Query:    req.Query,
		Sort:     domain.SortOrder(req.Sort),
		Page:     req.Page,
		PageSize: req.PageSize,
		Size:     domain.GridSize(req.Size),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]dto.LogoResponse, len(result.Logos))
	for i, logo := range result.Logos {
		items[i] = dto.NewLogoResponse(logo, h.service.CDNURL(logo))
	}

	page := dto.Page[dto.LogoResponse]{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
		Sort:       string(result.Sort),
		Size:       string(result.Size),
		Columns:    result.Columns,
	}

	c.Header("X-Total-Count", strconv.Itoa(result.Total))
	c.JSON(http.StatusOK, page)
}

// Detail handles GET /api/v1/logos/:slug.
func (h *LogoHandler) Detail(c *gin.Context) {
	detail, err := h.service.GetLogo(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLogoDetailResponse(detail, h.service.CDNURL(detail.Logo)))
}

// CodeTabs handles GET /api/v1/logos/:slug/code.
func (h *LogoHandler) CodeTabs(c *gin.Context) {
	var req dto.CodeRequest
	if err := dto.BindQuery(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	detail, snippets, err := h.service.CodeTabs(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := dto.CodeTabsResponse{Slug: detail.Slug, Tabs: make([]dto.CodeTabResponse, len(snippets))}

	for i, snippet := range snippets {
		tab, err := h.render(snippet, req)
		if err != nil {
			dto.HandleError(c, err)
			return
		}

		resp.Tabs[i] = tab
	}

	if req.Highlighted() {
		resp.Theme = themeOf(req)
	}

	c.JSON(http.StatusOK, resp)
}

// Snippet handles GET /api/v1/logos/:slug/code/:variant. With format=text
// and Accept: text/plain it returns the bare code.
func (h *LogoHandler) Snippet(c *gin.Context) {
	var req dto.CodeRequest
	if err := dto.BindQuery(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	snippet, err := h.service.Snippet(c.Request.Context(), c.Param("slug"), c.Param("variant"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if !req.Highlighted() && c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
		c.Header("Content-Disposition", `inline; filename="`+snippet.Filename+`"`)
		c.String(http.StatusOK, snippet.Code)

		return
	}

	tab, err := h.render(snippet, req)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tab)
}

// Download handles GET /api/v1/logos/:slug/download.
func (h *LogoHandler) Download(c *gin.Context) {
	asset, err := h.service.Download(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+asset.Filename+`"`)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, asset.MediaType, asset.Data)
}

// Slugs handles GET /api/v1/slugs.
func (h *LogoHandler) Slugs(c *gin.Context) {
	slugs := h.service.ListSlugs(c.Request.Context())

	c.JSON(http.StatusOK, dto.SlugsResponse{Slugs: slugs, Total: len(slugs)})
}

func (h *LogoHandler) render(snippet codegen.Snippet, req dto.CodeRequest) (dto.CodeTabResponse, error) {
	tab := dto.NewCodeTabResponse(snippet)
	if !req.Highlighted() {
		return tab, nil
	}

	if h.highlighter == nil {
		return tab, domain.NewValidationErrorWithValue("format", "highlighting is not enabled", req.Format)
	}

	html, err := h.highlighter.HTML(snippet.Code, snippet.Language, themeOf(req))
	if err != nil {
		return tab, err
	}

	tab.HTML = html

	return tab, nil
}

func themeOf(req dto.CodeRequest) string {
	if req.Theme == "" {
		return ports.ThemeDark
	}

	return req.Theme
}
