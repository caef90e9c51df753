package api

import (
	"github.com/gin-gonic/gin"
)

// ListNews handles GET /api/news.
func (h *Handler) ListNews(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.ListNews(c.Request.Context(), q)
	respond(c, resp, err)
}

// GetNews handles GET /api/news/:id.
func (h *Handler) GetNews(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.GetNewsDetail(c.Request.Context(), c.Param("id"), q)
	respond(c, resp, err)
}

// ListStaff handles GET /api/staff.
func (h *Handler) ListStaff(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.ListStaff(c.Request.Context(), q)
	respond(c, resp, err)
}

// ListFaq handles GET /api/faq.
func (h *Handler) ListFaq(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.ListFaq(c.Request.Context(), q)
	respond(c, resp, err)
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.ListServices(c.Request.Context(), q)
	respond(c, resp, err)
}

// ListRentalCategories handles GET /api/rental-categories.
func (h *Handler) ListRentalCategories(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.ListRentalCategory(c.Request.Context(), q)
	respond(c, resp, err)
}

// GetRentalCategory handles GET /api/rental-categories/:slug.
func (h *Handler) GetRentalCategory(c *gin.Context) {
	resp, err := h.content.GetRentalCategoryBySlug(c.Request.Context(), c.Param("slug"))
	respond(c, resp, err)
}

// ListSaleItems handles GET /api/sale-items.
func (h *Handler) ListSaleItems(c *gin.Context) {
	q, err := parseQueries(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	resp, err := h.content.ListSaleItem(c.Request.Context(), q)
	respond(c, resp, err)
}

// GetSaleItem handles GET /api/sale-items/:slug. The segment may be a slug or
// a content id.
func (h *Handler) GetSaleItem(c *gin.Context) {
	resp, err := h.content.GetSaleItemBySlug(c.Request.Context(), c.Param("slug"))
	respond(c, resp, err)
}

// GetRecruit handles GET /api/recruit.
func (h *Handler) GetRecruit(c *gin.Context) {
	resp, err := h.content.GetRecruit(c.Request.Context())
	respond(c, resp, err)
}
