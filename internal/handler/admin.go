package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulkure2004/rahul-portfolio/internal/services"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

// AdminHandler exposes the authenticated dashboard endpoints
type AdminHandler struct {
	inquiries *services.InquiryService
	queries   *services.QueryService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(inquiries *services.InquiryService, queries *services.QueryService) *AdminHandler {
	return &AdminHandler{
		inquiries: inquiries,
		queries:   queries,
	}
}

// ListMessages handles GET /api/admin/messages
func (h *AdminHandler) ListMessages(c *gin.Context) {
	inquiries, err := h.queries.List(c.Request.Context(), c.DefaultQuery("sort", "desc"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
	})
}

// FilterMessages handles GET /api/admin/messages/filter
func (h *AdminHandler) FilterMessages(c *gin.Context) {
	inquiries, err := h.queries.Filter(
		c.Request.Context(),
		c.Query("projectType"),
		c.Query("fromDate"),
		c.Query("toDate"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
	})
}

// SearchMessages handles GET /api/admin/messages/search
func (h *AdminHandler) SearchMessages(c *gin.Context) {
	inquiries, err := h.queries.Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
	})
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/admin/message/:id/status
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.New(apperrors.ErrCodeValidation, "status is required"))
		return
	}

	updated, err := h.inquiries.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Status updated and client notified",
		"updatedStatus": updated,
	})
}

// DeleteMessage handles DELETE /api/admin/message/:id
func (h *AdminHandler) DeleteMessage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.inquiries.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "invalid id")
	}
	return uint(id), nil
}
