package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulkure2004/rahul-portfolio/internal/services"
	apperrors "github.com/rahulkure2004/rahul-portfolio/pkg/errors"
)

// InquiryHandler exposes the public contact form endpoint
type InquiryHandler struct {
	inquiries *services.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiries *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Submit handles POST /api/contact
func (h *InquiryHandler) Submit(c *gin.Context) {
	var in services.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, apperrors.New(apperrors.ErrCodeValidation, "Required fields missing"))
		return
	}

	inquiry, err := h.inquiries.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your inquiry has been submitted successfully.",
		"data":    inquiry,
	})
}
