package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chajse/EduSumm/internal/service"
	"github.com/Chajse/EduSumm/pkg/response"
)

type summaryService interface {
	Summarize(ctx context.Context, req service.SummaryRequest) (string, error)
	DatabaseSummary(ctx context.Context) string
}

// SummaryHandler exposes text summarization.
type SummaryHandler struct {
	summaries summaryService
}

// NewSummaryHandler constructs SummaryHandler.
func NewSummaryHandler(summaries summaryService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

// Summarize godoc
// @Summary Summarize free text
// @Tags Summary
// @Accept json
// @Produce json
// @Param payload body service.SummaryRequest true "Text to summarize"
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /api/summary [post]
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req service.SummaryRequest
	if !bindJSON(c, &req) {
		return
	}
	summary, err := h.summaries.Summarize(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Database godoc
// @Summary Plain-text digest of recorded grades
// @Tags Summary
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/summary [get]
func (h *SummaryHandler) Database(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.summaries.DatabaseSummary(c.Request.Context())})
}
