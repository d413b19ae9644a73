package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/internal/service"
	"github.com/Chajse/EduSumm/pkg/response"
)

type enrollmentService interface {
	List(ctx context.Context) ([]models.EnrollmentDetail, error)
	Create(ctx context.Context, req service.CreateEnrollmentRequest) (*models.EnrollmentHistory, error)
	Update(ctx context.Context, req service.UpdateEnrollmentRequest) (*models.EnrollmentHistory, error)
	Delete(ctx context.Context, req service.DeleteRequest) error
}

// EnrollmentHandler exposes enrollment history endpoints.
type EnrollmentHandler struct {
	enrollments enrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List enrollment history
// @Tags Enrollment
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/enrollment [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	items, err := h.enrollments.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create enrollment
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param payload body service.CreateEnrollmentRequest true "Enrollment payload"
// @Success 200 {object} response.Envelope
// @Router /api/enrollment [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.CreateEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.enrollments.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Enrollment added successfully")
}

// Update godoc
// @Summary Update enrollment
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param payload body service.UpdateEnrollmentRequest true "Enrollment payload"
// @Success 200 {object} response.Envelope
// @Router /api/enrollment [put]
func (h *EnrollmentHandler) Update(c *gin.Context) {
	var req service.UpdateEnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.enrollments.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Enrollment updated successfully")
}

// Delete godoc
// @Summary Delete enrollment
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param payload body service.DeleteRequest true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Router /api/enrollment [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	var req service.DeleteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.enrollments.Delete(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Enrollment deleted successfully")
}
