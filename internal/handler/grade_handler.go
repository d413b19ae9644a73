package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/internal/service"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
	"github.com/Chajse/EduSumm/pkg/response"
)

type gradeService interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error)
	Create(ctx context.Context, req service.CreateGradeRequest) (*models.Grade, error)
}

type gradeExporter interface {
	Grades(ctx context.Context, format string, filter models.GradeFilter) (*service.ExportFile, error)
}

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades   gradeService
	exporter gradeExporter
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(grades gradeService, exporter gradeExporter) *GradeHandler {
	return &GradeHandler{grades: grades, exporter: exporter}
}

// List godoc
// @Summary List grades with student and subject details
// @Tags Grades
// @Produce json
// @Param studentId query string false "Filter by student"
// @Param subjectId query string false "Filter by subject"
// @Param semester query string false "Filter by semester"
// @Param year query int false "Filter by year"
// @Success 200 {object} response.Envelope
// @Router /api/grades [get]
func (h *GradeHandler) List(c *gin.Context) {
	filter, err := gradeFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	grades, err := h.grades.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grades)
}

// Create godoc
// @Summary Submit a grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.CreateGradeRequest true "Grade payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /api/grades [post]
func (h *GradeHandler) Create(c *gin.Context) {
	var req service.CreateGradeRequest
	if !bindJSON(c, &req) {
		return
	}
	grade, err := h.grades.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Grade submitted successfully", grade)
}

// Export godoc
// @Summary Download grades as CSV or PDF
// @Tags Grades
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param studentId query string false "Filter by student"
// @Param subjectId query string false "Filter by subject"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /api/grades/export [get]
func (h *GradeHandler) Export(c *gin.Context) {
	filter, err := gradeFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exporter.Grades(c.Request.Context(), c.Query("format"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func gradeFilterFromQuery(c *gin.Context) (models.GradeFilter, error) {
	filter := models.GradeFilter{
		StudentID: strings.TrimSpace(c.Query("studentId")),
		SubjectID: strings.TrimSpace(c.Query("subjectId")),
		Semester:  strings.TrimSpace(c.Query("semester")),
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "year must be a number")
		}
		filter.Year = year
	}
	return filter, nil
}
