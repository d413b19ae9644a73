package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/models"
)

type gradeRepository interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.Grade, error)
	ListDetailed(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error)
	Create(ctx context.Context, grade *models.Grade) error
}

// CreateGradeRequest records a midterm/final pair. Scores are pointers so an
// explicit 0 is accepted while an absent score is rejected.
type CreateGradeRequest struct {
	StudentID    string   `json:"studentId" validate:"required"`
	SubjectID    string   `json:"subjectId" validate:"required"`
	MidtermGrade *float64 `json:"midtermGrade" validate:"required"`
	FinalGrade   *float64 `json:"finalGrade" validate:"required"`
	Semester     string   `json:"semester" validate:"required"`
	Year         int      `json:"year" validate:"required"`
}

// GradeService handles grade submissions and listings.
type GradeService struct {
	repo      gradeRepository
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs the grade service. cache may be nil.
func NewGradeService(repo gradeRepository, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns grades joined with their student and subject.
func (s *GradeService) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	grades, err := s.repo.ListDetailed(ctx, filter)
	if err != nil {
		s.logger.Error("list grades failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to fetch grades")
	}
	return grades, nil
}

// Create stores a new grade.
func (s *GradeService) Create(ctx context.Context, req CreateGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields")
	}
	grade := &models.Grade{
		StudentID:    req.StudentID,
		SubjectID:    req.SubjectID,
		MidtermGrade: req.MidtermGrade,
		FinalGrade:   req.FinalGrade,
		Semester:     req.Semester,
		Year:         req.Year,
	}
	if err := s.repo.Create(ctx, grade); err != nil {
		s.logger.Error("create grade failed", zap.String("student_id", req.StudentID), zap.Error(err))
		return nil, storeError(err, "", "Failed to submit grade")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return grade, nil
}
