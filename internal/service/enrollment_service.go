package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/models"
)

type enrollmentRepository interface {
	List(ctx context.Context) ([]models.EnrollmentDetail, error)
	Create(ctx context.Context, enrollment *models.EnrollmentHistory) error
	Update(ctx context.Context, enrollment *models.EnrollmentHistory) error
	Delete(ctx context.Context, id string) error
}

// CreateEnrollmentRequest records a student's enrollment in a subject.
type CreateEnrollmentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	Semester  string `json:"semester" validate:"required"`
	Year      int    `json:"year" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// UpdateEnrollmentRequest replaces the enrollment identified by ID.
type UpdateEnrollmentRequest struct {
	ID        string `json:"id" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	Semester  string `json:"semester"`
	Year      int    `json:"year"`
	Status    string `json:"status"`
}

// EnrollmentService manages enrollment history.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, logger: logger}
}

// List returns enrollment history enriched with student and subject info.
func (s *EnrollmentService) List(ctx context.Context) ([]models.EnrollmentDetail, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list enrollments failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to fetch enrollments")
	}
	return items, nil
}

// Create adds an enrollment history row.
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (*models.EnrollmentHistory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (studentId, subjectId, semester, year, status)")
	}
	item := &models.EnrollmentHistory{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Semester:  req.Semester,
		Year:      req.Year,
		Status:    req.Status,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("create enrollment failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to add enrollment")
	}
	return item, nil
}

// Update replaces an enrollment history row.
func (s *EnrollmentService) Update(ctx context.Context, req UpdateEnrollmentRequest) (*models.EnrollmentHistory, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (id, studentId, subjectId)")
	}
	item := &models.EnrollmentHistory{
		ID:        req.ID,
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Semester:  req.Semester,
		Year:      req.Year,
		Status:    req.Status,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("update enrollment failed", zap.String("enrollment_id", req.ID), zap.Error(err))
		return nil, storeError(err, "Enrollment not found", "Failed to update enrollment")
	}
	return item, nil
}

// Delete removes an enrollment history row.
func (s *EnrollmentService) Delete(ctx context.Context, req DeleteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "Missing enrollment ID")
	}
	if err := s.repo.Delete(ctx, req.ID); err != nil {
		s.logger.Error("delete enrollment failed", zap.String("enrollment_id", req.ID), zap.Error(err))
		return storeError(err, "Enrollment not found", "Failed to delete enrollment")
	}
	return nil
}
