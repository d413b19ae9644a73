package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/internal/repository"
	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

type subjectRepository interface {
	List(ctx context.Context) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id string) error
}

// CreateSubjectRequest holds payload for creating subjects.
type CreateSubjectRequest struct {
	SubjectCode    string `json:"subjectCode" validate:"required"`
	SubjectName    string `json:"subjectName" validate:"required"`
	InstructorName string `json:"instructorName"`
	Credits        int    `json:"credits"`
}

// UpdateSubjectRequest replaces every field of the subject identified by ID.
type UpdateSubjectRequest struct {
	ID             string `json:"id" validate:"required"`
	SubjectCode    string `json:"subjectCode" validate:"required"`
	SubjectName    string `json:"subjectName" validate:"required"`
	InstructorName string `json:"instructorName"`
	Credits        int    `json:"credits"`
}

// SubjectService manages subject catalogue operations.
type SubjectService struct {
	repo      subjectRepository
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubjectService creates a SubjectService instance. cache may be nil.
func NewSubjectService(repo subjectRepository, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns every subject.
func (s *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list subjects failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to fetch subjects")
	}
	return subjects, nil
}

// Create adds a subject.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (subjectCode, subjectName)")
	}
	subject := &models.Subject{
		SubjectCode:    req.SubjectCode,
		SubjectName:    req.SubjectName,
		InstructorName: req.InstructorName,
		Credits:        req.Credits,
	}
	if err := s.repo.Create(ctx, subject); err != nil {
		s.logger.Error("create subject failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to add subject")
	}
	return subject, nil
}

// Update replaces an existing subject.
func (s *SubjectService) Update(ctx context.Context, req UpdateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (id, subjectCode, subjectName)")
	}
	subject := &models.Subject{
		ID:             req.ID,
		SubjectCode:    req.SubjectCode,
		SubjectName:    req.SubjectName,
		InstructorName: req.InstructorName,
		Credits:        req.Credits,
	}
	if err := s.repo.Update(ctx, subject); err != nil {
		s.logger.Error("update subject failed", zap.String("subject_id", req.ID), zap.Error(err))
		return nil, storeError(err, "Subject not found", "Failed to update subject")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return subject, nil
}

// Delete removes a subject unless grades or enrollment history reference it.
func (s *SubjectService) Delete(ctx context.Context, req DeleteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "Missing subject ID")
	}
	if err := s.repo.Delete(ctx, req.ID); err != nil {
		if errors.Is(err, repository.ErrHasRelatedRecords) {
			s.logger.Info("subject delete blocked by related records", zap.String("subject_id", req.ID))
			return appErrors.Clone(appErrors.ErrHasRelatedRecords, "This subject cannot be deleted because it is being used in grades or enrollments. Please delete those records first.")
		}
		s.logger.Error("delete subject failed", zap.String("subject_id", req.ID), zap.Error(err))
		return storeError(err, "Subject not found", "Failed to delete subject")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return nil
}
