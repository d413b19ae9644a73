package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/models"
	"github.com/Chajse/EduSumm/internal/repository"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	DeleteCascade(ctx context.Context, id string) (repository.CascadeResult, error)
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email" validate:"required"`
	Gender    string `json:"gender"`
	Course    string `json:"course"`
	Year      int    `json:"year"`
	Block     string `json:"block"`
}

// UpdateStudentRequest replaces every field of the student identified by ID.
type UpdateStudentRequest struct {
	ID        string `json:"id" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	Course    string `json:"course"`
	Year      int    `json:"year"`
	Block     string `json:"block"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service. cache may be nil.
func NewStudentService(repo studentRepository, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// List returns every student.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to fetch students")
	}
	return students, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (firstName, lastName, email)")
	}
	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthdate: req.Birthdate,
		Email:     req.Email,
		Gender:    req.Gender,
		Course:    req.Course,
		Year:      req.Year,
		Block:     req.Block,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to add student")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return student, nil
}

// Update replaces an existing student record.
func (s *StudentService) Update(ctx context.Context, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (id, firstName, lastName)")
	}
	student := &models.Student{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Birthdate: req.Birthdate,
		Email:     req.Email,
		Gender:    req.Gender,
		Course:    req.Course,
		Year:      req.Year,
		Block:     req.Block,
	}
	if err := s.repo.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.String("student_id", req.ID), zap.Error(err))
		return nil, storeError(err, "Student not found", "Failed to update student")
	}
	invalidateDashboard(ctx, s.cache, s.logger)
	return student, nil
}

// Delete removes the student together with its grades and enrollment history.
func (s *StudentService) Delete(ctx context.Context, req DeleteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "Missing student ID")
	}
	result, err := s.repo.DeleteCascade(ctx, req.ID)
	if err != nil {
		s.logger.Error("delete student failed", zap.String("student_id", req.ID), zap.Error(err))
		return storeError(err, "Student not found", "Failed to delete student and related records")
	}
	s.logger.Info("student deleted",
		zap.String("student_id", req.ID),
		zap.Int64("grades_removed", result.Grades),
		zap.Int64("enrollments_removed", result.Enrollments),
	)
	invalidateDashboard(ctx, s.cache, s.logger)
	return nil
}
