package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chajse/EduSumm/internal/models"
)

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// CreateUserRequest is the payload used to create users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateUserRequest replaces the user identified by ID.
type UpdateUserRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age"`
	Email string `json:"email" validate:"required"`
}

// UserService contains business logic for user records.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService builds a new user service instance.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to fetch users")
	}
	return users, nil
}

// Create stores a user.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (name, age, email)")
	}
	user := &models.User{Name: req.Name, Age: req.Age, Email: req.Email}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, storeError(err, "", "Failed to add user")
	}
	return user, nil
}

// Update replaces a user.
func (s *UserService) Update(ctx context.Context, req UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "Missing required fields (id, name, email)")
	}
	user := &models.User{ID: req.ID, Name: req.Name, Age: req.Age, Email: req.Email}
	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("user_id", req.ID), zap.Error(err))
		return nil, storeError(err, "User not found", "Failed to update user")
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, req DeleteRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err, "Missing user ID")
	}
	if err := s.repo.Delete(ctx, req.ID); err != nil {
		s.logger.Error("delete user failed", zap.String("user_id", req.ID), zap.Error(err))
		return storeError(err, "User not found", "Failed to delete user")
	}
	return nil
}
