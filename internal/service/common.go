package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	appErrors "github.com/Chajse/EduSumm/pkg/errors"
)

// DashboardCachePattern matches every cached dashboard payload.
const DashboardCachePattern = "dashboard:*"

// cacheInvalidator drops cached payloads whose inputs changed.
type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// DeleteRequest identifies the record to delete.
type DeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

func invalidateDashboard(ctx context.Context, cache cacheInvalidator, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, DashboardCachePattern); err != nil {
		logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

// storeError maps a repository error to a typed error, turning sql.ErrNoRows
// into notFound.
func storeError(err error, notFound, internal string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Internal(err, internal)
}

func validationError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
