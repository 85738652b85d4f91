package services

import (
	"context"
	"log/slog"

	"github.com/pontualize/timesheet_app/internal/apperrors"
	"github.com/pontualize/timesheet_app/internal/core/domain"
	"github.com/pontualize/timesheet_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequirePermission rejects the operation with apperrors.ErrForbidden when
// the caller's capability set does not grant the required permission.
func (s *BaseService) RequirePermission(ctx context.Context, perms domain.PermissionSet, required domain.Permission) error {
	if !perms.Has(required) {
		s.LogDebug(ctx, "Permission denied", slog.String("required", string(required)))
		return apperrors.ErrForbidden
	}
	return nil
}
