package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"room-booking/internal/dto/response"
	"room-booking/internal/scheduler"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP responses. Scheduler
// refusals are client errors with their own payloads; everything unmapped is
// a 500 with the detail kept in the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var quotaErr *scheduler.QuotaExceededError
	var conflictErr *scheduler.ConflictError
	var validationErr *scheduler.ValidationError
	var formatErr *scheduler.FormatError

	switch {
	case errors.As(err, &quotaErr):
		log.Warn(operation+" refused - quota exceeded",
			zap.Float64("current_hours", quotaErr.CurrentHours),
			zap.Float64("attempted_hours", quotaErr.AttemptedHours))
		utils.ResponseBadRequest(w, quotaErr.Error(), response.QuotaExceededResponse{
			CurrentHours:   quotaErr.CurrentHours,
			AttemptedHours: quotaErr.AttemptedHours,
			CapHours:       quotaErr.Cap,
		})

	case errors.As(err, &conflictErr):
		log.Warn(operation+" refused - slot conflict", zap.Error(err))
		utils.ResponseBadRequest(w, conflictErr.Error(), nil)

	case errors.As(err, &validationErr), errors.As(err, &formatErr):
		log.Warn(operation+" refused - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "resource not found")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation + " failed - forbidden")
		utils.ResponseForbidden(w, "you may not perform this action")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrRoomNameTaken),
		errors.Is(err, usecase.ErrInvalidStatus):
		log.Warn(operation+" failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "something went wrong")
	}
}
