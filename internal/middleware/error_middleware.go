package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/dberrors"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the API error taxonomy and
// writes the response. Controllers call it on every service failure so
// status codes stay consistent across the surface.
func HandleAPIError(c *gin.Context, err error) {
	// Storage outage beats everything else: surface retryability
	if dberrors.IsUnavailable(err) || apperrors.Is(err, apperrors.ErrStorageUnavailable) {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Storage unavailable")
		c.JSON(503, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeStorageUnavailable, "Storage temporarily unavailable, retry later"),
		})
		return
	}

	switch {
	case apperrors.Is(err, apperrors.ErrStudentNotFound, apperrors.ErrRoomNotFound,
		apperrors.ErrLeaveNotFound, apperrors.ErrUserNotFound, apperrors.ErrUnknownCollection):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrNoCapacity):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceExhausted, "No room with free capacity available"),
		})
	case apperrors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrRoomAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrAlreadyAllocated, apperrors.ErrNotAllocated,
		apperrors.ErrCapacityTooSmall, apperrors.ErrInvalidDateRange,
		apperrors.ErrInvalidLeaveStatus):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
