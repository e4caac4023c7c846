package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/rotaryroots/hariyo-ban/internal/domain/error"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP status codes and the standard
// error body
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		status = http.StatusBadRequest
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domainerr.ErrInvalidCallback),
		errors.Is(err, domainerr.ErrAmountMismatch):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrRoomNotActive),
		errors.Is(err, domainerr.ErrDonationNotPending),
		errors.Is(err, domainerr.ErrDuplicateRecord):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
