package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"vehicle-auction/internal/auctionerrors"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrVehicleNotFound):
		return http.StatusNotFound, auctionerrors.ErrVehicleNotFound.Error()
	case errors.Is(err, auctionerrors.ErrActiveAuctionNotFound):
		return http.StatusNotFound, auctionerrors.ErrActiveAuctionNotFound.Error()
	case errors.Is(err, auctionerrors.ErrVehicleExists):
		return http.StatusConflict, auctionerrors.ErrVehicleExists.Error()
	case errors.Is(err, auctionerrors.ErrAuctionAlreadyStarted):
		return http.StatusConflict, auctionerrors.ErrAuctionAlreadyStarted.Error()
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, auctionerrors.ErrBidTooLow.Error()
	case errors.Is(err, auctionerrors.ErrInvalidVehicleID):
		return http.StatusBadRequest, auctionerrors.ErrInvalidVehicleID.Error()
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "request conflicts with current state"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "request failed validation"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError writes the mapped error response and logs it at a level matching its class
func RespondError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		// storage details stay in the logs
		utils.JSONError(c, status, errors.New(message), message)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	if fields == nil {
		fields = map[string]any{}
	}
	fields["handler"] = handlerName
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
