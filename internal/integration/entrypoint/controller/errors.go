// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/commission-tracker/backend/internal/domain/error"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

// handleCommissionError writes the HTTP response for a use case error.
func handleCommissionError(ctx *gin.Context, err error) {
	var commissionErr *domainerror.CommissionError
	if errors.As(err, &commissionErr) {
		statusCode := statusCodeForCommissionError(commissionErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.Error("request failed",
				"method", ctx.Request.Method,
				"path", ctx.FullPath(),
				"code", commissionErr.Code,
				"error", err,
			)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: commissionErr.Message,
			Code:  string(commissionErr.Code),
		})
		return
	}

	slog.Error("request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternalError),
	})
}

// statusCodeForCommissionError maps commission error codes to HTTP status codes.
func statusCodeForCommissionError(code domainerror.CommissionErrorCode) int {
	switch code {
	case domainerror.ErrCodeBrandNotFound,
		domainerror.ErrCodeAccountNotFound,
		domainerror.ErrCodeTrackerNotFound,
		domainerror.ErrCodeOrderNotFound,
		domainerror.ErrCodeImportSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateAccountNumber,
		domainerror.ErrCodeInconsistentLedger:
		return http.StatusConflict
	case domainerror.ErrCodeUnderpaidDecisionRequired:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeTooManyImportRows:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidRate,
		domainerror.ErrCodeInvalidScope,
		domainerror.ErrCodeInvalidPayStatus,
		domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidStage,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeTrackerBrandMismatch,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeUnknownAccount,
		domainerror.ErrCodeEmptyImportRows,
		domainerror.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 response with the invalid-request code.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInvalidRequest),
	})
}

// pathUUID parses a uuid path parameter, writing a 400 response on failure.
func pathUUID(ctx *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		badRequest(ctx, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}
