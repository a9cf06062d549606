// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	paymentimport "github.com/commission-tracker/backend/internal/application/usecase/payment_import"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

// PaymentImportController handles remittance import endpoints.
type PaymentImportController struct {
	previewUseCase *paymentimport.PreviewImportUseCase
	commitUseCase  *paymentimport.CommitImportUseCase
}

// NewPaymentImportController creates a new payment import controller instance.
func NewPaymentImportController(
	previewUseCase *paymentimport.PreviewImportUseCase,
	commitUseCase *paymentimport.CommitImportUseCase,
) *PaymentImportController {
	return &PaymentImportController{
		previewUseCase: previewUseCase,
		commitUseCase:  commitUseCase,
	}
}

// Preview handles POST /brands/:id/imports/preview requests.
func (c *PaymentImportController) Preview(ctx *gin.Context) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return
	}

	var req dto.PreviewImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), paymentimport.PreviewImportInput{
		BrandID:   brandID,
		TrackerID: uuid.MustParse(req.TrackerID),
		Rows:      dto.ToImportRows(req.Rows),
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreviewImportResponse(output))
}

// Commit handles POST /imports/:session_id/commit requests.
func (c *PaymentImportController) Commit(ctx *gin.Context) {
	sessionID, ok := pathUUID(ctx, "session_id", "import session")
	if !ok {
		return
	}

	var req dto.CommitImportRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, "Invalid request body: "+err.Error())
			return
		}
	}

	decisions := make(map[int]valueobject.UnderpaidDecision, len(req.Decisions))
	for _, d := range req.Decisions {
		decisions[d.RowIndex] = valueobject.UnderpaidDecision(d.Decision)
	}

	output, err := c.commitUseCase.Execute(ctx.Request.Context(), paymentimport.CommitImportInput{
		SessionID: sessionID,
		Decisions: decisions,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	statusCode := http.StatusOK
	if len(output.Failed) > 0 {
		statusCode = http.StatusMultiStatus
	}
	ctx.JSON(statusCode, dto.ToCommitImportResponse(output))
}
