// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/domain/entity"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles account ledger endpoints.
type LedgerController struct {
	listUseCase             *ledger.ListLedgersUseCase
	getUseCase              *ledger.GetLedgerUseCase
	recordPaymentUseCase    *ledger.RecordPaymentUseCase
	markShortShippedUseCase *ledger.MarkShortShippedUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	listUseCase *ledger.ListLedgersUseCase,
	getUseCase *ledger.GetLedgerUseCase,
	recordPaymentUseCase *ledger.RecordPaymentUseCase,
	markShortShippedUseCase *ledger.MarkShortShippedUseCase,
) *LedgerController {
	return &LedgerController{
		listUseCase:             listUseCase,
		getUseCase:              getUseCase,
		recordPaymentUseCase:    recordPaymentUseCase,
		markShortShippedUseCase: markShortShippedUseCase,
	}
}

// List handles GET /brands/:id/ledgers requests.
// Either tracker_id or all=true selects the scope.
func (c *LedgerController) List(ctx *gin.Context) {
	scope, ok := scopeFromRequest(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListLedgersInput{Scope: scope})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerListResponse(output))
}

// Get handles GET /brands/:id/ledgers/:account_id requests.
func (c *LedgerController) Get(ctx *gin.Context) {
	scope, ok := scopeFromRequest(ctx)
	if !ok {
		return
	}
	accountID, ok := pathUUID(ctx, "account_id", "account")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetLedgerInput{
		Scope:     scope,
		AccountID: accountID,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LedgerDetailResponse{
		LedgerResponse: dto.ToLedgerResponse(output.Ledger, output.Account.Name),
		Issues:         dto.ToLedgerIssueResponses(output.Issues),
	})
}

// RecordPayment handles POST /brands/:id/ledgers/:account_id/payments requests.
func (c *LedgerController) RecordPayment(ctx *gin.Context) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return
	}
	accountID, ok := pathUUID(ctx, "account_id", "account")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	amount, err := valueobject.ParseMoney(req.Amount)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), ledger.RecordPaymentInput{
		BrandID:   brandID,
		TrackerID: uuid.MustParse(req.TrackerID),
		AccountID: accountID,
		Amount:    amount,
		Date:      date,
		Reference: req.Reference,
		Source:    entity.PaymentSourceManual,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	statusCode := http.StatusCreated
	if output.Duplicate {
		statusCode = http.StatusOK
	}
	ctx.JSON(statusCode, dto.RecordPaymentResponse{
		Ledger:    dto.ToLedgerResponse(output.Ledger, ""),
		Payment:   dto.ToPaymentResponse(output.Payment),
		Duplicate: output.Duplicate,
		Failures:  dto.ToEntryFailureResponses(output.Failures),
	})
}

// MarkShortShipped handles POST /brands/:id/ledgers/:account_id/short-ship requests.
func (c *LedgerController) MarkShortShipped(ctx *gin.Context) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return
	}
	accountID, ok := pathUUID(ctx, "account_id", "account")
	if !ok {
		return
	}

	var req dto.MarkShortShippedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.markShortShippedUseCase.Execute(ctx.Request.Context(), ledger.MarkShortShippedInput{
		BrandID:   brandID,
		TrackerID: uuid.MustParse(req.TrackerID),
		AccountID: accountID,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkShortShippedResponse{
		Ledger:   dto.ToLedgerResponse(output.Ledger, ""),
		Failures: dto.ToEntryFailureResponses(output.Failures),
	})
}

// scopeFromRequest reads the brand path id and the tracker_id/all query parameters.
func scopeFromRequest(ctx *gin.Context) (ledger.ScopeInput, bool) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return ledger.ScopeInput{}, false
	}

	trackerID, err := dto.ParseOptionalUUID(ctx.Query("tracker_id"))
	if err != nil {
		badRequest(ctx, "Invalid tracker ID format")
		return ledger.ScopeInput{}, false
	}

	allTrackers := false
	if raw := ctx.Query("all"); raw != "" {
		allTrackers, err = strconv.ParseBool(raw)
		if err != nil {
			badRequest(ctx, "Invalid value for all, expected true or false")
			return ledger.ScopeInput{}, false
		}
	}

	return ledger.ScopeInput{
		BrandID:     brandID,
		TrackerID:   trackerID,
		AllTrackers: allTrackers,
	}, true
}
