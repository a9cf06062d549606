// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/commission-tracker/backend/internal/application/usecase/order"
	"github.com/commission-tracker/backend/internal/domain/valueobject"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

// OrderController handles order endpoints.
type OrderController struct {
	createUseCase       *order.CreateOrderUseCase
	updateUseCase       *order.UpdateOrderUseCase
	deleteUseCase       *order.DeleteOrderUseCase
	setPayStatusUseCase *order.SetPayStatusUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	createUseCase *order.CreateOrderUseCase,
	updateUseCase *order.UpdateOrderUseCase,
	deleteUseCase *order.DeleteOrderUseCase,
	setPayStatusUseCase *order.SetPayStatusUseCase,
) *OrderController {
	return &OrderController{
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		setPayStatusUseCase: setPayStatusUseCase,
	}
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	// Binding already checked the id formats
	input := order.CreateOrderInput{
		AccountID: uuid.MustParse(req.AccountID),
		BrandID:   uuid.MustParse(req.BrandID),
		TrackerID: uuid.MustParse(req.TrackerID),
		Category:  req.Category,
		Stage:     req.Stage,
	}

	total, err := valueobject.ParseMoney(req.Total)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}
	input.Total = total

	if req.CommissionOverride != nil {
		percent, err := dto.ParsePercent(*req.CommissionOverride)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		input.CommissionOverride = &percent
	}

	if input.CloseDate, err = dto.ParseDate(req.CloseDate); err != nil {
		badRequest(ctx, err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order, output.Percent, output.CommissionDue))
}

// Update handles PATCH /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	orderID, ok := pathUUID(ctx, "id", "order")
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := order.UpdateOrderInput{
		OrderID:       orderID,
		Category:      req.Category,
		Stage:         req.Stage,
		ClearOverride: req.ClearOverride,
	}

	if req.Total != nil {
		total, err := valueobject.ParseMoney(*req.Total)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		input.Total = &total
	}

	if req.CommissionOverride != nil {
		percent, err := dto.ParsePercent(*req.CommissionOverride)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		input.CommissionOverride = &percent
	}

	closeDate, err := dto.ParseDate(req.CloseDate)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}
	input.CloseDate = closeDate

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	response := dto.ToOrderResponse(output.Order, output.Percent, output.CommissionDue)
	response.Entry = dto.ToCommissionEntryResponse(output.Entry)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /orders/:id requests.
func (c *OrderController) Delete(ctx *gin.Context) {
	orderID, ok := pathUUID(ctx, "id", "order")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), order.DeleteOrderInput{OrderID: orderID}); err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetPayStatus handles PUT /orders/:id/status requests.
func (c *OrderController) SetPayStatus(ctx *gin.Context) {
	orderID, ok := pathUUID(ctx, "id", "order")
	if !ok {
		return
	}

	var req dto.SetPayStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	output, err := c.setPayStatusUseCase.Execute(ctx.Request.Context(), order.SetPayStatusInput{
		OrderID:   orderID,
		PayStatus: req.PayStatus,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCommissionEntryResponse(output.Entry))
}
