// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/commission-tracker/backend/internal/application/usecase/brand"
	"github.com/commission-tracker/backend/internal/application/usecase/tracker"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
)

// BrandController handles brand and tracker endpoints.
type BrandController struct {
	createUseCase        *brand.CreateBrandUseCase
	getUseCase           *brand.GetBrandUseCase
	listUseCase          *brand.ListBrandsUseCase
	updateUseCase        *brand.UpdateBrandUseCase
	createTrackerUseCase *tracker.CreateTrackerUseCase
}

// NewBrandController creates a new brand controller instance.
func NewBrandController(
	createUseCase *brand.CreateBrandUseCase,
	getUseCase *brand.GetBrandUseCase,
	listUseCase *brand.ListBrandsUseCase,
	updateUseCase *brand.UpdateBrandUseCase,
	createTrackerUseCase *tracker.CreateTrackerUseCase,
) *BrandController {
	return &BrandController{
		createUseCase:        createUseCase,
		getUseCase:           getUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		createTrackerUseCase: createTrackerUseCase,
	}
}

// Create handles POST /brands requests.
func (c *BrandController) Create(ctx *gin.Context) {
	var req dto.CreateBrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	defaultPercent, err := dto.ParsePercent(req.DefaultCommissionPercent)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}
	overrides, err := dto.ParsePercentMap(req.CategoryOverrides)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), brand.CreateBrandInput{
		Name:                     req.Name,
		DefaultCommissionPercent: defaultPercent,
		CategoryOverrides:        overrides,
		Categories:               req.Categories,
		Stages:                   req.Stages,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrandResponse(output.Brand))
}

// List handles GET /brands requests.
func (c *BrandController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(output.Brands))
}

// Get handles GET /brands/:id requests.
func (c *BrandController) Get(ctx *gin.Context) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), brand.GetBrandInput{BrandID: brandID})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	response := dto.ToBrandResponse(output.Brand)
	response.Trackers = dto.ToTrackerResponses(output.Trackers)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /brands/:id requests.
func (c *BrandController) Update(ctx *gin.Context) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return
	}

	var req dto.UpdateBrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	input := brand.UpdateBrandInput{
		BrandID:    brandID,
		Name:       req.Name,
		Categories: req.Categories,
		Stages:     req.Stages,
	}

	if req.DefaultCommissionPercent != nil {
		percent, err := dto.ParsePercent(*req.DefaultCommissionPercent)
		if err != nil {
			badRequest(ctx, err.Error())
			return
		}
		input.DefaultCommissionPercent = &percent
	}

	overrides, err := dto.ParsePercentMap(req.CategoryOverrides)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}
	input.CategoryOverrides = overrides

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(output.Brand))
}

// CreateTracker handles POST /brands/:id/trackers requests.
func (c *BrandController) CreateTracker(ctx *gin.Context) {
	brandID, ok := pathUUID(ctx, "id", "brand")
	if !ok {
		return
	}

	var req dto.CreateTrackerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error())
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		badRequest(ctx, err.Error())
		return
	}

	output, err := c.createTrackerUseCase.Execute(ctx.Request.Context(), tracker.CreateTrackerInput{
		BrandID:   brandID,
		Name:      req.Name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleCommissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTrackerResponse(output.Tracker))
}
