// Package http provides HTTP handlers for the food listing endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/foodshare/server/internal/auth/domain"
	"github.com/foodshare/server/internal/food/http/dto"
	foodUseCase "github.com/foodshare/server/internal/food/usecase"
	"github.com/foodshare/server/internal/httputil"
	customValidation "github.com/foodshare/server/internal/validation"
)

// FoodHandler handles HTTP requests for food listings.
type FoodHandler struct {
	foodUseCase foodUseCase.FoodUseCase
	logger      *slog.Logger
}

// NewFoodHandler creates a new food handler with required dependencies.
func NewFoodHandler(foodUseCase foodUseCase.FoodUseCase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		foodUseCase: foodUseCase,
		logger:      logger,
	}
}

// ListHandler returns the public catalogue.
// GET /foods?search=rice&sort=desc
func (h *FoodHandler) ListHandler(c *gin.Context) {
	var query dto.ListFoodsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	foods, err := h.foodUseCase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFoodsToResponse(foods))
}

// GetHandler returns one listing.
// GET /foods/:id - 422 for a malformed id, 404 when missing.
func (h *FoodHandler) GetHandler(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	food, err := h.foodUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFoodToResponse(food))
}

// CreateHandler shares a new listing.
// POST /foods - Returns 201 with the inserted id.
func (h *FoodHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	food := req.ToDomain()
	if err := h.foodUseCase.Create(c.Request.Context(), food); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.InsertResponse{Acknowledged: true, InsertedID: food.ID})
}

// UpdateHandler applies a partial update.
// PATCH /foods/:id - 422 when the body sets no field.
func (h *FoodHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req dto.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	res, err := h.foodUseCase.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUpdateResultToResponse(res))
}

// DeleteHandler removes a listing.
// DELETE /foods/:id - Returns 200 with the deleted count, zero when nothing matched.
func (h *FoodHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	res, err := h.foodUseCase.Delete(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDeleteResultToResponse(res))
}

// ListMineHandler returns the listings donated by the approved owner.
// GET /myFood?email= - Mounted behind the identity and ownership gates.
func (h *FoodHandler) ListMineHandler(c *gin.Context, _ *authDomain.Claims, ownerEmail string) {
	foods, err := h.foodUseCase.ListByDonor(c.Request.Context(), ownerEmail)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFoodsToResponse(foods))
}

func (h *FoodHandler) bindID(c *gin.Context) (string, bool) {
	var param dto.FoodIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return "", false
	}
	if err := param.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return "", false
	}
	return param.ID, true
}
