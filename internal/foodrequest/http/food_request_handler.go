// Package http provides HTTP handlers for the food request endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/foodshare/server/internal/auth/domain"
	"github.com/foodshare/server/internal/foodrequest/http/dto"
	requestUseCase "github.com/foodshare/server/internal/foodrequest/usecase"
	"github.com/foodshare/server/internal/httputil"
)

// FoodRequestHandler handles HTTP requests for food requests.
type FoodRequestHandler struct {
	requestUseCase requestUseCase.FoodRequestUseCase
	logger         *slog.Logger
}

// NewFoodRequestHandler creates a new food request handler.
func NewFoodRequestHandler(
	requestUseCase requestUseCase.FoodRequestUseCase,
	logger *slog.Logger,
) *FoodRequestHandler {
	return &FoodRequestHandler{
		requestUseCase: requestUseCase,
		logger:         logger,
	}
}

// CreateHandler records a request for a listing.
// POST /requests - Returns 200 with the inserted id.
func (h *FoodRequestHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateFoodRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	request := req.ToDomain()
	if err := h.requestUseCase.Create(c.Request.Context(), request); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.InsertResponse{Acknowledged: true, InsertedID: request.ID})
}

// ListMineHandler returns the requests made by the approved owner.
// GET /myRequests?email= - Mounted behind the identity and ownership gates.
func (h *FoodRequestHandler) ListMineHandler(c *gin.Context, _ *authDomain.Claims, ownerEmail string) {
	requests, err := h.requestUseCase.ListByUser(c.Request.Context(), ownerEmail)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFoodRequestsToResponse(requests))
}
