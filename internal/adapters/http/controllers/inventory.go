package controllers

import (
	"net/http"
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/http/handlers"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/service"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	inventoryService *service.InventoryService
}

type MovementResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Kind       string    `json:"kind"`
	Quantity   int       `json:"quantity"`
	Reason     string    `json:"reason,omitempty"`
	Ref        string    `json:"ref,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

type ApplyMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	NewStock int              `json:"new_stock"`
}

func NewMovementResponse(movement *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:         string(movement.ID),
		ProductID:  string(movement.ProductID),
		Kind:       string(movement.Kind),
		Quantity:   movement.Quantity,
		Reason:     movement.Reason,
		Ref:        movement.Ref,
		OccurredAt: movement.OccurredAt,
		CreatedAt:  movement.CreatedAt,
	}
}

func NewInventoryController(inventoryService *service.InventoryService) *InventoryController {
	return &InventoryController{inventoryService: inventoryService}
}

// ApplyMovement godoc
// @Summary     Apply a stock movement
// @Description Records an in/out/adjustment movement and atomically updates the product's stock
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                    false "Idempotency key"
// @Param       request         body     dto.CreateMovementRequest true  "Movement data"
// @Success     201             {object} ApplyMovementResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/inventory [post]
func (ic *InventoryController) ApplyMovement(c *gin.Context) {
	var request dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if !domain.ValidateID(string(request.ProductID)) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	result, err := ic.inventoryService.ApplyMovement(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ApplyMovementResponse{
		Movement: NewMovementResponse(&result.Movement),
		NewStock: result.NewStock,
	})
}

// GetByProduct godoc
// @Summary     Get a product's movement history
// @Description Returns the stock movements of a product, most recent first
// @Tags        inventory
// @Produce     json
// @Param       productId path     string true "Product ID"
// @Success     200 {array}  MovementResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/{productId} [get]
func (ic *InventoryController) GetByProduct(c *gin.Context) {
	productID := c.Param("productId")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}

	movements, err := ic.inventoryService.ListByProduct(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]MovementResponse, len(movements))
	for i, movement := range movements {
		response[i] = NewMovementResponse(movement)
	}

	c.JSON(http.StatusOK, response)
}
