package dto

import (
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
)

type CreateMovementRequest struct {
	ProductID  domain.ID `json:"product_id" binding:"required"`
	Kind       string    `json:"kind" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required"`
	Reason     string    `json:"reason"`
	Ref        string    `json:"ref"`
	OccurredAt time.Time `json:"occurred_at"`
}
