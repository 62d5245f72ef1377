package port

import (
	"context"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type MovementPort interface {
	// ApplyWithOutbox persists the movement record, writes the new stock level
	// to the product (conditioned on expectedStock, so a concurrent movement on
	// the same product surfaces as a conflict instead of a lost update) and
	// inserts a stock.movement_applied outbox entry, all in one transaction.
	ApplyWithOutbox(ctx context.Context, movement *domain.Movement, expectedStock, newStock int) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Movement, error)
	GetByProduct(ctx context.Context, productID domain.ID) ([]*domain.Movement, error)
}
