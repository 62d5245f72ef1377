package service

import (
	"context"
	"errors"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/dto"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/utils"
)

// applyMaxRetries bounds the optimistic-concurrency retry loop: the stock write
// is conditioned on the stock value that was read, so a concurrent movement on
// the same product forces a re-read and a fresh rule evaluation.
const applyMaxRetries = 3

type MovementResult struct {
	Movement domain.Movement `json:"movement"`
	NewStock int             `json:"new_stock"`
}

type InventoryService struct {
	movementRepository port.MovementPort
	productService     *ProductService
	idempotency        *IdempotencyService[MovementResult]
	versions           port.CacheVersionPort
}

func NewInventoryService(
	movementRepository port.MovementPort,
	productService *ProductService,
	idempotency *IdempotencyService[MovementResult],
	versions port.CacheVersionPort,
) *InventoryService {
	return &InventoryService{
		movementRepository: movementRepository,
		productService:     productService,
		idempotency:        idempotency,
		versions:           versions,
	}
}

// mapStockError translates the stock rule's closed error set into service
// error kinds: bad input becomes a client error, an outcome the current stock
// cannot satisfy becomes a conflict, a missing product becomes not-found.
func mapStockError(err error) error {
	var stockErr *domain.StockError
	if !errors.As(err, &stockErr) {
		return err
	}
	switch stockErr.Kind {
	case domain.StockErrInvalidAmount, domain.StockErrUnknownKind:
		return serviceerrors.NewInvalidRequestError(stockErr.Message)
	case domain.StockErrMissingContext:
		return serviceerrors.NewNotFoundError(stockErr.Message)
	default:
		return serviceerrors.NewConflictError(stockErr.Message)
	}
}

func (s *InventoryService) processMovement(ctx context.Context, request *dto.CreateMovementRequest) (*MovementResult, error) {
	kind, err := domain.ParseMovementKind(request.Kind)
	if err != nil {
		return nil, mapStockError(err)
	}

	for attempt := 0; ; attempt++ {
		product, err := s.productService.GetByID(ctx, request.ProductID)
		if err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
				return nil, mapStockError(domain.NewMissingStockContextError(request.ProductID))
			}
			return nil, err
		}

		newStock, err := domain.ComputeNewStock(product.StockQuantity, kind, request.Quantity)
		if err != nil {
			return nil, mapStockError(err)
		}

		movement := domain.NewMovement(request.ProductID, kind, request.Quantity, request.Reason, request.Ref, request.OccurredAt)

		err = s.movementRepository.ApplyWithOutbox(ctx, movement, product.StockQuantity, newStock)
		if err == nil {
			s.bumpProductScopes(ctx)
			logger.Info(ctx, "Stock movement applied", map[string]any{
				"movement_id": movement.ID,
				"product_id":  movement.ProductID,
				"kind":        string(movement.Kind),
				"quantity":    movement.Quantity,
				"new_stock":   newStock,
			})
			return &MovementResult{Movement: *movement, NewStock: newStock}, nil
		}

		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) && attempt < applyMaxRetries {
			logger.Warn(ctx, "stock movement conflicted, retrying", map[string]any{
				"product_id": request.ProductID,
				"attempt":    attempt + 1,
			})
			continue
		}

		logger.Error(ctx, "stock movement: apply failed", err, map[string]any{
			"product_id": request.ProductID,
			"kind":       string(kind),
			"quantity":   request.Quantity,
		})
		return nil, err
	}
}

func (s *InventoryService) bumpProductScopes(ctx context.Context) {
	for _, scope := range []string{ScopeProducts, ScopeProductsLowStock} {
		if err := s.versions.Bump(ctx, scope); err != nil {
			logger.Error(ctx, "cache: bump scope failed", err, map[string]any{"scope": scope})
		}
	}
}

func (s *InventoryService) ApplyMovement(ctx context.Context, idempotencyKey string, request *dto.CreateMovementRequest) (*MovementResult, error) {
	if idempotencyKey == "" {
		return s.processMovement(ctx, request)
	}

	payloadHash := utils.HashJSON(request)

	existing, err := s.idempotency.Claim(ctx, idempotencyKey, payloadHash)
	if err != nil {
		logger.Error(ctx, "idempotency: claim failed", err, map[string]any{
			"idempotency_key": idempotencyKey,
		})
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	result, err := s.processMovement(ctx, request)
	if err != nil {
		s.idempotency.Release(ctx, idempotencyKey)
		return nil, err
	}

	s.idempotency.Complete(ctx, idempotencyKey, payloadHash, result)

	return result, nil
}

func (s *InventoryService) ListByProduct(ctx context.Context, productID domain.ID) ([]*domain.Movement, error) {
	return s.movementRepository.GetByProduct(ctx, productID)
}
