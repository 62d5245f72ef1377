package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

type MovementKind string

const (
	MovementIn         MovementKind = "in"
	MovementOut        MovementKind = "out"
	MovementAdjustment MovementKind = "adjustment"
)

func (k MovementKind) IsValid() bool {
	return k == MovementIn || k == MovementOut || k == MovementAdjustment
}

// ParseMovementKind normalizes raw input (case-insensitive) into a MovementKind.
func ParseMovementKind(raw string) (MovementKind, error) {
	kind := MovementKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.IsValid() {
		return "", newStockError(StockErrUnknownKind, fmt.Sprintf("invalid movement kind %q, use 'in' | 'out' | 'adjustment'", raw))
	}
	return kind, nil
}

type StockErrorKind int

const (
	StockErrInvalidAmount StockErrorKind = iota
	StockErrInsufficient
	StockErrNegativeResult
	StockErrUnknownKind
	StockErrOverflow
	StockErrMissingContext
)

// StockError is the closed set of failures the stock rule can produce.
type StockError struct {
	Kind    StockErrorKind
	Message string
}

func (e *StockError) Error() string {
	return e.Message
}

func newStockError(kind StockErrorKind, message string) *StockError {
	return &StockError{Kind: kind, Message: message}
}

// NewMissingStockContextError reports that no current-stock context exists for
// the movement, i.e. the product lookup failed upstream.
func NewMissingStockContextError(productID ID) *StockError {
	return newStockError(StockErrMissingContext, fmt.Sprintf("product %s not found", productID))
}

func IsStockErrorOfKind(err error, kind StockErrorKind) bool {
	var stockErr *StockError
	if errors.As(err, &stockErr) {
		return stockErr.Kind == kind
	}
	return false
}

// ComputeNewStock applies one movement to a current stock level and returns the
// resulting level. It is pure: no storage access, no side effects. currentStock
// is assumed non-negative, the caller owns loading and persisting it.
//
//   - in: amount must be > 0, stock increases
//   - out: amount must be > 0 and covered by current stock, stock decreases
//   - adjustment: amount must be != 0, may be negative, result must stay >= 0
func ComputeNewStock(currentStock int, kind MovementKind, amount int) (int, error) {
	switch kind {
	case MovementIn:
		if amount <= 0 {
			return 0, newStockError(StockErrInvalidAmount, "quantity must be > 0 for 'in' movements")
		}
		next, ok := checkedAdd(currentStock, amount)
		if !ok {
			return 0, newStockError(StockErrOverflow, "stock level would exceed the safe integer range")
		}
		return next, nil

	case MovementOut:
		if amount <= 0 {
			return 0, newStockError(StockErrInvalidAmount, "quantity must be > 0 for 'out' movements")
		}
		next, ok := checkedSub(currentStock, amount)
		if !ok {
			return 0, newStockError(StockErrOverflow, "stock level would exceed the safe integer range")
		}
		if next < 0 {
			return 0, newStockError(StockErrInsufficient, "insufficient stock for 'out' movement")
		}
		return next, nil

	case MovementAdjustment:
		if amount == 0 {
			return 0, newStockError(StockErrInvalidAmount, "quantity must be != 0 for 'adjustment' movements")
		}
		next, ok := checkedAdd(currentStock, amount)
		if !ok {
			return 0, newStockError(StockErrOverflow, "stock level would exceed the safe integer range")
		}
		if next < 0 {
			return 0, newStockError(StockErrNegativeResult, "adjustment would result in negative stock")
		}
		return next, nil

	default:
		return 0, newStockError(StockErrUnknownKind, fmt.Sprintf("invalid movement kind %q, use 'in' | 'out' | 'adjustment'", string(kind)))
	}
}

func checkedAdd(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt-b {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b int) (int, bool) {
	if b < 0 && a > math.MaxInt+b {
		return 0, false
	}
	if b > 0 && a < math.MinInt+b {
		return 0, false
	}
	return a - b, true
}

// Movement is one immutable entry in a product's stock history.
type Movement struct {
	ID         ID
	ProductID  ID
	Kind       MovementKind
	Quantity   int
	Reason     string
	Ref        string
	OccurredAt time.Time
	CreatedAt  time.Time
}

func NewMovement(productID ID, kind MovementKind, quantity int, reason, ref string, occurredAt time.Time) *Movement {
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &Movement{
		ProductID:  productID,
		Kind:       kind,
		Quantity:   quantity,
		Reason:     reason,
		Ref:        ref,
		OccurredAt: occurredAt,
		CreatedAt:  time.Now(),
	}
}

type StockMovementAppliedEvent struct {
	MovementID ID           `json:"movement_id"`
	ProductID  ID           `json:"product_id"`
	Kind       MovementKind `json:"kind"`
	Quantity   int          `json:"quantity"`
	NewStock   int          `json:"new_stock"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func (e *StockMovementAppliedEvent) GetName() string {
	return "stock.movement_applied"
}

func (e *StockMovementAppliedEvent) GetEntityName() string {
	return "stock"
}

func NewStockMovementAppliedEvent(movement *Movement, newStock int) *StockMovementAppliedEvent {
	return &StockMovementAppliedEvent{
		MovementID: movement.ID,
		ProductID:  movement.ProductID,
		Kind:       movement.Kind,
		Quantity:   movement.Quantity,
		NewStock:   newStock,
		OccurredAt: movement.OccurredAt,
	}
}
