package domain

import (
	"math"
	"testing"
	"time"
)

func TestParseMovementKind(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    MovementKind
		wantErr bool
	}{
		{"in lowercase", "in", MovementIn, false},
		{"out lowercase", "out", MovementOut, false},
		{"adjustment lowercase", "adjustment", MovementAdjustment, false},
		{"uppercase IN", "IN", MovementIn, false},
		{"mixed case Adjustment", "Adjustment", MovementAdjustment, false},
		{"surrounding whitespace", "  out  ", MovementOut, false},
		{"unknown kind", "transfer", "", true},
		{"empty string", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMovementKind(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMovementKind(%q) expected error, got %v", tt.raw, got)
				}
				if !IsStockErrorOfKind(err, StockErrUnknownKind) {
					t.Fatalf("expected StockErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMovementKind(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMovementKind(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestComputeNewStock_In(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		amount   int
		want     int
		wantKind StockErrorKind
		wantErr  bool
	}{
		{"adds to current stock", 5, 3, 8, 0, false},
		{"adds to zero stock", 0, 10, 10, 0, false},
		{"amount of one", 99, 1, 100, 0, false},
		{"zero amount rejected", 5, 0, 0, StockErrInvalidAmount, true},
		{"negative amount rejected", 5, -3, 0, StockErrInvalidAmount, true},
		{"overflow rejected", math.MaxInt, 1, 0, StockErrOverflow, true},
		{"large but safe addition", math.MaxInt - 1, 1, math.MaxInt, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNewStock(tt.current, MovementIn, tt.amount)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				if !IsStockErrorOfKind(err, tt.wantKind) {
					t.Fatalf("expected error kind %d, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ComputeNewStock(%d, in, %d) = %d, want %d", tt.current, tt.amount, got, tt.want)
			}
		})
	}
}

func TestComputeNewStock_Out(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		amount   int
		want     int
		wantKind StockErrorKind
		wantErr  bool
	}{
		{"subtracts from current stock", 9, 4, 5, 0, false},
		{"drains stock to zero", 4, 4, 0, 0, false},
		{"amount exceeds stock", 2, 5, 0, StockErrInsufficient, true},
		{"any amount from zero stock", 0, 1, 0, StockErrInsufficient, true},
		{"zero amount rejected", 10, 0, 0, StockErrInvalidAmount, true},
		{"negative amount rejected", 10, -2, 0, StockErrInvalidAmount, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNewStock(tt.current, MovementOut, tt.amount)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				if !IsStockErrorOfKind(err, tt.wantKind) {
					t.Fatalf("expected error kind %d, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ComputeNewStock(%d, out, %d) = %d, want %d", tt.current, tt.amount, got, tt.want)
			}
		})
	}
}

func TestComputeNewStock_Adjustment(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		amount   int
		want     int
		wantKind StockErrorKind
		wantErr  bool
	}{
		{"positive correction", 10, 5, 15, 0, false},
		{"negative correction", 12, -5, 7, 0, false},
		{"correction down to zero", 5, -5, 0, 0, false},
		{"correction up from zero", 0, 3, 3, 0, false},
		{"zero amount rejected", 10, 0, 0, StockErrInvalidAmount, true},
		{"would drive stock negative", 1, -5, 0, StockErrNegativeResult, true},
		{"overflow rejected", math.MaxInt, 1, 0, StockErrOverflow, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeNewStock(tt.current, MovementAdjustment, tt.amount)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d", got)
				}
				if !IsStockErrorOfKind(err, tt.wantKind) {
					t.Fatalf("expected error kind %d, got %v", tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ComputeNewStock(%d, adjustment, %d) = %d, want %d", tt.current, tt.amount, got, tt.want)
			}
		})
	}
}

func TestComputeNewStock_UnknownKind(t *testing.T) {
	for _, amount := range []int{-5, 0, 1, 100} {
		_, err := ComputeNewStock(5, MovementKind("invalid"), amount)
		if err == nil {
			t.Fatalf("expected error for unknown kind with amount %d", amount)
		}
		if !IsStockErrorOfKind(err, StockErrUnknownKind) {
			t.Fatalf("expected StockErrUnknownKind, got %v", err)
		}
	}
}

// Identical invalid inputs must produce the identical error kind on every call.
func TestComputeNewStock_FailureIsDeterministic(t *testing.T) {
	first, err1 := ComputeNewStock(2, MovementOut, 5)
	second, err2 := ComputeNewStock(2, MovementOut, 5)

	if err1 == nil || err2 == nil {
		t.Fatal("expected both calls to fail")
	}
	if first != second {
		t.Fatalf("expected identical zero results, got %d and %d", first, second)
	}
	if !IsStockErrorOfKind(err1, StockErrInsufficient) || !IsStockErrorOfKind(err2, StockErrInsufficient) {
		t.Fatalf("expected StockErrInsufficient on both calls, got %v and %v", err1, err2)
	}
	if err1.Error() != err2.Error() {
		t.Fatalf("expected identical messages, got %q and %q", err1.Error(), err2.Error())
	}
}

func TestNewMovement(t *testing.T) {
	t.Run("defaults occurredAt to now", func(t *testing.T) {
		before := time.Now()
		m := NewMovement("aabbccddee112233aabbccdd", MovementIn, 3, "restock", "", time.Time{})
		after := time.Now()

		if m.OccurredAt.Before(before) || m.OccurredAt.After(after) {
			t.Fatalf("OccurredAt %v not in expected range [%v, %v]", m.OccurredAt, before, after)
		}
		if m.CreatedAt.Before(before) || m.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not in expected range [%v, %v]", m.CreatedAt, before, after)
		}
	})

	t.Run("keeps explicit occurredAt", func(t *testing.T) {
		occurred := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		m := NewMovement("aabbccddee112233aabbccdd", MovementOut, 2, "", "order-42", occurred)

		if !m.OccurredAt.Equal(occurred) {
			t.Fatalf("expected OccurredAt %v, got %v", occurred, m.OccurredAt)
		}
		if m.Ref != "order-42" {
			t.Fatalf("expected ref 'order-42', got %q", m.Ref)
		}
	})
}

func TestStockMovementAppliedEvent(t *testing.T) {
	m := NewMovement("aabbccddee112233aabbccdd", MovementIn, 3, "restock", "", time.Time{})
	m.ID = "ffeeddccbbaa998877665544"

	event := NewStockMovementAppliedEvent(m, 8)

	if event.GetName() != "stock.movement_applied" {
		t.Fatalf("unexpected event name %q", event.GetName())
	}
	if event.GetEntityName() != "stock" {
		t.Fatalf("unexpected entity name %q", event.GetEntityName())
	}
	if event.MovementID != m.ID {
		t.Fatalf("expected movement id %s, got %s", m.ID, event.MovementID)
	}
	if event.NewStock != 8 {
		t.Fatalf("expected new stock 8, got %d", event.NewStock)
	}
}
