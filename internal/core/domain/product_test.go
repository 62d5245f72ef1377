package domain

import (
	"testing"
	"time"
)

func TestNewProduct(t *testing.T) {
	before := time.Now()
	p := NewProduct("Premium Cachaca", "premium-cachaca", "A fine spirit", NewAmountFromCents(4999), "SKU-001", "7891234567890", "aabbccddee112233aabbccdd", nil, 25, 5, "")
	after := time.Now()

	if p.Name != "Premium Cachaca" {
		t.Fatalf("expected name 'Premium Cachaca', got %q", p.Name)
	}
	if p.Slug != "premium-cachaca" {
		t.Fatalf("expected slug 'premium-cachaca', got %q", p.Slug)
	}
	if p.Price != 4999 {
		t.Fatalf("expected price 4999, got %d", p.Price)
	}
	if p.StockQuantity != 25 {
		t.Fatalf("expected stock 25, got %d", p.StockQuantity)
	}
	if p.StockMin != 5 {
		t.Fatalf("expected stock min 5, got %d", p.StockMin)
	}
	if p.Status != ProductStatusActive {
		t.Fatalf("expected default status active, got %q", p.Status)
	}
	if p.Images == nil {
		t.Fatal("expected non-nil images slice")
	}
	if p.ID != "" {
		t.Fatalf("expected empty ID, got %q", p.ID)
	}
	if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v not in expected range [%v, %v]", p.CreatedAt, before, after)
	}
}

func TestProductStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status ProductStatus
		want   bool
	}{
		{"active", ProductStatusActive, true},
		{"inactive", ProductStatusInactive, true},
		{"draft", ProductStatusDraft, true},
		{"empty", ProductStatus(""), false},
		{"unknown", ProductStatus("archived"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		stockMin int
		want     bool
	}{
		{"below minimum", 2, 5, true},
		{"at minimum", 5, 5, false},
		{"above minimum", 10, 5, false},
		{"zero minimum", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{StockQuantity: tt.stock, StockMin: tt.stockMin}
			if got := p.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() with stock=%d min=%d = %v, want %v", tt.stock, tt.stockMin, got, tt.want)
			}
		})
	}
}
