package domain

import (
	"testing"
	"time"
)

func TestNewCategory(t *testing.T) {
	before := time.Now()
	c := NewCategory("Bebidas", "bebidas", "Drinks and spirits", true)
	after := time.Now()

	if c.Name != "Bebidas" {
		t.Fatalf("expected name 'Bebidas', got %q", c.Name)
	}
	if c.Slug != "bebidas" {
		t.Fatalf("expected slug 'bebidas', got %q", c.Slug)
	}
	if !c.IsActive {
		t.Fatal("expected category to be active")
	}
	if c.ID != "" {
		t.Fatalf("expected empty ID, got %q", c.ID)
	}
	if c.CreatedAt.Before(before) || c.CreatedAt.After(after) {
		t.Fatalf("CreatedAt %v not in expected range [%v, %v]", c.CreatedAt, before, after)
	}
	if c.UpdatedAt.Before(before) || c.UpdatedAt.After(after) {
		t.Fatalf("UpdatedAt %v not in expected range [%v, %v]", c.UpdatedAt, before, after)
	}
}
