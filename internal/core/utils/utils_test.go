package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Bebidas", "bebidas"},
		{"spaces become dashes", "Premium Cachaca", "premium-cachaca"},
		{"strips dots", "Mr. Olive Oil", "mr-olive-oil"},
		{"strips commas", "Rice, Beans", "rice-beans"},
		{"trims whitespace", "  Dairy  ", "dairy"},
		{"already a slug", "low-stock", "low-stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHashJSON(t *testing.T) {
	type payload struct {
		A string `json:"a"`
		B int    `json:"b"`
	}

	h1 := HashJSON(payload{A: "x", B: 1})
	h2 := HashJSON(payload{A: "x", B: 1})
	h3 := HashJSON(payload{A: "x", B: 2})

	if h1 != h2 {
		t.Fatal("expected identical hashes for identical payloads")
	}
	if h1 == h3 {
		t.Fatal("expected different hashes for different payloads")
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}
}
