package domain

import "time"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDraft    ProductStatus = "draft"
)

func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive || s == ProductStatusDraft
}

type Product struct {
	ID            ID
	Name          string
	Slug          string
	Description   string
	Price         Amount
	SKU           string
	Barcode       string
	CategoryID    ID
	Images        []string
	StockQuantity int
	StockMin      int
	Status        ProductStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewProduct(name, slug, description string, price Amount, sku, barcode string, categoryID ID, images []string, stockQuantity, stockMin int, status ProductStatus) *Product {
	if status == "" {
		status = ProductStatusActive
	}
	if images == nil {
		images = []string{}
	}
	return &Product{
		Name:          name,
		Slug:          slug,
		Description:   description,
		Price:         price,
		SKU:           sku,
		Barcode:       barcode,
		CategoryID:    categoryID,
		Images:        images,
		StockQuantity: stockQuantity,
		StockMin:      stockMin,
		Status:        status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// IsLowStock reports whether the product fell below its minimum stock level.
func (p *Product) IsLowStock() bool {
	return p.StockQuantity < p.StockMin
}
