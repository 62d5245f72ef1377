package dto

import "github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"

type CreateProductRequest struct {
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description"`
	Price         int       `json:"price" binding:"required,gt=0"`
	SKU           string    `json:"sku"`
	Barcode       string    `json:"barcode"`
	CategoryID    domain.ID `json:"category_id"`
	Images        []string  `json:"images"`
	StockQuantity int       `json:"stock_quantity" binding:"gte=0"`
	StockMin      int       `json:"stock_min" binding:"gte=0"`
	Status        string    `json:"status"`
}

type UpdateProductRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int       `json:"price" binding:"omitempty,gt=0"`
	SKU           string    `json:"sku"`
	Barcode       string    `json:"barcode"`
	CategoryID    domain.ID `json:"category_id"`
	Images        []string  `json:"images"`
	StockMin      *int      `json:"stock_min" binding:"omitempty,gte=0"`
	Status        string    `json:"status"`
}
