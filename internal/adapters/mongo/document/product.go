package document

import (
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Slug          string             `bson:"slug"`
	Description   string             `bson:"description"`
	Price         int64              `bson:"price"`
	SKU           string             `bson:"sku,omitempty"`
	Barcode       string             `bson:"barcode,omitempty"`
	CategoryID    primitive.ObjectID `bson:"category_id,omitempty"`
	Images        []string           `bson:"images"`
	StockQuantity int                `bson:"stock_quantity"`
	StockMin      int                `bson:"stock_min"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	product := &domain.Product{
		ID:            domain.ID(doc.ID.Hex()),
		Name:          doc.Name,
		Slug:          doc.Slug,
		Description:   doc.Description,
		Price:         domain.Amount(doc.Price),
		SKU:           doc.SKU,
		Barcode:       doc.Barcode,
		Images:        doc.Images,
		StockQuantity: doc.StockQuantity,
		StockMin:      doc.StockMin,
		Status:        domain.ProductStatus(doc.Status),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}

	if !doc.CategoryID.IsZero() {
		product.CategoryID = domain.ID(doc.CategoryID.Hex())
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	return product
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         int64(p.Price),
		SKU:           p.SKU,
		Barcode:       p.Barcode,
		Images:        p.Images,
		StockQuantity: p.StockQuantity,
		StockMin:      p.StockMin,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	if p.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(p.ID))
		doc.ID = objectID
	}
	if p.CategoryID != "" {
		categoryID, _ := primitive.ObjectIDFromHex(string(p.CategoryID))
		doc.CategoryID = categoryID
	}

	return doc
}
