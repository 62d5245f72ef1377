package document

import (
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug"`
	Description string             `bson:"description"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (doc CategoryDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *CategoryDocument) ToDomain() *domain.Category {
	return &domain.Category{
		ID:          domain.ID(doc.ID.Hex()),
		Name:        doc.Name,
		Slug:        doc.Slug,
		Description: doc.Description,
		IsActive:    doc.IsActive,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func ToCategoryDocument(c *domain.Category) *CategoryDocument {
	doc := &CategoryDocument{
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}

	if c.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(c.ID))
		doc.ID = objectID
	}

	return doc
}
