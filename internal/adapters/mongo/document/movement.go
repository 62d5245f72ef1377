package document

import (
	"time"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MovementDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ProductID  primitive.ObjectID `bson:"product_id"`
	Kind       string             `bson:"kind"`
	Quantity   int                `bson:"quantity"`
	Reason     string             `bson:"reason,omitempty"`
	Ref        string             `bson:"ref,omitempty"`
	OccurredAt time.Time          `bson:"occurred_at"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc MovementDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *MovementDocument) ToDomain() *domain.Movement {
	return &domain.Movement{
		ID:         domain.ID(doc.ID.Hex()),
		ProductID:  domain.ID(doc.ProductID.Hex()),
		Kind:       domain.MovementKind(doc.Kind),
		Quantity:   doc.Quantity,
		Reason:     doc.Reason,
		Ref:        doc.Ref,
		OccurredAt: doc.OccurredAt,
		CreatedAt:  doc.CreatedAt,
	}
}

func ToMovementDocument(m *domain.Movement) *MovementDocument {
	doc := &MovementDocument{
		Kind:       string(m.Kind),
		Quantity:   m.Quantity,
		Reason:     m.Reason,
		Ref:        m.Ref,
		OccurredAt: m.OccurredAt,
		CreatedAt:  m.CreatedAt,
	}

	if m.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(m.ID))
		doc.ID = objectID
	}
	if m.ProductID != "" {
		productID, _ := primitive.ObjectIDFromHex(string(m.ProductID))
		doc.ProductID = productID
	}

	return doc
}
