package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/mongo/document"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/outbox"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/serviceerrors"
)

type MovementRepository struct {
	*BaseRepository[document.MovementDocument]
	db         *mongo.Database
	collection *mongo.Collection
	products   *mongo.Collection
	outbox     outbox.Repository
}

func NewMovementRepository(db *mongo.Database, outbox outbox.Repository) port.MovementPort {
	repo := &MovementRepository{
		BaseRepository: NewBaseRepository[document.MovementDocument](db, "movements"),
		db:             db,
		collection:     db.Collection("movements"),
		products:       db.Collection("products"),
		outbox:         outbox,
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "movements",
		})
	}

	return repo
}

func (r *MovementRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "product_id", Value: 1},
				{Key: "occurred_at", Value: -1},
			},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// ApplyWithOutbox writes the movement, the product's new stock level and the
// outbox entry in a single transaction. The stock update is conditioned on
// expectedStock, so a concurrent movement on the same product aborts the
// transaction with a conflict instead of silently losing the other write.
func (r *MovementRepository) ApplyWithOutbox(ctx context.Context, movement *domain.Movement, expectedStock, newStock int) error {
	if movement.ID != "" {
		return errors.New("cannot apply movement with existing ID")
	}

	productID, err := primitive.ObjectIDFromHex(string(movement.ProductID))
	if err != nil {
		return parseError(err)
	}

	doc := document.ToMovementDocument(movement)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = time.Now()

	movement.ID = domain.ID(doc.ID.Hex())
	movement.CreatedAt = doc.CreatedAt

	event := domain.NewStockMovementAppliedEvent(movement, newStock)
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := r.products.UpdateOne(sessCtx,
			bson.M{"_id": productID, "stock_quantity": expectedStock},
			bson.M{"$set": bson.M{
				"stock_quantity": newStock,
				"updated_at":     time.Now(),
			}},
		)
		if err != nil {
			return nil, parseError(err)
		}
		if result.MatchedCount == 0 {
			return nil, serviceerrors.NewConflictError("stock level changed concurrently")
		}

		if _, err := r.collection.InsertOne(sessCtx, doc); err != nil {
			return nil, parseError(err)
		}

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		if err := r.outbox.Insert(sessCtx, entry); err != nil {
			return nil, err
		}

		return nil, nil
	})
	if err != nil {
		movement.ID = ""
		return err
	}

	return nil
}

func (r *MovementRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Movement, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *MovementRepository) GetByProduct(ctx context.Context, productID domain.ID) ([]*domain.Movement, error) {
	objectID, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"product_id": objectID}, opts)
	if err != nil {
		return nil, err
	}

	movements := make([]*domain.Movement, len(docs))
	for i, doc := range docs {
		movements[i] = doc.ToDomain()
	}

	return movements, nil
}
