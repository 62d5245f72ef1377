package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/adapters/mongo/document"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/domain"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/logger"
	"github.com/MARCELOASSIS87/hypesoft-challenge/internal/core/port"
)

type CategoryRepository struct {
	*BaseRepository[document.CategoryDocument]
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) port.CategoryPort {
	repo := &CategoryRepository{
		BaseRepository: NewBaseRepository[document.CategoryDocument](db, "categories"),
		collection:     db.Collection("categories"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "categories",
		})
	}

	return repo
}

func (r *CategoryRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	doc := document.ToCategoryDocument(category)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	category.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	category.CreatedAt = doc.CreatedAt
	category.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Category, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, len(docs))
	for i, doc := range docs {
		categories[i] = doc.ToDomain()
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	update := bson.M{
		"name":        category.Name,
		"slug":        category.Slug,
		"description": category.Description,
		"is_active":   category.IsActive,
		"updated_at":  time.Now(),
	}

	return r.BaseRepository.Update(ctx, string(category.ID), update)
}

func (r *CategoryRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
