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

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		collection:     db.Collection("products"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "products",
		})
	}

	return repo
}

func (r *ProductRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys: bson.D{
				{Key: "stock_quantity", Value: 1},
				{Key: "stock_min", Value: 1},
			},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	product.CreatedAt = doc.CreatedAt
	product.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	doc, err := r.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) GetAll(ctx context.Context, limit, offset int64) ([]*domain.Product, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

func (r *ProductRepository) GetByCategory(ctx context.Context, categoryID domain.ID) ([]*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(string(categoryID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"category_id": objectID}, opts)
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

func (r *ProductRepository) GetLowStock(ctx context.Context, limit, offset int64) ([]*domain.Product, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "stock_quantity", Value: 1}})

	filter := bson.M{"$expr": bson.M{"$lt": bson.A{"$stock_quantity", "$stock_min"}}}

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return toProducts(docs), nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID domain.ID) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(string(categoryID))
	if err != nil {
		return 0, parseError(err)
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"category_id": objectID})
	if err != nil {
		return 0, parseError(err)
	}

	return count, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	update := bson.M{
		"name":        product.Name,
		"slug":        product.Slug,
		"description": product.Description,
		"price":       int64(product.Price),
		"sku":         product.SKU,
		"barcode":     product.Barcode,
		"images":      product.Images,
		"stock_min":   product.StockMin,
		"status":      string(product.Status),
		"updated_at":  time.Now(),
	}

	if product.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(string(product.CategoryID))
		if err != nil {
			return parseError(err)
		}
		update["category_id"] = categoryID
	}

	return r.BaseRepository.Update(ctx, string(product.ID), update)
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}

func toProducts(docs []document.ProductDocument) []*domain.Product {
	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}
	return products
}
