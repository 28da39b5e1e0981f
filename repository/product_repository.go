package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func (s *MongoStore) EnsureProductIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()
	_, err := s.products().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "sku", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

// ListProducts supports the catalog's optional category and name/SKU search
// filters.
func (s *MongoStore) ListProducts(ctx context.Context, categoryID, search string) ([]models.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{bson.M{"name": regex}, bson.M{"sku": regex}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.products().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Product
	for cur.Next(ctx) {
		var p models.Product
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, cur.Err()
}

func (s *MongoStore) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var p models.Product
	if err := s.products().FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "product", ID: id}
		}
		return nil, err
	}
	return &p, nil
}

// CreateProduct requires an existing category: a bad reference fails instead
// of silently falling back to a default.
func (s *MongoStore) CreateProduct(ctx context.Context, p *models.Product) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if err := s.categoryExists(ctx, p.CategoryID); err != nil {
		return err
	}
	if _, err := s.products().InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Validationf("sku %s already exists", p.SKU)
		}
		return err
	}
	return nil
}

// productUpdateSet builds the $set document for a partial product update.
// Only fields present in the payload are written; absent fields never touch
// the stored document.
func productUpdateSet(in models.ProductUpdate) (bson.M, error) {
	set := bson.M{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperr.Validationf("name must not be empty")
		}
		set["name"] = *in.Name
	}
	if in.CategoryID != nil {
		set["category_id"] = *in.CategoryID
	}
	if in.SKU != nil {
		if *in.SKU == "" {
			return nil, apperr.Validationf("sku must not be empty")
		}
		set["sku"] = *in.SKU
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, apperr.Validationf("price must not be negative")
		}
		set["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, apperr.Validationf("stock must not be negative")
		}
		set["stock"] = *in.Stock
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, apperr.Validationf("min_stock must not be negative")
		}
		set["min_stock"] = *in.MinStock
	}
	if len(set) == 0 {
		return nil, apperr.Validationf("nothing to update")
	}
	return set, nil
}

func (s *MongoStore) UpdateProduct(ctx context.Context, id string, in models.ProductUpdate) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set, err := productUpdateSet(in)
	if err != nil {
		return err
	}
	if in.CategoryID != nil {
		if err := s.categoryExists(ctx, *in.CategoryID); err != nil {
			return err
		}
	}

	res, err := s.products().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Validationf("sku already exists")
		}
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "product", ID: id}
	}
	return nil
}

func (s *MongoStore) DeleteProduct(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.products().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Entity: "product", ID: id}
	}
	return nil
}

// DeductStock is the conditional decrement behind the stock guard: the
// filter only matches while stock >= qty, so two racing checkouts for the
// last unit resolve to exactly one winner.
func (s *MongoStore) DeductStock(ctx context.Context, productID string, qty int) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.products().UpdateOne(ctx,
		bson.M{"_id": productID, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		count, err := s.products().CountDocuments(ctx, bson.M{"_id": productID})
		if err != nil {
			return err
		}
		if count == 0 {
			return &apperr.NotFoundError{Entity: "product", ID: productID}
		}
		return apperr.ErrInsufficientStock
	}
	return nil
}

func (s *MongoStore) AddStock(ctx context.Context, productID string, qty int) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.products().UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$inc": bson.M{"stock": qty}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "product", ID: productID}
	}
	return nil
}
