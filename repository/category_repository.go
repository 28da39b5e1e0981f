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

func (s *MongoStore) EnsureCategoryIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()
	_, err := s.categories().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoStore) categoryExists(ctx context.Context, id string) error {
	if id == "" {
		return apperr.Validationf("category_id is required")
	}
	var tmp struct {
		ID string `bson:"_id"`
	}
	if err := s.categories().FindOne(ctx, bson.M{"_id": id}).Decode(&tmp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &apperr.NotFoundError{Entity: "category", ID: id}
		}
		return err
	}
	return nil
}

func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := s.categories().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Category
	for cur.Next(ctx) {
		var c models.Category
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, cur.Err()
}

func (s *MongoStore) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var c models.Category
	if err := s.categories().FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "category", ID: id}
		}
		return nil, err
	}
	return &c, nil
}

func (s *MongoStore) CreateCategory(ctx context.Context, c *models.Category) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if _, err := s.categories().InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Validationf("category %s already exists", c.Name)
		}
		return err
	}
	return nil
}

func (s *MongoStore) UpdateCategory(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.categories().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "category", ID: id}
	}
	return nil
}

func (s *MongoStore) DeleteCategory(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.categories().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Entity: "category", ID: id}
	}
	return nil
}
