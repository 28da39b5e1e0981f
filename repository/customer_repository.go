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

func (s *MongoStore) EnsureCustomerIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()
	_, err := s.customers().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}

func (s *MongoStore) ListCustomers(ctx context.Context, search string) ([]models.Customer, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{bson.M{"name": regex}, bson.M{"phone": regex}}
	}

	cur, err := s.customers().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Customer
	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, cur.Err()
}

func (s *MongoStore) CustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var c models.Customer
	if err := s.customers().FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "customer", ID: id}
		}
		return nil, err
	}
	return &c, nil
}

func (s *MongoStore) CreateCustomer(ctx context.Context, c *models.Customer) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	_, err := s.customers().InsertOne(ctx, c)
	return err
}

func (s *MongoStore) UpdateCustomer(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.customers().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "customer", ID: id}
	}
	return nil
}

func (s *MongoStore) DeleteCustomer(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.customers().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Entity: "customer", ID: id}
	}
	return nil
}

// AccrueLoyalty applies one sale's accrual as a single update so a
// customer's aggregates always move together.
func (s *MongoStore) AccrueLoyalty(ctx context.Context, customerID string, spent float64, points int) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.customers().UpdateOne(ctx,
		bson.M{"_id": customerID},
		bson.M{"$inc": bson.M{
			"total_spent": spent,
			"points":      points,
			"visit_count": 1,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "customer", ID: customerID}
	}
	return nil
}
