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

func (s *MongoStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := s.employees().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Employee
	for cur.Next(ctx) {
		var e models.Employee
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, cur.Err()
}

func (s *MongoStore) EmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var e models.Employee
	if err := s.employees().FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "employee", ID: id}
		}
		return nil, err
	}
	return &e, nil
}

func (s *MongoStore) CreateEmployee(ctx context.Context, e *models.Employee) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	_, err := s.employees().InsertOne(ctx, e)
	return err
}

func (s *MongoStore) UpdateEmployee(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.employees().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}

func (s *MongoStore) DeleteEmployee(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.employees().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}
