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

func (s *MongoStore) EnsureTransactionIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()
	_, err := s.transactions().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "invoice_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "cashier_id", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

// InsertTransaction writes the invoice header with its embedded line items.
// Transactions are insert-only: no update or delete method exists.
func (s *MongoStore) InsertTransaction(ctx context.Context, t *models.Transaction) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()
	_, err := s.transactions().InsertOne(ctx, t)
	return err
}

func (s *MongoStore) TransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var t models.Transaction
	if err := s.transactions().FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "transaction", ID: id}
		}
		return nil, err
	}
	return &t, nil
}

func (s *MongoStore) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	query := bson.M{}
	if filter.CashierID != "" {
		query["cashier_id"] = filter.CashierID
	}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if !filter.Start.IsZero() || !filter.End.IsZero() {
		rng := bson.M{}
		if !filter.Start.IsZero() {
			rng["$gte"] = filter.Start
		}
		if !filter.End.IsZero() {
			rng["$lt"] = filter.End
		}
		query["created_at"] = rng
	}

	cur, err := s.transactions().Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.Transaction
	for cur.Next(ctx) {
		var t models.Transaction
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, cur.Err()
}
