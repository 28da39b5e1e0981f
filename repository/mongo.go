// Package repository provides the MongoDB-backed ledger store plus an
// in-memory implementation used by tests. Both satisfy services.Store.
package repository

import (
	"context"
	"time"

	"github.com/op/go-logging"
	"go.mongodb.org/mongo-driver/mongo"
)

var log = logging.MustGetLogger("repository")

const opTimeout = 10 * time.Second

// MongoStore implements services.Store plus the catalog and reporting
// queries the controllers use directly.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{client: client, db: db}
}

// Lazy collection getters, one per entity.
func (s *MongoStore) users() *mongo.Collection        { return s.db.Collection("users") }
func (s *MongoStore) products() *mongo.Collection     { return s.db.Collection("products") }
func (s *MongoStore) categories() *mongo.Collection   { return s.db.Collection("categories") }
func (s *MongoStore) customers() *mongo.Collection    { return s.db.Collection("customers") }
func (s *MongoStore) employees() *mongo.Collection    { return s.db.Collection("employees") }
func (s *MongoStore) transactions() *mongo.Collection { return s.db.Collection("transactions") }
func (s *MongoStore) counters() *mongo.Collection     { return s.db.Collection("counters") }

// opCtx derives a per-operation timeout from the caller's context. Session
// routing survives the wrap because the driver finds the session through
// context values.
func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// WithUnit runs fn inside one MongoDB session transaction. Any error from fn
// aborts the transaction; nothing written through fn's context survives.
// Requires the deployment to support multi-document transactions (replica
// set or mongos).
func (s *MongoStore) WithUnit(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
