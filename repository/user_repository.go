package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/utils"
)

func (s *MongoStore) EnsureUserIndexes() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()
	_, err := s.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// EnsureAdminUser seeds a default admin account when the users collection is
// empty, so a fresh deployment can be logged into. The password must be
// changed afterwards.
func (s *MongoStore) EnsureAdminUser() error {
	ctx, cancel := opCtx(context.Background())
	defer cancel()

	count, err := s.users().CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := models.User{
		ID:        uuid.NewString(),
		Username:  "admin",
		Password:  hashed,
		Name:      "Administrator",
		Role:      models.RoleAdmin,
		Email:     "admin@kasir.com",
		CreatedAt: time.Now(),
	}
	if _, err := s.users().InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Warning("seeded default admin account (admin/admin123), change the password")
	return nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cur, err := s.users().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, cur.Err()
}

func (s *MongoStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var u models.User
	if err := s.users().FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "user", ID: id}
		}
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var u models.User
	if err := s.users().FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Entity: "user", ID: username}
		}
		return nil, err
	}
	return &u, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, u *models.User) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if _, err := s.users().InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Validationf("username %s already exists", u.Username)
		}
		return err
	}
	return nil
}

func (s *MongoStore) UpdateUser(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (s *MongoStore) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.users().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Entity: "user", ID: id}
	}
	return nil
}
