package store

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskforge/backend/models"
)

type mongoUserStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func (s *mongoUserStore) Insert(ctx context.Context, user *models.User) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, user)
	})
	if err != nil {
		return translateMongoErr(err)
	}
	user.ID = res.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		var user models.User
		if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
			return nil, err
		}
		return &user, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.(*models.User), nil
}

func (s *mongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		var user models.User
		if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
			return nil, err
		}
		return &user, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.(*models.User), nil
}
