package store

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskforge/backend/models"
)

type mongoCommentStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func (s *mongoCommentStore) Insert(ctx context.Context, comment *models.Comment) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, comment)
	})
	if err != nil {
		return translateMongoErr(err)
	}
	comment.ID = res.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoCommentStore) ListByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		cursor, err := s.collection.Find(ctx, bson.M{"taskId": taskID})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		comments := []models.Comment{}
		if err := cursor.All(ctx, &comments); err != nil {
			return nil, err
		}
		return comments, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.([]models.Comment), nil
}

func (s *mongoCommentStore) DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteMany(ctx, bson.M{"taskId": taskID})
	})
	return translateMongoErr(err)
}
