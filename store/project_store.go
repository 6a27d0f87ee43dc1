package store

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskforge/backend/models"
)

type mongoProjectStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func (s *mongoProjectStore) Insert(ctx context.Context, project *models.Project) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, project)
	})
	if err != nil {
		return translateMongoErr(err)
	}
	project.ID = res.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoProjectStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		var project models.Project
		if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project); err != nil {
			return nil, err
		}
		return &project, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.(*models.Project), nil
}

func (s *mongoProjectStore) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Project, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		cursor, err := s.collection.Find(ctx, bson.M{"ownerId": ownerID})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		projects := []models.Project{}
		if err := cursor.All(ctx, &projects); err != nil {
			return nil, err
		}
		return projects, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.([]models.Project), nil
}

func (s *mongoProjectStore) Replace(ctx context.Context, project *models.Project) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
	})
	return translateMongoErr(err)
}

func (s *mongoProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteOne(ctx, bson.M{"_id": id})
	})
	return translateMongoErr(err)
}
