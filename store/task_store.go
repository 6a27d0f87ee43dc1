package store

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskforge/backend/models"
)

type mongoTaskStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func (s *mongoTaskStore) Insert(ctx context.Context, task *models.Task) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, task)
	})
	if err != nil {
		return translateMongoErr(err)
	}
	task.ID = res.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoTaskStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		var task models.Task
		if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
			return nil, err
		}
		return &task, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.(*models.Task), nil
}

func (s *mongoTaskStore) ListByProjects(ctx context.Context, projectIDs []primitive.ObjectID) ([]models.Task, error) {
	if len(projectIDs) == 0 {
		return []models.Task{}, nil
	}

	res, err := s.breaker.Execute(func() (interface{}, error) {
		cursor, err := s.collection.Find(ctx, bson.M{"projectId": bson.M{"$in": projectIDs}})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		tasks := []models.Task{}
		if err := cursor.All(ctx, &tasks); err != nil {
			return nil, err
		}
		return tasks, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.([]models.Task), nil
}

func (s *mongoTaskStore) Replace(ctx context.Context, task *models.Task) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	})
	return translateMongoErr(err)
}

func (s *mongoTaskStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteOne(ctx, bson.M{"_id": id})
	})
	return translateMongoErr(err)
}

func (s *mongoTaskStore) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteMany(ctx, bson.M{"projectId": projectID})
	})
	return translateMongoErr(err)
}
