package store

import (
	"context"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskforge/backend/models"
)

type mongoLabelStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func (s *mongoLabelStore) Insert(ctx context.Context, label *models.Label) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, label)
	})
	if err != nil {
		return translateMongoErr(err)
	}
	label.ID = res.(*mongo.InsertOneResult).InsertedID.(primitive.ObjectID)
	return nil
}

func (s *mongoLabelStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Label, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		var label models.Label
		if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&label); err != nil {
			return nil, err
		}
		return &label, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.(*models.Label), nil
}

func (s *mongoLabelStore) ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Label, error) {
	return s.list(ctx, bson.M{"projectId": projectID})
}

func (s *mongoLabelStore) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Label, error) {
	if len(ids) == 0 {
		return []models.Label{}, nil
	}
	return s.list(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (s *mongoLabelStore) DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteMany(ctx, bson.M{"projectId": projectID})
	})
	return translateMongoErr(err)
}

func (s *mongoLabelStore) list(ctx context.Context, filter bson.M) ([]models.Label, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		cursor, err := s.collection.Find(ctx, filter)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		labels := []models.Label{}
		if err := cursor.All(ctx, &labels); err != nil {
			return nil, err
		}
		return labels, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.([]models.Label), nil
}

type mongoTaskLabelStore struct {
	collection *mongo.Collection
	breaker    *gobreaker.CircuitBreaker
}

func (s *mongoTaskLabelStore) Insert(ctx context.Context, link *models.TaskLabel) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.InsertOne(ctx, link)
	})
	return translateMongoErr(err)
}

func (s *mongoTaskLabelStore) Delete(ctx context.Context, taskID, labelID primitive.ObjectID) error {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteOne(ctx, bson.M{"taskId": taskID, "labelId": labelID})
	})
	if err != nil {
		return translateMongoErr(err)
	}
	if res.(*mongo.DeleteResult).DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoTaskLabelStore) ListLabelIDsByTask(ctx context.Context, taskID primitive.ObjectID) ([]primitive.ObjectID, error) {
	res, err := s.breaker.Execute(func() (interface{}, error) {
		cursor, err := s.collection.Find(ctx, bson.M{"taskId": taskID})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		links := []models.TaskLabel{}
		if err := cursor.All(ctx, &links); err != nil {
			return nil, err
		}
		ids := make([]primitive.ObjectID, 0, len(links))
		for _, link := range links {
			ids = append(ids, link.LabelID)
		}
		return ids, nil
	})
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return res.([]primitive.ObjectID), nil
}

func (s *mongoTaskLabelStore) DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.collection.DeleteMany(ctx, bson.M{"taskId": taskID})
	})
	return translateMongoErr(err)
}
