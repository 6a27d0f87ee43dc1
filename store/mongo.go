package store

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskforge/backend/logging"
)

// Mongo bundles the entity stores backed by a single MongoDB database. Every
// collection call goes through one circuit breaker so a struggling database
// trips fast instead of piling up requests.
type Mongo struct {
	Users      UserStore
	Projects   ProjectStore
	Tasks      TaskStore
	Comments   CommentStore
	Labels     LabelStore
	TaskLabels TaskLabelStore
}

func NewMongo(db *mongo.Database) *Mongo {
	breaker := newBreaker()

	return &Mongo{
		Users:      &mongoUserStore{collection: db.Collection("users"), breaker: breaker},
		Projects:   &mongoProjectStore{collection: db.Collection("projects"), breaker: breaker},
		Tasks:      &mongoTaskStore{collection: db.Collection("tasks"), breaker: breaker},
		Comments:   &mongoCommentStore{collection: db.Collection("comments"), breaker: breaker},
		Labels:     &mongoLabelStore{collection: db.Collection("labels"), breaker: breaker},
		TaskLabels: &mongoTaskLabelStore{collection: db.Collection("task_labels"), breaker: breaker},
	}
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "MongoCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		// A missing document or a duplicate key is a normal query outcome,
		// not a database failure; only real failures may trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, mongo.ErrNoDocuments) || mongo.IsDuplicateKeyError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
}

// EnsureIndexes creates the unique indexes the invariants rely on: user email
// and the (task, label) association pair.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("task_labels").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "taskId", Value: 1}, {Key: "labelId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// translateMongoErr maps driver errors onto the store sentinel kinds.
func translateMongoErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
