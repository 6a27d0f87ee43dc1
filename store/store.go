// Package store defines identifier-keyed persistence for every entity and a
// MongoDB implementation. Services depend on the interfaces only; relationships
// are resolved through explicit lookups, never embedded back-pointers.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/models"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type ProjectStore interface {
	Insert(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Project, error)
	Replace(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TaskStore interface {
	Insert(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)
	// ListByProjects returns all tasks belonging to any of the given projects.
	ListByProjects(ctx context.Context, projectIDs []primitive.ObjectID) ([]models.Task, error)
	Replace(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error
}

type CommentStore interface {
	Insert(ctx context.Context, comment *models.Comment) error
	ListByTask(ctx context.Context, taskID primitive.ObjectID) ([]models.Comment, error)
	DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error
}

type LabelStore interface {
	Insert(ctx context.Context, label *models.Label) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Label, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Label, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Label, error)
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) error
}

type TaskLabelStore interface {
	// Insert fails with ErrDuplicate when the (task, label) pair already exists.
	Insert(ctx context.Context, link *models.TaskLabel) error
	// Delete fails with ErrNotFound when the pair is absent.
	Delete(ctx context.Context, taskID, labelID primitive.ObjectID) error
	ListLabelIDsByTask(ctx context.Context, taskID primitive.ObjectID) ([]primitive.ObjectID, error)
	DeleteByTask(ctx context.Context, taskID primitive.ObjectID) error
}
