package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/models"
	"taskforge/backend/store"
)

type CommentService struct {
	comments store.CommentStore
	tasks    *TaskService
}

func NewCommentService(comments store.CommentStore, tasks *TaskService) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

// ListComments returns all comments on a task visible to the caller. An
// invisible task reports NotFound, same as GetTask.
func (s *CommentService) ListComments(ctx context.Context, caller *models.User, taskID primitive.ObjectID) ([]models.Comment, error) {
	if _, err := s.tasks.GetTask(ctx, caller, taskID); err != nil {
		return nil, err
	}
	return s.comments.ListByTask(ctx, taskID)
}

// CreateComment adds a comment authored by the caller. The admission check is
// the same visibility join as the read path, but a failed check reports
// Forbidden here rather than NotFound.
func (s *CommentService) CreateComment(ctx context.Context, caller *models.User, taskID primitive.ObjectID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", ErrValidation)
	}

	if _, err := s.tasks.GetTask(ctx, caller, taskID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: access denied to this task", ErrForbidden)
		}
		return nil, err
	}

	now := time.Now().UTC()
	comment := &models.Comment{
		Content:   content,
		TaskID:    taskID,
		AuthorID:  caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
