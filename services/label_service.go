package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/models"
	"taskforge/backend/store"
)

type LabelService struct {
	labels     store.LabelStore
	taskLabels store.TaskLabelStore
	projects   *ProjectService
	tasks      *TaskService
}

func NewLabelService(labels store.LabelStore, taskLabels store.TaskLabelStore, projects *ProjectService, tasks *TaskService) *LabelService {
	return &LabelService{labels: labels, taskLabels: taskLabels, projects: projects, tasks: tasks}
}

type LabelCreateInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ListLabels returns all labels of a project the caller owns.
func (s *LabelService) ListLabels(ctx context.Context, caller *models.User, projectID primitive.ObjectID) ([]models.Label, error) {
	if _, err := s.projects.GetProject(ctx, caller, projectID); err != nil {
		return nil, err
	}
	return s.labels.ListByProject(ctx, projectID)
}

// CreateLabel creates a label under a project the caller owns.
func (s *LabelService) CreateLabel(ctx context.Context, caller *models.User, projectID primitive.ObjectID, input LabelCreateInput) (*models.Label, error) {
	if input.Name == "" || input.Color == "" {
		return nil, fmt.Errorf("%w: label name and color are required", ErrValidation)
	}

	if _, err := s.projects.GetProject(ctx, caller, projectID); err != nil {
		return nil, err
	}

	label := &models.Label{
		Name:      input.Name,
		Color:     input.Color,
		ProjectID: projectID,
	}

	if err := s.labels.Insert(ctx, label); err != nil {
		return nil, err
	}
	return label, nil
}

// ListTaskLabels returns the labels attached to a task visible to the caller.
func (s *LabelService) ListTaskLabels(ctx context.Context, caller *models.User, taskID primitive.ObjectID) ([]models.Label, error) {
	if _, err := s.tasks.GetTask(ctx, caller, taskID); err != nil {
		return nil, err
	}

	ids, err := s.taskLabels.ListLabelIDsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.labels.ListByIDs(ctx, ids)
}

// AssignLabel attaches a label to a task. The label must belong to the task's
// project; a duplicate assignment reports Conflict.
func (s *LabelService) AssignLabel(ctx context.Context, caller *models.User, taskID, labelID primitive.ObjectID) error {
	task, err := s.tasks.GetTask(ctx, caller, taskID)
	if err != nil {
		return err
	}

	label, err := s.labels.GetByID(ctx, labelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: label not found", ErrNotFound)
		}
		return err
	}
	if label.ProjectID != task.ProjectID {
		return fmt.Errorf("%w: label not found", ErrNotFound)
	}

	if err := s.taskLabels.Insert(ctx, &models.TaskLabel{TaskID: taskID, LabelID: labelID}); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return fmt.Errorf("%w: label already assigned", ErrConflict)
		}
		return err
	}
	return nil
}

// UnassignLabel detaches a label from a task.
func (s *LabelService) UnassignLabel(ctx context.Context, caller *models.User, taskID, labelID primitive.ObjectID) error {
	if _, err := s.tasks.GetTask(ctx, caller, taskID); err != nil {
		return err
	}

	if err := s.taskLabels.Delete(ctx, taskID, labelID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: label not assigned", ErrNotFound)
		}
		return err
	}
	return nil
}
