package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/logging"
	"taskforge/backend/models"
	"taskforge/backend/store"
)

type TaskService struct {
	tasks      store.TaskStore
	projects   store.ProjectStore
	comments   store.CommentStore
	taskLabels store.TaskLabelStore
}

func NewTaskService(tasks store.TaskStore, projects store.ProjectStore, comments store.CommentStore, taskLabels store.TaskLabelStore) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, comments: comments, taskLabels: taskLabels}
}

type TaskCreateInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	ProjectID   primitive.ObjectID  `json:"project_id"`
	AssigneeID  *primitive.ObjectID `json:"assignee_id"`
}

// ListTasks returns the tasks whose parent project the caller owns,
// optionally restricted to one project.
func (s *TaskService) ListTasks(ctx context.Context, caller *models.User, projectID *primitive.ObjectID) ([]models.Task, error) {
	owned, err := s.projects.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	scope := make([]primitive.ObjectID, 0, len(owned))
	for _, p := range owned {
		if projectID != nil && p.ID != *projectID {
			continue
		}
		scope = append(scope, p.ID)
	}

	return s.tasks.ListByProjects(ctx, scope)
}

// GetTask loads a task visible to the caller. Visibility is the ownership
// join: the task's parent project must be owned by the caller. A task that is
// missing and a task that exists but is not visible both report NotFound.
func (s *TaskService) GetTask(ctx context.Context, caller *models.User, taskID primitive.ObjectID) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: task not found", ErrNotFound)
		}
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, task.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: task not found", ErrNotFound)
		}
		return nil, err
	}
	if project.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: task not found", ErrNotFound)
	}
	return task, nil
}

// CreateTask inserts a task under a project the caller owns. A missing or
// foreign project reports Forbidden.
func (s *TaskService) CreateTask(ctx context.Context, caller *models.User, input TaskCreateInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if input.Status == "" {
		input.Status = models.StatusTodo
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid task status %q", ErrValidation, input.Status)
	}
	if !input.Priority.Valid() {
		return nil, fmt.Errorf("%w: invalid task priority %q", ErrValidation, input.Priority)
	}

	project, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: access denied to this project", ErrForbidden)
		}
		return nil, err
	}
	if project.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: access denied to this project", ErrForbidden)
	}

	now := time.Now().UTC()
	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Insert(ctx, task); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: TASK_CREATED, Description: User '%s' created task '%s' in project %s", caller.Email, task.Title, task.ProjectID.Hex())
	return task, nil
}

// UpdateTask applies only the fields present in the update. An empty update
// is a pure no-op: no write, no timestamp bump.
func (s *TaskService) UpdateTask(ctx context.Context, caller *models.User, taskID primitive.ObjectID, update models.TaskUpdate) (*models.Task, error) {
	task, err := s.GetTask(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return task, nil
	}

	if update.Status != nil && !update.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid task status %q", ErrValidation, *update.Status)
	}
	if update.Priority != nil && !update.Priority.Valid() {
		return nil, fmt.Errorf("%w: invalid task priority %q", ErrValidation, *update.Priority)
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.AssigneeID.Set {
		task.AssigneeID = update.AssigneeID.Value
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Replace(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task together with its comments and label links, so
// no association row outlives its task.
func (s *TaskService) DeleteTask(ctx context.Context, caller *models.User, taskID primitive.ObjectID) error {
	task, err := s.GetTask(ctx, caller, taskID)
	if err != nil {
		return err
	}
	if err := s.comments.DeleteByTask(ctx, task.ID); err != nil {
		return err
	}
	if err := s.taskLabels.DeleteByTask(ctx, task.ID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, task.ID)
}
