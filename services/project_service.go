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

type ProjectService struct {
	projects   store.ProjectStore
	tasks      store.TaskStore
	comments   store.CommentStore
	labels     store.LabelStore
	taskLabels store.TaskLabelStore
}

func NewProjectService(projects store.ProjectStore, tasks store.TaskStore, comments store.CommentStore, labels store.LabelStore, taskLabels store.TaskLabelStore) *ProjectService {
	return &ProjectService{
		projects:   projects,
		tasks:      tasks,
		comments:   comments,
		labels:     labels,
		taskLabels: taskLabels,
	}
}

type ProjectCreateInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
}

// ListProjects returns every project owned by the caller.
func (s *ProjectService) ListProjects(ctx context.Context, caller *models.User) ([]models.Project, error) {
	return s.projects.ListByOwner(ctx, caller.ID)
}

// GetProject loads a project the caller owns. A missing project is NotFound;
// an existing project with a different owner is Forbidden. NotFound always
// wins when the ID does not exist at all.
func (s *ProjectService) GetProject(ctx context.Context, caller *models.User, projectID primitive.ObjectID) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: project not found", ErrNotFound)
		}
		return nil, err
	}
	if project.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: access denied to this project", ErrForbidden)
	}
	return project, nil
}

// CreateProject inserts a project owned by the caller. Any owner supplied by
// the client is ignored.
func (s *ProjectService) CreateProject(ctx context.Context, caller *models.User, input ProjectCreateInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if input.Status == "" {
		input.Status = models.ProjectActive
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid project status %q", ErrValidation, input.Status)
	}

	now := time.Now().UTC()
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		OwnerID:     caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, err
	}

	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: User '%s' created project '%s'", caller.Email, project.Name)
	return project, nil
}

// UpdateProject applies only the fields present in the update. An empty
// update is a pure no-op: no write, no timestamp bump.
func (s *ProjectService) UpdateProject(ctx context.Context, caller *models.User, projectID primitive.ObjectID, update models.ProjectUpdate) (*models.Project, error) {
	project, err := s.GetProject(ctx, caller, projectID)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return project, nil
	}

	if update.Status != nil && !update.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid project status %q", ErrValidation, *update.Status)
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Replace(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and everything under it: its tasks, those
// tasks' comments and label links, and its labels.
func (s *ProjectService) DeleteProject(ctx context.Context, caller *models.User, projectID primitive.ObjectID) error {
	project, err := s.GetProject(ctx, caller, projectID)
	if err != nil {
		return err
	}

	tasks, err := s.tasks.ListByProjects(ctx, []primitive.ObjectID{project.ID})
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if err := s.comments.DeleteByTask(ctx, task.ID); err != nil {
			return err
		}
		if err := s.taskLabels.DeleteByTask(ctx, task.ID); err != nil {
			return err
		}
	}
	if err := s.tasks.DeleteByProject(ctx, project.ID); err != nil {
		return err
	}
	if err := s.labels.DeleteByProject(ctx, project.ID); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, project.ID); err != nil {
		return err
	}

	logging.Logger.Infof("Event ID: PROJECT_DELETED, Description: User '%s' deleted project '%s' and %d tasks", caller.Email, project.Name, len(tasks))
	return nil
}
