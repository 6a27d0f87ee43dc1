// Package storetest provides in-memory store implementations for tests.
package storetest

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/models"
	"taskforge/backend/store"
)

// Stores is a fully in-memory counterpart of store.Mongo.
type Stores struct {
	Users      *UserStore
	Projects   *ProjectStore
	Tasks      *TaskStore
	Comments   *CommentStore
	Labels     *LabelStore
	TaskLabels *TaskLabelStore
}

func New() *Stores {
	return &Stores{
		Users:      &UserStore{byID: map[primitive.ObjectID]models.User{}},
		Projects:   &ProjectStore{byID: map[primitive.ObjectID]models.Project{}},
		Tasks:      &TaskStore{byID: map[primitive.ObjectID]models.Task{}},
		Comments:   &CommentStore{byID: map[primitive.ObjectID]models.Comment{}},
		Labels:     &LabelStore{byID: map[primitive.ObjectID]models.Label{}},
		TaskLabels: &TaskLabelStore{},
	}
}

type UserStore struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]models.User
	// order preserves insertion order for deterministic listings
	order []primitive.ObjectID
}

func (s *UserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.byID {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.byID[user.ID] = *user
	s.order = append(s.order, user.ID)
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		if u := s.byID[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

type ProjectStore struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.Project
	order []primitive.ObjectID
}

func (s *ProjectStore) Insert(_ context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	s.byID[project.ID] = *project
	s.order = append(s.order, project.ID)
	return nil
}

func (s *ProjectStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *ProjectStore) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := []models.Project{}
	for _, id := range s.order {
		if p, ok := s.byID[id]; ok && p.OwnerID == ownerID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (s *ProjectStore) Replace(_ context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[project.ID]; !ok {
		return store.ErrNotFound
	}
	s.byID[project.ID] = *project
	return nil
}

func (s *ProjectStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

type TaskStore struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.Task
	order []primitive.ObjectID
}

func (s *TaskStore) Insert(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	s.byID[task.ID] = *task
	s.order = append(s.order, task.ID)
	return nil
}

func (s *TaskStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s *TaskStore) ListByProjects(_ context.Context, projectIDs []primitive.ObjectID) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range projectIDs {
		wanted[id] = true
	}
	tasks := []models.Task{}
	for _, id := range s.order {
		if t, ok := s.byID[id]; ok && wanted[t.ProjectID] {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *TaskStore) Replace(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[task.ID]; !ok {
		return store.ErrNotFound
	}
	s.byID[task.ID] = *task
	return nil
}

func (s *TaskStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

func (s *TaskStore) DeleteByProject(_ context.Context, projectID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.byID {
		if t.ProjectID == projectID {
			delete(s.byID, id)
		}
	}
	return nil
}

type CommentStore struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.Comment
	order []primitive.ObjectID
}

func (s *CommentStore) Insert(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	s.byID[comment.ID] = *comment
	s.order = append(s.order, comment.ID)
	return nil
}

func (s *CommentStore) ListByTask(_ context.Context, taskID primitive.ObjectID) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comments := []models.Comment{}
	for _, id := range s.order {
		if c, ok := s.byID[id]; ok && c.TaskID == taskID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (s *CommentStore) DeleteByTask(_ context.Context, taskID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, c := range s.byID {
		if c.TaskID == taskID {
			delete(s.byID, id)
		}
	}
	return nil
}

type LabelStore struct {
	mu    sync.Mutex
	byID  map[primitive.ObjectID]models.Label
	order []primitive.ObjectID
}

func (s *LabelStore) Insert(_ context.Context, label *models.Label) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if label.ID.IsZero() {
		label.ID = primitive.NewObjectID()
	}
	s.byID[label.ID] = *label
	s.order = append(s.order, label.ID)
	return nil
}

func (s *LabelStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &l, nil
}

func (s *LabelStore) ListByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := []models.Label{}
	for _, id := range s.order {
		if l, ok := s.byID[id]; ok && l.ProjectID == projectID {
			labels = append(labels, l)
		}
	}
	return labels, nil
}

func (s *LabelStore) ListByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	labels := []models.Label{}
	for _, id := range s.order {
		if l, ok := s.byID[id]; ok && wanted[l.ID] {
			labels = append(labels, l)
		}
	}
	return labels, nil
}

func (s *LabelStore) DeleteByProject(_ context.Context, projectID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.byID {
		if l.ProjectID == projectID {
			delete(s.byID, id)
		}
	}
	return nil
}

type TaskLabelStore struct {
	mu    sync.Mutex
	links []models.TaskLabel
}

func (s *TaskLabelStore) Insert(_ context.Context, link *models.TaskLabel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links {
		if l.TaskID == link.TaskID && l.LabelID == link.LabelID {
			return store.ErrDuplicate
		}
	}
	s.links = append(s.links, *link)
	return nil
}

func (s *TaskLabelStore) Delete(_ context.Context, taskID, labelID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.links {
		if l.TaskID == taskID && l.LabelID == labelID {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *TaskLabelStore) ListLabelIDsByTask(_ context.Context, taskID primitive.ObjectID) ([]primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []primitive.ObjectID{}
	for _, l := range s.links {
		if l.TaskID == taskID {
			ids = append(ids, l.LabelID)
		}
	}
	return ids, nil
}

func (s *TaskLabelStore) DeleteByTask(_ context.Context, taskID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.links[:0]
	for _, l := range s.links {
		if l.TaskID != taskID {
			kept = append(kept, l)
		}
	}
	s.links = kept
	return nil
}
