package services

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/models"
	"taskforge/backend/store/storetest"
)

type testEnv struct {
	stores   *storetest.Stores
	auth     *AuthService
	projects *ProjectService
	tasks    *TaskService
	comments *CommentService
	labels   *LabelService
}

func newTestEnv() *testEnv {
	stores := storetest.New()
	projects := NewProjectService(stores.Projects, stores.Tasks, stores.Comments, stores.Labels, stores.TaskLabels)
	tasks := NewTaskService(stores.Tasks, stores.Projects, stores.Comments, stores.TaskLabels)
	return &testEnv{
		stores:   stores,
		auth:     NewAuthService(stores.Users),
		projects: projects,
		tasks:    tasks,
		comments: NewCommentService(stores.Comments, tasks),
		labels:   NewLabelService(stores.Labels, stores.TaskLabels, projects, tasks),
	}
}

// addUser inserts a user directly, bypassing registration.
func (e *testEnv) addUser(t *testing.T, email string) *models.User {
	t.Helper()
	now := time.Now().UTC()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Name:         email,
		Role:         models.RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := e.stores.Users.Insert(context.Background(), user); err != nil {
		t.Fatalf("insert user %s: %v", email, err)
	}
	return user
}

func (e *testEnv) addProject(t *testing.T, owner *models.User, name string) *models.Project {
	t.Helper()
	project, err := e.projects.CreateProject(context.Background(), owner, ProjectCreateInput{Name: name})
	if err != nil {
		t.Fatalf("create project %s: %v", name, err)
	}
	return project
}

func (e *testEnv) addTask(t *testing.T, owner *models.User, projectID primitive.ObjectID, title string) *models.Task {
	t.Helper()
	task, err := e.tasks.CreateTask(context.Background(), owner, TaskCreateInput{Title: title, ProjectID: projectID})
	if err != nil {
		t.Fatalf("create task %s: %v", title, err)
	}
	return task
}
