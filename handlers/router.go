package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskforge/backend/middleware"
)

// NewRouter wires every route. Authenticated routes sit on a subrouter behind
// the JWT middleware.
func NewRouter(
	auth *AuthHandler,
	projects *ProjectHandler,
	tasks *TaskHandler,
	comments *CommentHandler,
	labels *LabelHandler,
	authMW *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "TaskForge API"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMW.RequireAuth)

	api.HandleFunc("/auth/me", auth.Me).Methods(http.MethodGet)

	api.HandleFunc("/projects", projects.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", projects.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectId}", projects.GetProject).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}", projects.UpdateProject).Methods(http.MethodPut)
	api.HandleFunc("/projects/{projectId}", projects.DeleteProject).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{projectId}/labels", projects.ListLabels).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/labels", projects.CreateLabel).Methods(http.MethodPost)

	api.HandleFunc("/tasks", tasks.ListTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", tasks.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId}", tasks.GetTask).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}", tasks.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{taskId}", tasks.DeleteTask).Methods(http.MethodDelete)
	api.HandleFunc("/tasks/{taskId}/comments", comments.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}/comments", comments.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId}/labels", labels.ListTaskLabels).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}/labels/{labelId}", labels.AssignLabel).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{taskId}/labels/{labelId}", labels.UnassignLabel).Methods(http.MethodDelete)

	return r
}
