package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"taskforge/backend/middleware"
	"taskforge/backend/services"
	"taskforge/backend/store/storetest"
)

func newTestAPI() *mux.Router {
	stores := storetest.New()
	jwtService := services.NewJWTService("test-secret", time.Hour)
	authService := services.NewAuthService(stores.Users)
	projectService := services.NewProjectService(stores.Projects, stores.Tasks, stores.Comments, stores.Labels, stores.TaskLabels)
	taskService := services.NewTaskService(stores.Tasks, stores.Projects, stores.Comments, stores.TaskLabels)
	commentService := services.NewCommentService(stores.Comments, taskService)
	labelService := services.NewLabelService(stores.Labels, stores.TaskLabels, projectService, taskService)

	return NewRouter(
		NewAuthHandler(authService, jwtService),
		NewProjectHandler(projectService, labelService),
		NewTaskHandler(taskService),
		NewCommentHandler(commentService),
		NewLabelHandler(labelService),
		middleware.NewAuthMiddleware(jwtService, authService),
	)
}

// do sends a JSON request and decodes the JSON response into out (if non-nil).
func do(t *testing.T, router *mux.Router, method, path, token string, body, out interface{}) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode response %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec.Code
}

// register + login, returning the bearer token.
func loginAs(t *testing.T, router *mux.Router, email, password string) string {
	t.Helper()

	status := do(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "name": email, "password": password,
	}, nil)
	if status != http.StatusOK {
		t.Fatalf("register %s: status %d", email, status)
	}

	var resp map[string]interface{}
	status = do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d", email, status)
	}
	token, _ := resp["access_token"].(string)
	if token == "" {
		t.Fatalf("login %s: no access_token in %v", email, resp)
	}
	return token
}

func TestAuthScenario(t *testing.T) {
	router := newTestAPI()

	var registered map[string]interface{}
	status := do(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "alice@example.com", "name": "Alice", "password": "pw1",
	}, &registered)
	if status != http.StatusOK {
		t.Fatalf("register: status %d", status)
	}
	for _, key := range []string{"password", "password_hash", "passwordHash"} {
		if _, present := registered[key]; present {
			t.Errorf("register response leaks %q", key)
		}
	}
	if registered["role"] != "MEMBER" {
		t.Errorf("role %v, want default MEMBER", registered["role"])
	}

	if status := do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	}, nil); status != http.StatusUnauthorized {
		t.Errorf("wrong password login: status %d, want 401", status)
	}

	var login map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "alice@example.com", "password": "pw1",
	}, &login); status != http.StatusOK {
		t.Fatalf("login: status %d", status)
	}
	if login["token_type"] != "bearer" {
		t.Errorf("token_type %v, want bearer", login["token_type"])
	}
	token, _ := login["access_token"].(string)

	var me map[string]interface{}
	if status := do(t, router, http.MethodGet, "/api/auth/me", token, nil, &me); status != http.StatusOK {
		t.Fatalf("me: status %d", status)
	}
	if me["email"] != "alice@example.com" {
		t.Errorf("me email %v", me["email"])
	}
	for _, key := range []string{"password", "password_hash", "passwordHash"} {
		if _, present := me[key]; present {
			t.Errorf("me response leaks %q", key)
		}
	}
}

func TestDuplicateRegistration(t *testing.T) {
	router := newTestAPI()

	body := map[string]string{"email": "alice@example.com", "name": "Alice", "password": "pw1"}
	if status := do(t, router, http.MethodPost, "/api/auth/register", "", body, nil); status != http.StatusOK {
		t.Fatalf("first register: status %d", status)
	}
	if status := do(t, router, http.MethodPost, "/api/auth/register", "", body, nil); status != http.StatusConflict {
		t.Errorf("second register: status %d, want 409", status)
	}
}

func TestRequiresAuth(t *testing.T) {
	router := newTestAPI()

	if status := do(t, router, http.MethodGet, "/api/projects", "", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", status)
	}
	if status := do(t, router, http.MethodGet, "/api/projects", "not-a-token", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", status)
	}
}

func TestCrossUserProjectIsolation(t *testing.T) {
	router := newTestAPI()
	tokenA := loginAs(t, router, "a@example.com", "pw-a")
	tokenB := loginAs(t, router, "b@example.com", "pw-b")

	var project map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/projects", tokenA, map[string]string{"name": "P1"}, &project); status != http.StatusCreated {
		t.Fatalf("create project: status %d", status)
	}
	projectID, _ := project["id"].(string)

	if status := do(t, router, http.MethodDelete, "/api/projects/"+projectID, tokenB, nil, nil); status != http.StatusForbidden {
		t.Errorf("foreign delete: status %d, want 403", status)
	}
	if status := do(t, router, http.MethodGet, "/api/projects/"+projectID, tokenA, nil, nil); status != http.StatusOK {
		t.Errorf("project gone after refused delete: status %d", status)
	}
	if status := do(t, router, http.MethodGet, "/api/projects/"+projectID, tokenB, nil, nil); status != http.StatusForbidden {
		t.Errorf("foreign get: status %d, want 403", status)
	}

	// B's own listing stays empty.
	var list []interface{}
	if status := do(t, router, http.MethodGet, "/api/projects", tokenB, nil, &list); status != http.StatusOK {
		t.Fatalf("list projects: status %d", status)
	}
	if len(list) != 0 {
		t.Errorf("B sees %d foreign projects", len(list))
	}
}

func TestProjectTaskCommentRoundTrip(t *testing.T) {
	router := newTestAPI()
	token := loginAs(t, router, "a@example.com", "pw-a")

	var project map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/projects", token, map[string]string{"name": "P1"}, &project); status != http.StatusCreated {
		t.Fatalf("create project: status %d", status)
	}

	var task map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title":      "T1",
		"project_id": project["id"],
	}, &task); status != http.StatusCreated {
		t.Fatalf("create task: status %d", status)
	}
	if task["status"] != "TODO" || task["priority"] != "MEDIUM" {
		t.Errorf("task defaults: status=%v priority=%v", task["status"], task["priority"])
	}

	taskPath := fmt.Sprintf("/api/tasks/%v/comments", task["id"])
	if status := do(t, router, http.MethodPost, taskPath, token, map[string]string{"content": "first!"}, nil); status != http.StatusCreated {
		t.Fatalf("create comment: status %d", status)
	}

	var comments []map[string]interface{}
	if status := do(t, router, http.MethodGet, taskPath, token, nil, &comments); status != http.StatusOK {
		t.Fatalf("list comments: status %d", status)
	}
	if len(comments) != 1 || comments[0]["content"] != "first!" {
		t.Errorf("comments %v, want exactly the created one", comments)
	}
}

func TestPartialUpdateOverHTTP(t *testing.T) {
	router := newTestAPI()
	token := loginAs(t, router, "a@example.com", "pw-a")

	var project map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/projects", token, map[string]string{
		"name": "Old", "description": "keep",
	}, &project); status != http.StatusCreated {
		t.Fatalf("create project: status %d", status)
	}

	var updated map[string]interface{}
	path := fmt.Sprintf("/api/projects/%v", project["id"])
	if status := do(t, router, http.MethodPut, path, token, map[string]string{"name": "New"}, &updated); status != http.StatusOK {
		t.Fatalf("update project: status %d", status)
	}
	if updated["name"] != "New" || updated["description"] != "keep" {
		t.Errorf("partial update: name=%v description=%v", updated["name"], updated["description"])
	}
}

func TestLabelEndpoints(t *testing.T) {
	router := newTestAPI()
	token := loginAs(t, router, "a@example.com", "pw-a")

	var project map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/projects", token, map[string]string{"name": "P1"}, &project); status != http.StatusCreated {
		t.Fatalf("create project: status %d", status)
	}
	var task map[string]interface{}
	if status := do(t, router, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"title": "T1", "project_id": project["id"],
	}, &task); status != http.StatusCreated {
		t.Fatalf("create task: status %d", status)
	}

	var label map[string]interface{}
	labelsPath := fmt.Sprintf("/api/projects/%v/labels", project["id"])
	if status := do(t, router, http.MethodPost, labelsPath, token, map[string]string{
		"name": "Bug", "color": "#FF0000",
	}, &label); status != http.StatusCreated {
		t.Fatalf("create label: status %d", status)
	}

	assignPath := fmt.Sprintf("/api/tasks/%v/labels/%v", task["id"], label["id"])
	if status := do(t, router, http.MethodPost, assignPath, token, nil, nil); status != http.StatusNoContent {
		t.Fatalf("assign label: status %d", status)
	}
	if status := do(t, router, http.MethodPost, assignPath, token, nil, nil); status != http.StatusConflict {
		t.Errorf("duplicate assign: status %d, want 409", status)
	}

	var taskLabels []map[string]interface{}
	listPath := fmt.Sprintf("/api/tasks/%v/labels", task["id"])
	if status := do(t, router, http.MethodGet, listPath, token, nil, &taskLabels); status != http.StatusOK {
		t.Fatalf("list task labels: status %d", status)
	}
	if len(taskLabels) != 1 || taskLabels[0]["name"] != "Bug" {
		t.Errorf("task labels %v", taskLabels)
	}

	if status := do(t, router, http.MethodDelete, assignPath, token, nil, nil); status != http.StatusNoContent {
		t.Errorf("unassign label: status %d", status)
	}
	if status := do(t, router, http.MethodDelete, assignPath, token, nil, nil); status != http.StatusNotFound {
		t.Errorf("unassign absent pair: status %d, want 404", status)
	}
}
