package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/middleware"
	"taskforge/backend/models"
	"taskforge/backend/services"
)

type TaskHandler struct {
	Service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{Service: service}
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	var projectID *primitive.ObjectID
	if raw := r.URL.Query().Get("project_id"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			http.Error(w, "Invalid project ID format", http.StatusBadRequest)
			return
		}
		projectID = &id
	}

	tasks, err := h.Service.ListTasks(r.Context(), caller, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	var input services.TaskCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	task, err := h.Service.CreateTask(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	task, err := h.Service.GetTask(r.Context(), caller, taskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	task, err := h.Service.UpdateTask(r.Context(), caller, taskID, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteTask(r.Context(), caller, taskID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
