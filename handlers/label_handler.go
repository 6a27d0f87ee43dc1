package handlers

import (
	"net/http"

	"taskforge/backend/middleware"
	"taskforge/backend/services"
)

// LabelHandler covers the task side of labels; project-scoped label routes
// live on ProjectHandler.
type LabelHandler struct {
	Service *services.LabelService
}

func NewLabelHandler(service *services.LabelService) *LabelHandler {
	return &LabelHandler{Service: service}
}

func (h *LabelHandler) ListTaskLabels(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	labels, err := h.Service.ListTaskLabels(r.Context(), caller, taskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, labels)
}

func (h *LabelHandler) AssignLabel(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}
	labelID, ok := pathID(r, "labelId")
	if !ok {
		http.Error(w, "Invalid label ID format", http.StatusBadRequest)
		return
	}

	if err := h.Service.AssignLabel(r.Context(), caller, taskID, labelID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LabelHandler) UnassignLabel(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}
	labelID, ok := pathID(r, "labelId")
	if !ok {
		http.Error(w, "Invalid label ID format", http.StatusBadRequest)
		return
	}

	if err := h.Service.UnassignLabel(r.Context(), caller, taskID, labelID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
