package handlers

import (
	"encoding/json"
	"net/http"

	"taskforge/backend/middleware"
	"taskforge/backend/services"
)

type CommentHandler struct {
	Service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{Service: service}
}

type commentCreateRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	comments, err := h.Service.ListComments(r.Context(), caller, taskID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	taskID, ok := pathID(r, "taskId")
	if !ok {
		http.Error(w, "Invalid task ID format", http.StatusBadRequest)
		return
	}

	var req commentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	comment, err := h.Service.CreateComment(r.Context(), caller, taskID, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
