package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskforge/backend/middleware"
	"taskforge/backend/models"
	"taskforge/backend/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
	Labels  *services.LabelService
}

func NewProjectHandler(service *services.ProjectService, labels *services.LabelService) *ProjectHandler {
	return &ProjectHandler{Service: service, Labels: labels}
}

func pathID(r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)[name])
	return id, err == nil
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	projects, err := h.Service.ListProjects(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())

	var input services.ProjectCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	project, err := h.Service.CreateProject(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	projectID, ok := pathID(r, "projectId")
	if !ok {
		http.Error(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	project, err := h.Service.GetProject(r.Context(), caller, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	projectID, ok := pathID(r, "projectId")
	if !ok {
		http.Error(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	project, err := h.Service.UpdateProject(r.Context(), caller, projectID, update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	projectID, ok := pathID(r, "projectId")
	if !ok {
		http.Error(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	if err := h.Service.DeleteProject(r.Context(), caller, projectID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectHandler) ListLabels(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	projectID, ok := pathID(r, "projectId")
	if !ok {
		http.Error(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	labels, err := h.Labels.ListLabels(r.Context(), caller, projectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, labels)
}

func (h *ProjectHandler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	caller := middleware.UserFromContext(r.Context())
	projectID, ok := pathID(r, "projectId")
	if !ok {
		http.Error(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var input services.LabelCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	label, err := h.Labels.CreateLabel(r.Context(), caller, projectID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, label)
}
