package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// parseID は {id} パス値を数値 ID にパースする
func parseID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// ProjectHandler はプロジェクト CRUD の HTTP ハンドラ
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// projectRequest is the JSON body for POST and PUT.
type projectRequest struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	LiveURL      *string  `json:"live_url"`
	GithubURL    *string  `json:"github_url"`
	Featured     bool     `json:"featured"`
}

// List は GET /api/projects を処理する。featured 優先、新しい順。
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("project list failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Featured は GET /api/projects/featured を処理する（最大 3 件）
func (h *ProjectHandler) Featured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListFeatured(r.Context())
	if err != nil {
		slog.Error("featured project list failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch featured projects")
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get は GET /api/projects/{id} を処理する
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("project get failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create は POST /api/projects を処理する（管理用・認証なし）
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project := &model.Project{
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Featured:     req.Featured,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		slog.Error("project create failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update は PUT /api/projects/{id} を処理する。全フィールドを置き換え、
// updated_at はストア側で更新される。
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project := &model.Project{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Featured:     req.Featured,
	}

	if err := h.projectService.Update(r.Context(), project); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("project update failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete は DELETE /api/projects/{id} を処理する（物理削除）
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Project not found")
			return
		}
		slog.Error("project delete failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
