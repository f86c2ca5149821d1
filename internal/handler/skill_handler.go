package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// SkillHandler はスキル CRUD の HTTP ハンドラ
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler は SkillHandler を生成する
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// skillRequest is the JSON body for POST and PUT.
type skillRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon"`
}

// List は GET /api/skills を処理する。カテゴリ昇順、カテゴリ内は習熟度降順。
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.List(r.Context())
	if err != nil {
		slog.Error("skill list failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	if skills == nil {
		skills = []*model.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

// ByCategory は GET /api/skills/category/{category} を処理する
func (h *SkillHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	skills, err := h.skillService.ListByCategory(r.Context(), category)
	if err != nil {
		slog.Error("skill list by category failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch skills by category")
		return
	}
	if skills == nil {
		skills = []*model.Skill{}
	}
	writeJSON(w, http.StatusOK, skills)
}

// Get は GET /api/skills/{id} を処理する
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	skill, err := h.skillService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Skill not found")
			return
		}
		slog.Error("skill get failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch skill")
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

// Create は POST /api/skills を処理する（管理用・認証なし）。
// 習熟度が 1〜5 を外れる場合は CHECK 制約違反としてストアエラーになる。
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill := &model.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
	}

	if err := h.skillService.Create(r.Context(), skill); err != nil {
		slog.Error("skill create failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to create skill")
		return
	}
	writeJSON(w, http.StatusCreated, skill)
}

// Update は PUT /api/skills/{id} を処理する
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skill := &model.Skill{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Proficiency: req.Proficiency,
		Icon:        req.Icon,
	}

	if err := h.skillService.Update(r.Context(), skill); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Skill not found")
			return
		}
		slog.Error("skill update failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to update skill")
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

// Delete は DELETE /api/skills/{id} を処理する
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid skill ID")
		return
	}

	if err := h.skillService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Skill not found")
			return
		}
		slog.Error("skill delete failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to delete skill")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
