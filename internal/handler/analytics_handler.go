package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// AnalyticsHandler handles visitor tracking and statistics.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// trackRequest is the JSON body for POST /api/analytics/track.
// Every field is optional.
type trackRequest struct {
	IPAddress   *string `json:"ip_address"`
	UserAgent   *string `json:"user_agent"`
	PageVisited *string `json:"page_visited"`
}

// Track handles POST /api/analytics/track. An empty body records an
// anonymous visit; a malformed ip_address is rejected by the store.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	visitor := &model.Visitor{
		IPAddress:   req.IPAddress,
		UserAgent:   req.UserAgent,
		PageVisited: req.PageVisited,
	}

	if err := h.analyticsService.Track(r.Context(), visitor); err != nil {
		slog.Error("visitor track failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to track visitor")
		return
	}
	writeJSON(w, http.StatusCreated, visitor)
}

// Stats handles GET /api/analytics/stats.
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsService.Stats(r.Context())
	if err != nil {
		slog.Error("analytics stats failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Visitors handles GET /api/analytics/visitors (admin-style listing,
// newest first, capped at 100).
func (h *AnalyticsHandler) Visitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.analyticsService.ListVisitors(r.Context())
	if err != nil {
		slog.Error("visitor list failed", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch visitors")
		return
	}
	if visitors == nil {
		visitors = []*model.Visitor{}
	}
	writeJSON(w, http.StatusOK, visitors)
}
