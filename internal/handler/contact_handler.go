package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

// emailRegex は local@domain.tld の体裁だけを確認する簡易パターン
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactHandler handles contact form submission and message listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// contactError は contact エンドポイント共通のエラーレスポンス
type contactError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Submit handles POST /api/contact.
// name, email and message are required; subject is optional. Validation
// happens entirely here — an invalid submission never reaches the store.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, contactError{
			Error: "Name, email, and message are required fields",
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		writeJSON(w, http.StatusBadRequest, contactError{
			Error: "Name, email, and message are required fields",
		})
		return
	}

	if !emailRegex.MatchString(email) {
		writeJSON(w, http.StatusBadRequest, contactError{
			Error: "Please provide a valid email address",
		})
		return
	}

	msg := &model.Message{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if subject != "" {
		msg.Subject = &subject
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.Error("contact submit failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactError{
			Error: "Failed to send message. Please try again later.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Your message has been sent successfully!",
		"data": map[string]any{
			"id":    msg.ID,
			"name":  msg.Name,
			"email": msg.Email,
		},
	})
}

// List handles GET /api/contact. Admin-style: returns every stored message,
// newest first. No authentication in front of it.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactError{
			Error: "Failed to fetch messages",
		})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.Message{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(messages),
		"data":    messages,
	})
}
