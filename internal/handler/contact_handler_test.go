package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.Message) error
	listFunc   func(ctx context.Context) ([]*model.Message, error)
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.Message) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	var captured *model.Message
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.Message) error {
			captured = msg
			msg.ID = 42
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","subject":"Hi","message":"Hello!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil {
		t.Fatal("expected Submit to be called with a Message, got nil")
	}
	if captured.Name != "Alice" {
		t.Errorf("expected name=Alice, got %q", captured.Name)
	}
	if captured.Email != "alice@example.com" {
		t.Errorf("expected email=alice@example.com, got %q", captured.Email)
	}
	if captured.Subject == nil || *captured.Subject != "Hi" {
		t.Errorf("expected subject=Hi, got %v", captured.Subject)
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Data.ID != 42 {
		t.Errorf("expected data.id=42, got %d", resp.Data.ID)
	}
	if resp.Data.Email != "alice@example.com" {
		t.Errorf("expected data.email echoed back, got %q", resp.Data.Email)
	}
}

// TestContactHandler_Submit_MissingFields verifies that omitting any required
// field returns 400 without touching the service.
func TestContactHandler_Submit_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"missing name":    `{"email":"a@b.com","message":"Hi"}`,
		"missing email":   `{"name":"Bob","message":"Hi"}`,
		"missing message": `{"name":"Bob","email":"a@b.com"}`,
		"all empty":       `{}`,
		"whitespace only": `{"name":"  ","email":"a@b.com","message":"Hi"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			called := false
			mock := &mockContactService{
				submitFunc: func(ctx context.Context, msg *model.Message) error {
					called = true
					return nil
				},
			}
			h := NewContactHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if called {
				t.Error("expected service not to be called on validation failure")
			}
		})
	}
}

// TestContactHandler_Submit_InvalidEmail verifies the email pattern check.
func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	emails := []string{
		"no-at-sign.com",
		"missing@domaindot",
		"spaces in@local.com ",
		"@nodomain.com",
		"trailing@dot.",
	}

	for _, email := range emails {
		t.Run(email, func(t *testing.T) {
			called := false
			mock := &mockContactService{
				submitFunc: func(ctx context.Context, msg *model.Message) error {
					called = true
					return nil
				},
			}
			h := NewContactHandler(mock)

			body, _ := json.Marshal(map[string]string{
				"name":    "Bob",
				"email":   email,
				"message": "Hi",
			})
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(string(body)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for email %q, got %d", email, rec.Code)
			}
			if called {
				t.Errorf("expected service not to be called for email %q", email)
			}

			var resp struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			_ = json.NewDecoder(rec.Body).Decode(&resp)
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Error == "" {
				t.Error("expected error field in response body")
			}
		})
	}
}

// TestContactHandler_Submit_TrimsWhitespace verifies that fields are trimmed
// before persisting.
func TestContactHandler_Submit_TrimsWhitespace(t *testing.T) {
	var captured *model.Message
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.Message) error {
			captured = msg
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"  Alice  ","email":"  alice@example.com ","message":" Hello "}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Name != "Alice" {
		t.Errorf("expected trimmed name, got %q", captured.Name)
	}
	if captured.Email != "alice@example.com" {
		t.Errorf("expected trimmed email, got %q", captured.Email)
	}
	if captured.Message != "Hello" {
		t.Errorf("expected trimmed message, got %q", captured.Message)
	}
}

// TestContactHandler_Submit_SubjectOptional verifies that an absent subject
// persists as nil, not empty string.
func TestContactHandler_Submit_SubjectOptional(t *testing.T) {
	var captured *model.Message
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.Message) error {
			captured = msg
			return nil
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if captured.Subject != nil {
		t.Errorf("expected nil subject, got %q", *captured.Subject)
	}
}

// TestContactHandler_Submit_InvalidJSON verifies that malformed JSON returns 400.
func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

// TestContactHandler_Submit_ServiceError verifies that a store failure
// returns 500 with a generic message.
func TestContactHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockContactService{
		submitFunc: func(ctx context.Context, msg *model.Message) error {
			return errors.New("db connection lost")
		},
	}
	h := NewContactHandler(mock)

	body := `{"name":"Alice","email":"alice@example.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on service error, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db connection lost") {
		t.Error("internal error detail leaked into response body")
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_Success(t *testing.T) {
	subject := "Hello"
	messages := []*model.Message{
		{ID: 2, Name: "Bob", Email: "b@example.com", Message: "Second", Status: "unread"},
		{ID: 1, Name: "Alice", Email: "a@example.com", Subject: &subject, Message: "First", Status: "read"},
	}
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.Message, error) {
			return messages, nil
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool             `json:"success"`
		Count   int              `json:"count"`
		Data    []*model.Message `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Count != 2 {
		t.Errorf("expected count=2, got %d", resp.Count)
	}
	if len(resp.Data) != 2 || resp.Data[0].ID != 2 {
		t.Errorf("expected newest-first data, got %+v", resp.Data)
	}
}

// TestContactHandler_List_Empty verifies data is [] not null.
func TestContactHandler_List_Empty(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("expected empty data array, got %s", rec.Body.String())
	}
}

// TestContactHandler_List_ServiceError verifies 500 on store failure.
func TestContactHandler_List_ServiceError(t *testing.T) {
	mock := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.Message, error) {
			return nil, errors.New("database error")
		},
	}
	h := NewContactHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}
