package service

import (
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock MessageRepository
// ---------------------------------------------------------------------------

type mockMessageRepo struct {
	saveFunc func(ctx context.Context, msg *model.Message) error
	listFunc func(ctx context.Context) ([]*model.Message, error)
}

func (m *mockMessageRepo) Save(ctx context.Context, msg *model.Message) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) List(ctx context.Context) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

// TestContactService_Submit_SetsUnreadStatus verifies that every new message
// starts out unread regardless of what the caller set.
func TestContactService_Submit_SetsUnreadStatus(t *testing.T) {
	var saved *model.Message
	repo := &mockMessageRepo{
		saveFunc: func(ctx context.Context, msg *model.Message) error {
			saved = msg
			return nil
		},
	}
	svc := NewContactService(repo)

	msg := &model.Message{Name: "Alice", Email: "a@example.com", Message: "Hi", Status: "read"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.Status != "unread" {
		t.Errorf("expected status=unread, got %q", saved.Status)
	}
}

// TestContactService_Submit_PropagatesError verifies that repository errors
// are returned unchanged.
func TestContactService_Submit_PropagatesError(t *testing.T) {
	want := errors.New("insert failed")
	repo := &mockMessageRepo{
		saveFunc: func(ctx context.Context, msg *model.Message) error {
			return want
		},
	}
	svc := NewContactService(repo)

	err := svc.Submit(context.Background(), &model.Message{})
	if !errors.Is(err, want) {
		t.Errorf("expected repository error propagated, got %v", err)
	}
}

func TestContactService_List_PassesThrough(t *testing.T) {
	messages := []*model.Message{{ID: 1}, {ID: 2}}
	repo := &mockMessageRepo{
		listFunc: func(ctx context.Context) ([]*model.Message, error) {
			return messages, nil
		},
	}
	svc := NewContactService(repo)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 messages, got %d", len(got))
	}
}
