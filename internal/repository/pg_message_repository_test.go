package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
)

func TestPgMessageRepository_SaveAndList(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewPgMessageRepository(pool)

	unique := fmt.Sprintf("%d", time.Now().UnixNano())
	msg := &model.Message{
		Name:    "Test Sender",
		Email:   fmt.Sprintf("test-%s@example.com", unique),
		Message: "integration test message",
		Status:  "unread",
	}

	if err := repo.Save(ctx, msg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if msg.ID == 0 {
		t.Error("expected ID to be set after Save")
	}
	if msg.Status != "unread" {
		t.Errorf("expected default status unread, got %q", msg.Status)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected created_at to be set after Save")
	}

	messages, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(messages) == 0 {
		t.Fatal("expected at least one message")
	}
	// Newest first: the row just inserted leads the list.
	if messages[0].Email != msg.Email {
		t.Errorf("expected newest message first, got %q", messages[0].Email)
	}
	if messages[0].Subject != nil {
		t.Errorf("expected nil subject, got %q", *messages[0].Subject)
	}
}
