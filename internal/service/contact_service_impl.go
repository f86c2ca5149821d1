package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.MessageRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.MessageRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact message. The status starts as "unread";
// id and timestamps are assigned by the database on insert.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	msg.Status = "unread"
	return s.repo.Save(ctx, msg)
}

// List returns all stored messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Message, error) {
	return s.repo.List(ctx)
}
