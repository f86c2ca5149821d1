package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// AnalyticsService exposes visitor tracking and aggregate statistics.
type AnalyticsService interface {
	Track(ctx context.Context, v *model.Visitor) error
	Stats(ctx context.Context) (*model.VisitorStats, error)
	ListVisitors(ctx context.Context) ([]*model.Visitor, error)
}

type analyticsServiceImpl struct {
	repo repository.VisitorRepository
}

// NewAnalyticsService creates an AnalyticsService backed by the given repository.
func NewAnalyticsService(repo repository.VisitorRepository) AnalyticsService {
	return &analyticsServiceImpl{repo: repo}
}

// Track records one page view. All fields are optional; nothing is
// validated here beyond what the store enforces.
func (s *analyticsServiceImpl) Track(ctx context.Context, v *model.Visitor) error {
	return s.repo.Track(ctx, v)
}

// Stats computes the visitor aggregates from the store at call time.
func (s *analyticsServiceImpl) Stats(ctx context.Context) (*model.VisitorStats, error) {
	return s.repo.Stats(ctx)
}

// ListVisitors returns the 100 most recent visits, newest first.
func (s *analyticsServiceImpl) ListVisitors(ctx context.Context) ([]*model.Visitor, error) {
	return s.repo.List(ctx)
}
