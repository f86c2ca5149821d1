package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// projectServiceImpl は ProjectService の本番実装
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService は ProjectService を生成する
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return s.repo.ListFeatured(ctx)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id int) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	return s.repo.Create(ctx, project)
}

func (s *projectServiceImpl) Update(ctx context.Context, project *model.Project) error {
	return s.repo.Update(ctx, project)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
