package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// SkillService はスキルに関するビジネスロジックのインターフェース
type SkillService interface {
	List(ctx context.Context) ([]*model.Skill, error)
	ListByCategory(ctx context.Context, category string) ([]*model.Skill, error)
	GetByID(ctx context.Context, id int) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id int) error
}

type skillServiceImpl struct {
	repo repository.SkillRepository
}

// NewSkillService は SkillService を生成する
func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillServiceImpl{repo: repo}
}

func (s *skillServiceImpl) List(ctx context.Context) ([]*model.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillServiceImpl) ListByCategory(ctx context.Context, category string) ([]*model.Skill, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *skillServiceImpl) GetByID(ctx context.Context, id int) (*model.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillServiceImpl) Create(ctx context.Context, skill *model.Skill) error {
	return s.repo.Create(ctx, skill)
}

func (s *skillServiceImpl) Update(ctx context.Context, skill *model.Skill) error {
	return s.repo.Update(ctx, skill)
}

func (s *skillServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
