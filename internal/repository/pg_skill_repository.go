package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// SkillRepository はスキルの永続化インターフェース
type SkillRepository interface {
	List(ctx context.Context) ([]*model.Skill, error)
	ListByCategory(ctx context.Context, category string) ([]*model.Skill, error)
	GetByID(ctx context.Context, id int) (*model.Skill, error)
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id int) error
}

// PgSkillRepository は SkillRepository の PostgreSQL 実装
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

// NewPgSkillRepository は PgSkillRepository を生成する
func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ SkillRepository = (*PgSkillRepository)(nil)

// List はスキル一覧をカテゴリ昇順、カテゴリ内は習熟度降順で取得する
func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	return r.querySkills(ctx,
		`SELECT id, name, category, proficiency, icon, created_at
		 FROM skills ORDER BY category, proficiency DESC`)
}

// ListByCategory は指定カテゴリのスキルを習熟度降順で取得する
func (r *PgSkillRepository) ListByCategory(ctx context.Context, category string) ([]*model.Skill, error) {
	return r.querySkills(ctx,
		`SELECT id, name, category, proficiency, icon, created_at
		 FROM skills WHERE category = $1 ORDER BY proficiency DESC`, category)
}

func (r *PgSkillRepository) querySkills(ctx context.Context, query string, args ...any) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*model.Skill
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

// GetByID は ID でスキルを取得する。存在しなければ ErrNotFound。
func (r *PgSkillRepository) GetByID(ctx context.Context, id int) (*model.Skill, error) {
	var s model.Skill
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, category, proficiency, icon, created_at
		 FROM skills WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create はスキルを作成し、ID と作成時刻を書き戻す。
// 習熟度の範囲チェック (1〜5) はテーブルの CHECK 制約に任せる。
func (r *PgSkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, category, proficiency, icon)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		skill.Name, skill.Category, skill.Proficiency, skill.Icon,
	).Scan(&skill.ID, &skill.CreatedAt)
}

// Update はスキルの全フィールドを更新する。対象が存在しない場合は ErrNotFound。
func (r *PgSkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE skills SET name = $1, category = $2, proficiency = $3, icon = $4
		 WHERE id = $5
		 RETURNING created_at`,
		skill.Name, skill.Category, skill.Proficiency, skill.Icon, skill.ID,
	).Scan(&skill.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はスキルを物理削除する。対象が存在しない場合は ErrNotFound。
func (r *PgSkillRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
