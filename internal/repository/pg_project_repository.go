package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ProjectRepository はプロジェクトの永続化インターフェース
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	ListFeatured(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id int) error
}

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, COALESCE(technologies, '{}'), live_url, github_url, featured, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies, &p.LiveURL, &p.GithubURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List はプロジェクト一覧を取得する。featured を先頭に、各グループ内は新しい順。
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY featured DESC, created_at DESC`)
}

// ListFeatured は featured なプロジェクトを新しい順に最大 3 件取得する
func (r *PgProjectRepository) ListFeatured(ctx context.Context) ([]*model.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE featured = true ORDER BY created_at DESC LIMIT 3`)
}

func (r *PgProjectRepository) queryProjects(ctx context.Context, query string) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID は ID でプロジェクトを取得する。存在しなければ ErrNotFound。
func (r *PgProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create はプロジェクトを作成し、ID とタイムスタンプを書き戻す
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, technologies, live_url, github_url, featured)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		project.Title, project.Description, project.Technologies, project.LiveURL, project.GithubURL, project.Featured,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

// Update はプロジェクトの全フィールドを更新し、updated_at を進める。
// 対象が存在しない場合は ErrNotFound を返す。
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, technologies = $3, live_url = $4, github_url = $5, featured = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		project.Title, project.Description, project.Technologies, project.LiveURL, project.GithubURL, project.Featured, project.ID,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はプロジェクトを物理削除する。対象が存在しない場合は ErrNotFound。
func (r *PgProjectRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
