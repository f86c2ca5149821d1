package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// VisitorRepository defines the persistence interface for visitor tracking.
// Visitor rows are append-only; aggregates are computed at query time, no
// materialized counters are maintained.
type VisitorRepository interface {
	Track(ctx context.Context, v *model.Visitor) error
	List(ctx context.Context) ([]*model.Visitor, error)
	Stats(ctx context.Context) (*model.VisitorStats, error)
}

// PgVisitorRepository is the PostgreSQL implementation of VisitorRepository.
type PgVisitorRepository struct {
	pool *pgxpool.Pool
}

// NewPgVisitorRepository creates a PgVisitorRepository backed by the given pool.
func NewPgVisitorRepository(pool *pgxpool.Pool) *PgVisitorRepository {
	return &PgVisitorRepository{pool: pool}
}

var _ VisitorRepository = (*PgVisitorRepository)(nil)

// Track inserts one visitors row and populates v.ID, the normalized
// ip_address and visit_time from the RETURNING clause. The ip_address
// parameter travels as text and is cast to inet by the database; a
// malformed address therefore surfaces as a store error, matching the
// "no validation beyond what the store enforces" contract.
func (r *PgVisitorRepository) Track(ctx context.Context, v *model.Visitor) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO visitors (ip_address, user_agent, page_visited)
		 VALUES (NULLIF($1, '')::inet, $2, $3)
		 RETURNING id, ip_address::text, visit_time`,
		v.IPAddress, v.UserAgent, v.PageVisited,
	).Scan(&v.ID, &v.IPAddress, &v.VisitTime)
}

// List returns the most recent visitors, newest first, capped at 100.
func (r *PgVisitorRepository) List(ctx context.Context) ([]*model.Visitor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, ip_address::text, user_agent, page_visited, visit_time
		 FROM visitors ORDER BY visit_time DESC LIMIT 100`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visitors []*model.Visitor
	for rows.Next() {
		var v model.Visitor
		if err := rows.Scan(&v.ID, &v.IPAddress, &v.UserAgent, &v.PageVisited, &v.VisitTime); err != nil {
			return nil, err
		}
		visitors = append(visitors, &v)
	}
	return visitors, rows.Err()
}

// Stats computes the four visitor aggregates at call time.
// Top pages with equal visit counts are ordered by page_visited ascending
// so the ranking is deterministic across calls.
func (r *PgVisitorRepository) Stats(ctx context.Context) (*model.VisitorStats, error) {
	stats := &model.VisitorStats{
		TopPages:      []model.PageCount{},
		DailyVisitors: []model.DailyCount{},
	}

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visitors`,
	).Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}

	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM visitors WHERE visit_time::date = CURRENT_DATE`,
	).Scan(&stats.TodayVisitors); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT page_visited, COUNT(*) AS visits
		 FROM visitors
		 WHERE page_visited IS NOT NULL
		 GROUP BY page_visited
		 ORDER BY visits DESC, page_visited ASC
		 LIMIT 10`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var pc model.PageCount
		if err := rows.Scan(&pc.PageVisited, &pc.Visits); err != nil {
			return nil, err
		}
		stats.TopPages = append(stats.TopPages, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	daily, err := r.pool.Query(ctx,
		`SELECT visit_time::date AS date, COUNT(*) AS visitors
		 FROM visitors
		 WHERE visit_time >= CURRENT_DATE - INTERVAL '7 days'
		 GROUP BY visit_time::date
		 ORDER BY date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer daily.Close()
	for daily.Next() {
		var day time.Time
		var dc model.DailyCount
		if err := daily.Scan(&day, &dc.Visitors); err != nil {
			return nil, err
		}
		dc.Date = day.Format("2006-01-02")
		stats.DailyVisitors = append(stats.DailyVisitors, dc)
	}
	return stats, daily.Err()
}
