package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements が起動のたびに実行される。CREATE TABLE IF NOT EXISTS
// なので既存テーブルには何もしない。
var schemaStatements = []struct {
	table string
	ddl   string
}{
	{"messages", `
		CREATE TABLE IF NOT EXISTS messages (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			subject VARCHAR(255),
			message TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'unread',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"projects", `
		CREATE TABLE IF NOT EXISTS projects (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			technologies TEXT[],
			live_url VARCHAR(500),
			github_url VARCHAR(500),
			featured BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"skills", `
		CREATE TABLE IF NOT EXISTS skills (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(50) NOT NULL,
			proficiency INTEGER CHECK (proficiency >= 1 AND proficiency <= 5),
			icon VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
	{"visitors", `
		CREATE TABLE IF NOT EXISTS visitors (
			id SERIAL PRIMARY KEY,
			ip_address INET,
			user_agent TEXT,
			page_visited VARCHAR(255),
			visit_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`},
}

// InitSchema ensures the four tables exist. Safe to call on every process
// start; it stops at the first failing statement and returns the error so
// the caller can decide how loudly to complain.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range schemaStatements {
		if _, err := pool.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", s.table, err)
		}
	}
	return nil
}
