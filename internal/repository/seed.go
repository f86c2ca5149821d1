package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedSkill / seedProject は初回起動時に投入するサンプルデータ
type seedSkill struct {
	name        string
	category    string
	proficiency int
	icon        string
}

type seedProject struct {
	title        string
	description  string
	technologies []string
	liveURL      *string
	githubURL    *string
	featured     bool
}

var sampleSkills = []seedSkill{
	{"HTML5", "Frontend", 5, "bi-filetype-html"},
	{"CSS3", "Frontend", 5, "bi-filetype-css"},
	{"JavaScript", "Frontend", 4, "bi-filetype-js"},
	{"React.js", "Frontend", 3, "bi-layers"},
	{"Bootstrap", "Frontend", 4, "bi-bootstrap"},
	{"Node.js", "Backend", 4, "bi-node-plus"},
	{"Express.js", "Backend", 4, "bi-gear"},
	{"Python", "Backend", 3, "bi-filetype-py"},
	{"PHP", "Backend", 3, "bi-filetype-php"},
	{"C#", "Backend", 3, "bi-filetype-cs"},
	{"PostgreSQL", "Database", 4, "bi-database-check"},
	{"MySQL", "Database", 3, "bi-database-fill-gear"},
	{"SQL", "Database", 4, "bi-diagram-3"},
	{"Git", "Tools", 4, "bi-git"},
	{"Linux", "Tools", 3, "bi-ubuntu"},
}

var sampleProjects = []seedProject{
	{
		title:        "TechCon Event Schedule",
		description:  "A comprehensive event scheduling website for technology conferences with real-time updates and interactive features.",
		technologies: []string{"HTML", "CSS", "JavaScript", "Responsive Design"},
		liveURL:      strPtr("https://ahamed-assal.github.io/TechCon-Event-Schedule/"),
		githubURL:    strPtr("https://github.com/ahamed-assal/TechCon-Event-Schedule"),
		featured:     true,
	},
	{
		title:        "Personal Portfolio Website",
		description:  "A responsive full-stack portfolio website built with HTML, CSS, Bootstrap, Node.js, Express.js, and PostgreSQL.",
		technologies: []string{"HTML", "CSS", "Bootstrap", "Node.js", "PostgreSQL"},
		githubURL:    strPtr("https://github.com/ahamed-assal/Portfolio"),
		featured:     true,
	},
	{
		title:        "E-Commerce Platform",
		description:  "A full-stack e-commerce application with user authentication, product management, and shopping cart functionality.",
		technologies: []string{"JavaScript", "Node.js", "PostgreSQL"},
	},
	{
		title:        "Ticketing System",
		description:  "A comprehensive ticketing system built with C# and .NET, featuring user management, ticket creation, assignment, and tracking capabilities.",
		technologies: []string{"C#", ".NET", "SQL Server", "Entity Framework"},
	},
	{
		title:        "Mobile Shop Website",
		description:  "A modern e-commerce website for mobile devices with product catalog, shopping cart, user authentication, and payment integration.",
		technologies: []string{"HTML5", "CSS3", "JavaScript", "React", "Node.js"},
	},
}

func strPtr(s string) *string { return &s }

// SeedSampleData はスキル・プロジェクトのテーブルが空の場合のみ
// サンプルデータを投入する。テーブルごとに独立して判定するので、
// 片方の失敗がもう片方の投入を妨げることはない。
//
// COUNT してから INSERT する間にロックは取らない。単一プロセス起動
// 前提であり、同時に複数のシーダーが走ることは想定しない。
func SeedSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	var errs []error
	if err := seedSkills(ctx, pool); err != nil {
		errs = append(errs, fmt.Errorf("seed skills: %w", err))
	}
	if err := seedProjects(ctx, pool); err != nil {
		errs = append(errs, fmt.Errorf("seed projects: %w", err))
	}
	return errors.Join(errs...)
}

func seedSkills(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range sampleSkills {
		if _, err := pool.Exec(ctx,
			`INSERT INTO skills (name, category, proficiency, icon) VALUES ($1, $2, $3, $4)`,
			s.name, s.category, s.proficiency, s.icon,
		); err != nil {
			return err
		}
	}
	slog.Info("sample skills inserted", "count", len(sampleSkills))
	return nil
}

func seedProjects(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range sampleProjects {
		if _, err := pool.Exec(ctx,
			`INSERT INTO projects (title, description, technologies, live_url, github_url, featured)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.title, p.description, p.technologies, p.liveURL, p.githubURL, p.featured,
		); err != nil {
			return err
		}
	}
	slog.Info("sample projects inserted", "count", len(sampleProjects))
	return nil
}
