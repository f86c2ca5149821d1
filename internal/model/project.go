package model

import "time"

// Project はポートフォリオに掲載するプロジェクト
type Project struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Technologies []string  `json:"technologies"` // 表示順を保持する
	LiveURL      *string   `json:"live_url"`
	GithubURL    *string   `json:"github_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
