package model

import "time"

// Skill はスキル一覧の 1 エントリ。proficiency は 1〜5。
type Skill struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"` // "Frontend", "Backend", "Database", "Tools", ...
	Proficiency int       `json:"proficiency"`
	Icon        *string   `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}
