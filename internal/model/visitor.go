package model

import "time"

// Visitor is one recorded page view. Rows are append-only and only ever
// read back for aggregate analytics or the admin listing.
type Visitor struct {
	ID          int       `json:"id"`
	IPAddress   *string   `json:"ip_address"`
	UserAgent   *string   `json:"user_agent"`
	PageVisited *string   `json:"page_visited"`
	VisitTime   time.Time `json:"visit_time"`
}

// PageCount is one entry of the "most visited pages" ranking.
type PageCount struct {
	PageVisited string `json:"page_visited"`
	Visits      int    `json:"visits"`
}

// DailyCount is one day of the 7-day visit histogram.
type DailyCount struct {
	Date     string `json:"date"` // "YYYY-MM-DD"
	Visitors int    `json:"visitors"`
}

// VisitorStats は GET /api/analytics/stats のレスポンス
type VisitorStats struct {
	TotalVisitors int          `json:"totalVisitors"`
	TodayVisitors int          `json:"todayVisitors"`
	TopPages      []PageCount  `json:"topPages"`
	DailyVisitors []DailyCount `json:"dailyVisitors"`
}
