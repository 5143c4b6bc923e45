package dashboard

import "time"

// StatsResponse aggregates the counters shown on the dashboard overview
type StatsResponse struct {
	TotalQuotes      int64 `json:"totalQuotes"`
	NewQuotes        int64 `json:"newQuotes"`
	TotalFreelancers int64 `json:"totalFreelancers"`
}

// ActivityResponse represents one entry in the recent activity feed
type ActivityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	RelatedID   string    `json:"relatedId,omitempty"`
	RelatedType string    `json:"relatedType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
