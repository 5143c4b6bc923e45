package models

import (
	"database/sql"
	"time"
)

type Activity struct {
	ID          string         `db:"id"`
	Description string         `db:"description"`
	Type        ActivityType   `db:"type"`
	RelatedID   sql.NullString `db:"related_id"`
	RelatedType sql.NullString `db:"related_type"`
	CreatedAt   time.Time      `db:"created_at"`
}

type ActivityType string

const (
	ActivityTypeQuote      ActivityType = "quote"
	ActivityTypeFreelancer ActivityType = "freelancer"
	ActivityTypeAuth       ActivityType = "auth"
)
