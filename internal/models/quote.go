package models

import (
	"time"

	"github.com/lib/pq"
)

type Quote struct {
	ID             string         `db:"id"`
	WebsiteType    string         `db:"website_type"`
	Features       pq.StringArray `db:"features"`
	Budget         string         `db:"budget"`
	Timeline       string         `db:"timeline"`
	CompanyName    string         `db:"company_name"`
	ContactPerson  string         `db:"contact_person"`
	Email          string         `db:"email"`
	Phone          string         `db:"phone"`
	AdditionalInfo string         `db:"additional_info"`
	Status         QuoteStatus    `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type QuoteStatus string

const (
	QuoteStatusNew        QuoteStatus = "nieuw"
	QuoteStatusInProgress QuoteStatus = "in_behandeling"
	QuoteStatusCompleted  QuoteStatus = "afgerond"
	QuoteStatusCancelled  QuoteStatus = "geannuleerd"
)

// ValidQuoteStatus reports whether s is one of the known status tags.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusNew, QuoteStatusInProgress, QuoteStatusCompleted, QuoteStatusCancelled:
		return true
	}
	return false
}
