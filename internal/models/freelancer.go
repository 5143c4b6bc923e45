package models

import (
	"time"

	"github.com/lib/pq"
)

type Freelancer struct {
	ID           string           `db:"id"`
	Name         string           `db:"name"`
	Email        string           `db:"email"`
	Skills       pq.StringArray   `db:"skills"`
	Experience   string           `db:"experience"`
	Availability string           `db:"availability"`
	Rate         string           `db:"rate"`
	Portfolio    string           `db:"portfolio"`
	Status       FreelancerStatus `db:"status"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
}

type FreelancerStatus string

const (
	FreelancerStatusAvailable FreelancerStatus = "beschikbaar"
	FreelancerStatusBusy      FreelancerStatus = "bezet"
	FreelancerStatusInactive  FreelancerStatus = "inactief"
)

// ValidFreelancerStatus reports whether s is one of the known status tags.
func ValidFreelancerStatus(s FreelancerStatus) bool {
	switch s {
	case FreelancerStatusAvailable, FreelancerStatusBusy, FreelancerStatusInactive:
		return true
	}
	return false
}
