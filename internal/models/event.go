package models

import (
	"time"

	"github.com/google/uuid"
)

// SourcingEvent is the aggregate root for one tender cycle. Round is the
// commercial negotiation round counter, monotone in [0,3].
type SourcingEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Code      string    `gorm:"type:text" json:"code"`
	Round     int       `gorm:"not null;default:0" json:"round"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (SourcingEvent) TableName() string {
	return "sourcing_events"
}

// MaxNegotiationRounds caps the commercial simulator.
const MaxNegotiationRounds = 3
