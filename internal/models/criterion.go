package models

import (
	"time"

	"github.com/google/uuid"
)

// Criterion is one technical-stage evaluation criterion for a vendor.
// Weight is a percentage; the weights of one vendor's criteria must sum to
// 100. ManualScore, when set, overrides AIScore; an override that differs
// from the AI baseline requires a non-empty Justification before the stage
// can be submitted.
type Criterion struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcingEventID uuid.UUID `gorm:"type:uuid;not null;index" json:"sourcing_event_id"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Weight          float64   `gorm:"type:decimal(5,2);not null" json:"weight"`
	AIScore         float64   `gorm:"type:decimal(5,2);not null" json:"ai_score"`
	ManualScore     *float64  `gorm:"type:decimal(5,2)" json:"manual_score,omitempty"`
	Justification   string    `gorm:"type:text" json:"justification"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Criterion) TableName() string {
	return "criteria"
}

// EffectiveScore is the manual override when present, the AI baseline
// otherwise.
func (c *Criterion) EffectiveScore() float64 {
	if c.ManualScore != nil {
		return *c.ManualScore
	}
	return c.AIScore
}

// NeedsJustification reports whether a manual override diverges from the AI
// baseline without a written reason.
func (c *Criterion) NeedsJustification() bool {
	return c.ManualScore != nil && *c.ManualScore != c.AIScore && c.Justification == ""
}
