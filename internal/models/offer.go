package models

import (
	"time"

	"github.com/google/uuid"
)

// VendorOffer is a vendor's commercial-stage record. RevisedOffer1..3 are
// frozen as negotiation rounds are generated; FinalOffer stays at
// InitialOffer until round 3, where it becomes RevisedOffer3.
type VendorOffer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcingEventID uuid.UUID `gorm:"type:uuid;not null;index" json:"sourcing_event_id"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"vendor_id"`
	InitialOffer    float64   `gorm:"type:decimal(18,2);not null" json:"initial_offer"`
	RevisedOffer1   *float64  `gorm:"type:decimal(18,2)" json:"revised_offer_1,omitempty"`
	RevisedOffer2   *float64  `gorm:"type:decimal(18,2)" json:"revised_offer_2,omitempty"`
	RevisedOffer3   *float64  `gorm:"type:decimal(18,2)" json:"revised_offer_3,omitempty"`
	FinalOffer      float64   `gorm:"type:decimal(18,2);not null" json:"final_offer"`
	AIScore         float64   `gorm:"type:decimal(5,2);not null" json:"ai_score"`
	ManualScore     *float64  `gorm:"type:decimal(5,2)" json:"manual_score,omitempty"`
	Justification   string    `gorm:"type:text" json:"justification"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (VendorOffer) TableName() string {
	return "vendor_offers"
}

// EffectiveScore is the manual override when present, the AI baseline
// otherwise.
func (o *VendorOffer) EffectiveScore() float64 {
	if o.ManualScore != nil {
		return *o.ManualScore
	}
	return o.AIScore
}

// RevisedOffer returns the frozen offer for a generated round, nil if the
// round has not run.
func (o *VendorOffer) RevisedOffer(round int) *float64 {
	switch round {
	case 1:
		return o.RevisedOffer1
	case 2:
		return o.RevisedOffer2
	case 3:
		return o.RevisedOffer3
	}
	return nil
}

// CostComponent is one line of a vendor's cost breakdown, used by the
// advisory negotiation-opportunity analysis.
type CostComponent struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcingEventID uuid.UUID `gorm:"type:uuid;not null;index" json:"sourcing_event_id"`
	VendorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	EstimatedPrice  float64   `gorm:"type:decimal(18,2);not null" json:"estimated_price"`
	VendorPrice     float64   `gorm:"type:decimal(18,2);not null" json:"vendor_price"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CostComponent) TableName() string {
	return "cost_components"
}
