package models

import (
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageAdministration Stage = "administration"
	StageTechnical      Stage = "technical"
	StageCommercial     Stage = "commercial"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageAdministration, StageTechnical, StageCommercial:
		return true
	}
	return false
}

// Stages lists the three evaluation stages in pipeline order.
func Stages() []Stage {
	return []Stage{StageAdministration, StageTechnical, StageCommercial}
}

type RecordStatus string

const (
	RecordOnProgress RecordStatus = "on_progress"
	RecordFinal      RecordStatus = "final"
)

// EvaluationRecord tracks the submission lifecycle of one (sourcing event,
// vendor, stage) triple. The transition on_progress -> final is one-way; no
// stage input may be mutated once the record is final.
type EvaluationRecord struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcingEventID uuid.UUID    `gorm:"type:uuid;not null;index:idx_record_vendor_stage,unique" json:"sourcing_event_id"`
	VendorID        uuid.UUID    `gorm:"type:uuid;not null;index:idx_record_vendor_stage,unique" json:"vendor_id"`
	Stage           Stage        `gorm:"type:text;not null;index:idx_record_vendor_stage,unique" json:"stage"`
	Status          RecordStatus `gorm:"not null;default:'on_progress'" json:"status"`
	SubmittedAt     *time.Time   `gorm:"type:timestamp" json:"submitted_at,omitempty"`
	CreatedAt       time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (EvaluationRecord) TableName() string {
	return "evaluation_records"
}

// IsFinal reports whether the record has been submitted.
func (r *EvaluationRecord) IsFinal() bool {
	return r.Status == RecordFinal
}
