package models

import (
	"time"

	"github.com/google/uuid"
)

type BaselineStatus string

const (
	BaselineQueued     BaselineStatus = "queued"
	BaselineProcessing BaselineStatus = "processing"
	BaselineCompleted  BaselineStatus = "completed"
	BaselineFailed     BaselineStatus = "failed"
)

// Vendor is one competing bidder within a sourcing event. BaselineStatus
// tracks the asynchronous AI baseline job that seeds its three stage records.
type Vendor struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcingEventID uuid.UUID      `gorm:"type:uuid;not null;index" json:"sourcing_event_id"`
	Name            string         `gorm:"type:text;not null" json:"name"`
	Code            string         `gorm:"type:text" json:"code"`
	ProposalFileID  *uuid.UUID     `gorm:"type:uuid" json:"proposal_file_id,omitempty"`
	BaselineStatus  BaselineStatus `gorm:"not null;default:'queued'" json:"baseline_status"`
	BaselineError   *string        `gorm:"type:text" json:"baseline_error,omitempty"`
	CreatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ProposalFile *ProposalFile `gorm:"foreignKey:ProposalFileID" json:"-"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// ProposalFile is an uploaded vendor proposal PDF used as input for the AI
// baseline job.
type ProposalFile struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileType         string    `gorm:"type:text" json:"file_type"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (p *ProposalFile) TableName() string {
	return "proposal_files"
}
