package models

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatus string

const (
	DocumentComplete   DocumentStatus = "complete"
	DocumentIncomplete DocumentStatus = "incomplete"
	DocumentMissing    DocumentStatus = "missing"
)

func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentComplete, DocumentIncomplete, DocumentMissing:
		return true
	}
	return false
}

type DocumentValidity string

const (
	ValidityValid    DocumentValidity = "valid"
	ValidityNotValid DocumentValidity = "not_valid"
	ValidityExpired  DocumentValidity = "expired"
	ValidityPending  DocumentValidity = "pending"
)

func (v DocumentValidity) IsValid() bool {
	switch v {
	case ValidityValid, ValidityNotValid, ValidityExpired, ValidityPending:
		return true
	}
	return false
}

// Document is one administration-stage compliance item for a vendor. The
// vendor passes the gate only when every document is complete and valid.
type Document struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcingEventID uuid.UUID        `gorm:"type:uuid;not null;index" json:"sourcing_event_id"`
	VendorID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Name            string           `gorm:"type:text;not null" json:"name"`
	Status          DocumentStatus   `gorm:"not null;default:'missing'" json:"status"`
	Validity        DocumentValidity `gorm:"not null;default:'pending'" json:"validity"`
	CreatedAt       time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// Compliant reports whether this single document clears the gate.
func (d *Document) Compliant() bool {
	return d.Status == DocumentComplete && d.Validity == ValidityValid
}
