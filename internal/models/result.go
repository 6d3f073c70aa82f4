package models

import "github.com/google/uuid"

type AdministrationResult string

const (
	AdministrationPass    AdministrationResult = "pass"
	AdministrationNotPass AdministrationResult = "not_pass"
)

type RankLabel string

const (
	LabelWinner      RankLabel = "Winner"
	LabelRunnerUp    RankLabel = "Runner-up"
	LabelNotSelected RankLabel = "Not Selected"
)

// RankedVendor is the aggregator output for one vendor. Rank is 0 for
// ineligible vendors, which are retained in the output but excluded from
// rank numbering.
type RankedVendor struct {
	VendorID             uuid.UUID            `json:"vendor_id"`
	VendorName           string               `json:"vendor_name"`
	AdministrationResult AdministrationResult `json:"administration_result"`
	TechnicalScore       float64              `json:"technical_score"`
	CommercialScore      float64              `json:"commercial_score"`
	TotalScore           float64              `json:"total_score"`
	FinalOffer           float64              `json:"final_offer"`
	Eligible             bool                 `json:"eligible"`
	Rank                 int                  `json:"rank"`
	Status               RankLabel            `json:"status"`
}

// OpportunityRow is one line of the advisory negotiation-opportunity table,
// ranked descending by savings percentage.
type OpportunityRow struct {
	Component            string  `json:"component"`
	EstimatedPrice       float64 `json:"estimated_price"`
	LowestPossiblePrice  float64 `json:"lowest_possible_price"`
	VendorPrice          float64 `json:"vendor_price"`
	Opportunity          float64 `json:"opportunity"`
	SavingsPct           float64 `json:"savings_pct"`
	CumulativeSavingsPct float64 `json:"cumulative_savings_pct"`
}

// Requests

type CreateEventRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

type RegisterVendorRequest struct {
	Name           string  `json:"name" validate:"required"`
	Code           string  `json:"code"`
	ProposalFileID string  `json:"proposal_file_id" validate:"omitempty,uuid"`
	InitialOffer   float64 `json:"initial_offer" validate:"required,gt=0"`
}

type SetDocumentFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=status validity"`
	Value string `json:"value" validate:"required"`
}

type SetManualScoreRequest struct {
	Score         float64 `json:"score" validate:"min=0,max=100"`
	Justification string  `json:"justification"`
}

// Responses

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type RegisterVendorResponse struct {
	ID             string `json:"id"`
	BaselineStatus string `json:"baseline_status"`
}

type StageProgress struct {
	Stage       Stage        `json:"stage"`
	Status      RecordStatus `json:"status"`
	SubmittedAt *string      `json:"submitted_at,omitempty"`
}

type VendorProgress struct {
	VendorID       uuid.UUID       `json:"vendor_id"`
	VendorName     string          `json:"vendor_name"`
	BaselineStatus BaselineStatus  `json:"baseline_status"`
	Stages         []StageProgress `json:"stages"`
}

type EventProgressResponse struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Round   int              `json:"round"`
	Vendors []VendorProgress `json:"vendors"`
}

type AdvanceRoundResponse struct {
	Round  int                `json:"round"`
	Offers map[string]float64 `json:"revised_offers"`
}
