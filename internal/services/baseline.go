package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
)

// BaselineService is the AI-baseline collaborator that seeds a vendor's
// three stage records: document compliance for the administration gate,
// per-criterion scores for the technical stage, and the offer score plus
// cost-component breakdown for the commercial stage. Evaluators then adjust
// the baselines through the stage services.
type BaselineService interface {
	GenerateBaseline(ctx context.Context, vendorID uuid.UUID) error
}

// CriterionTemplate defines one criterion of the standard technical
// evaluation template. Weights sum to 100.
type CriterionTemplate struct {
	Name   string
	Weight float64
}

// ComponentTemplate defines one line of the owner's cost estimate used for
// negotiation-opportunity analysis.
type ComponentTemplate struct {
	Name           string
	EstimatedPrice float64
}

// DefaultCriteria is the standard technical template applied to every
// vendor in an event.
func DefaultCriteria() []CriterionTemplate {
	return []CriterionTemplate{
		{Name: "Technical Capability", Weight: 30},
		{Name: "Relevant Experience", Weight: 20},
		{Name: "Delivery Plan", Weight: 15},
		{Name: "Quality Management", Weight: 15},
		{Name: "HSE Compliance", Weight: 10},
		{Name: "Local Content", Weight: 10},
	}
}

// DefaultDocuments is the standard administration checklist.
func DefaultDocuments() []string {
	return []string{
		"Company Registration",
		"Tax Clearance Certificate",
		"Audited Financial Statement",
		"Experience Certificate",
		"Integrity Pact",
	}
}

// DefaultComponents is the owner's cost estimate template, priced as shares
// of a nominal contract value. Per-event estimates can replace it later.
func DefaultComponents(initialOffer float64) []ComponentTemplate {
	return []ComponentTemplate{
		{Name: "Materials", EstimatedPrice: initialOffer * 0.45},
		{Name: "Labor", EstimatedPrice: initialOffer * 0.25},
		{Name: "Equipment", EstimatedPrice: initialOffer * 0.15},
		{Name: "Logistics", EstimatedPrice: initialOffer * 0.10},
		{Name: "Overhead", EstimatedPrice: initialOffer * 0.05},
	}
}

type baselineService struct {
	vendorRepo    repositories.VendorRepository
	proposalRepo  repositories.ProposalFileRepository
	docRepo       repositories.DocumentRepository
	criterionRepo repositories.CriterionRepository
	offerRepo     repositories.OfferRepository
	componentRepo repositories.CostComponentRepository
	geminiService GeminiService
	qdrantService QdrantService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewBaselineService(
	vendorRepo repositories.VendorRepository,
	proposalRepo repositories.ProposalFileRepository,
	docRepo repositories.DocumentRepository,
	criterionRepo repositories.CriterionRepository,
	offerRepo repositories.OfferRepository,
	componentRepo repositories.CostComponentRepository,
	geminiService GeminiService,
	qdrantService QdrantService,
	pdfParser PDFParserService,
	maxRetries int,
) BaselineService {
	return &baselineService{
		vendorRepo:    vendorRepo,
		proposalRepo:  proposalRepo,
		docRepo:       docRepo,
		criterionRepo: criterionRepo,
		offerRepo:     offerRepo,
		componentRepo: componentRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

type technicalBaseline struct {
	Criteria []struct {
		Name          string  `json:"name"`
		Score         float64 `json:"score"`
		Justification string  `json:"justification"`
	} `json:"criteria"`
}

type commercialBaseline struct {
	OfferScore    float64 `json:"offer_score"`
	Justification string  `json:"justification"`
	Components    []struct {
		Name        string  `json:"name"`
		VendorPrice float64 `json:"vendor_price"`
	} `json:"components"`
}

type complianceBaseline struct {
	Documents []struct {
		Name     string `json:"name"`
		Status   string `json:"status"`
		Validity string `json:"validity"`
	} `json:"documents"`
}

// GenerateBaseline implements BaselineService.
func (s *baselineService) GenerateBaseline(ctx context.Context, vendorID uuid.UUID) error {
	if err := s.vendorRepo.UpdateBaselineStatus(vendorID, models.BaselineProcessing); err != nil {
		return fmt.Errorf("failed to update baseline status: %w", err)
	}

	log.Printf("🔄 Starting baseline generation for vendor %s\n", vendorID)

	vendor, err := s.vendorRepo.FindByID(vendorID)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
		return fmt.Errorf("failed to get vendor: %w", err)
	}

	offer, err := s.offerRepo.FindByVendor(vendorID)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
		return fmt.Errorf("failed to get offer: %w", err)
	}

	// Without a proposal on file there is nothing to analyze: seed neutral
	// baselines and leave everything to the human evaluators.
	if vendor.ProposalFileID == nil {
		if err := s.seedNeutral(vendor, offer); err != nil {
			s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
			return err
		}
		return s.vendorRepo.UpdateBaselineStatus(vendorID, models.BaselineCompleted)
	}

	proposal, err := s.proposalRepo.FindByID(*vendor.ProposalFileID)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, fmt.Sprintf("proposal file not found: %v", err))
		return fmt.Errorf("failed to get proposal file: %w", err)
	}

	log.Println("📄 Parsing vendor proposal...")
	content, err := s.pdfParser.ExtractProposalText(proposal.FilePath)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, fmt.Sprintf("failed to parse proposal: %v", err))
		return fmt.Errorf("failed to parse proposal: %w", err)
	}

	log.Println("🔍 Retrieving rubric context...")
	rubricContext, err := s.retrieveContext(ctx, content.Text, "technical_rubric")
	if err != nil {
		log.Printf("⚠️  Warning: failed to retrieve rubric context: %v\n", err)
		rubricContext = ""
	}

	technical, err := s.generateTechnical(ctx, content.Text, rubricContext)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
		return err
	}

	commercial, err := s.generateCommercial(ctx, content.Text, offer.InitialOffer)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
		return err
	}

	compliance, err := s.generateCompliance(ctx, content.Text)
	if err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
		return err
	}

	if err := s.persistBaselines(vendor, offer, technical, commercial, compliance); err != nil {
		s.vendorRepo.UpdateBaselineError(vendorID, err.Error())
		return err
	}

	log.Printf("✅ Baseline generation completed for vendor %s\n", vendorID)
	return s.vendorRepo.UpdateBaselineStatus(vendorID, models.BaselineCompleted)
}

func (s *baselineService) retrieveContext(ctx context.Context, text string, rubricType string) (string, error) {
	query := s.promptBuilder.BuildRetrievalQuery(rubricType)

	embedding, err := s.geminiService.GenerateEmbedding(ctx, query+"\n"+text[:min(len(text), 2000)])
	if err != nil {
		return "", fmt.Errorf("failed to embed retrieval query: %w", err)
	}

	results, err := s.qdrantService.SearchSimilar(ctx, embedding, rubricType, 3)
	if err != nil {
		return "", fmt.Errorf("failed to search rubric context: %w", err)
	}

	return FormatRAGContext(results), nil
}

func (s *baselineService) generateTechnical(ctx context.Context, proposalText, rubricContext string) (*technicalBaseline, error) {
	prompt := s.promptBuilder.BuildTechnicalBaselinePrompt(proposalText, rubricContext, DefaultCriteria())

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.2, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate technical baseline: %w", err)
	}

	var result technicalBaseline
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse technical baseline: %w", err)
	}

	return &result, nil
}

func (s *baselineService) generateCommercial(ctx context.Context, proposalText string, initialOffer float64) (*commercialBaseline, error) {
	prompt := s.promptBuilder.BuildCommercialBaselinePrompt(proposalText, initialOffer, DefaultComponents(initialOffer))

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.2, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate commercial baseline: %w", err)
	}

	var result commercialBaseline
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse commercial baseline: %w", err)
	}

	return &result, nil
}

func (s *baselineService) generateCompliance(ctx context.Context, proposalText string) (*complianceBaseline, error) {
	prompt := s.promptBuilder.BuildCompliancePrompt(proposalText, DefaultDocuments())

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.1, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate compliance baseline: %w", err)
	}

	var result complianceBaseline
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse compliance baseline: %w", err)
	}

	return &result, nil
}

func (s *baselineService) persistBaselines(
	vendor *models.Vendor,
	offer *models.VendorOffer,
	technical *technicalBaseline,
	commercial *commercialBaseline,
	compliance *complianceBaseline,
) error {
	// Justification stays empty here: that field belongs to the human
	// evaluator and gates overrides at submit time.
	aiScores := make(map[string]float64, len(technical.Criteria))
	for _, c := range technical.Criteria {
		aiScores[c.Name] = clampScore(c.Score)
	}

	var criteria []models.Criterion
	for _, tpl := range DefaultCriteria() {
		criterion := models.Criterion{
			SourcingEventID: vendor.SourcingEventID,
			VendorID:        vendor.ID,
			Name:            tpl.Name,
			Weight:          tpl.Weight,
		}
		if score, ok := aiScores[tpl.Name]; ok {
			criterion.AIScore = score
		}
		criteria = append(criteria, criterion)
	}
	if err := s.criterionRepo.CreateBatch(criteria); err != nil {
		return err
	}

	docBaselines := make(map[string]struct {
		status   models.DocumentStatus
		validity models.DocumentValidity
	}, len(compliance.Documents))
	for _, d := range compliance.Documents {
		status := models.DocumentStatus(d.Status)
		if !status.IsValid() {
			status = models.DocumentMissing
		}
		validity := models.DocumentValidity(d.Validity)
		if !validity.IsValid() {
			validity = models.ValidityPending
		}
		docBaselines[d.Name] = struct {
			status   models.DocumentStatus
			validity models.DocumentValidity
		}{status, validity}
	}

	var documents []models.Document
	for _, name := range DefaultDocuments() {
		document := models.Document{
			SourcingEventID: vendor.SourcingEventID,
			VendorID:        vendor.ID,
			Name:            name,
			Status:          models.DocumentMissing,
			Validity:        models.ValidityPending,
		}
		if baseline, ok := docBaselines[name]; ok {
			document.Status = baseline.status
			document.Validity = baseline.validity
		}
		documents = append(documents, document)
	}
	if err := s.docRepo.CreateBatch(documents); err != nil {
		return err
	}

	offer.AIScore = clampScore(commercial.OfferScore)
	if err := s.offerRepo.Save(offer); err != nil {
		return err
	}

	vendorPrices := make(map[string]float64, len(commercial.Components))
	for _, c := range commercial.Components {
		vendorPrices[c.Name] = c.VendorPrice
	}

	var components []models.CostComponent
	for _, tpl := range DefaultComponents(offer.InitialOffer) {
		component := models.CostComponent{
			SourcingEventID: vendor.SourcingEventID,
			VendorID:        vendor.ID,
			Name:            tpl.Name,
			EstimatedPrice:  tpl.EstimatedPrice,
			VendorPrice:     tpl.EstimatedPrice,
		}
		if price, ok := vendorPrices[tpl.Name]; ok && price > 0 {
			component.VendorPrice = price
		}
		components = append(components, component)
	}
	return s.componentRepo.CreateBatch(components)
}

// seedNeutral creates empty-handed baselines: zero AI scores, missing and
// pending documents, component prices at the owner's estimate.
func (s *baselineService) seedNeutral(vendor *models.Vendor, offer *models.VendorOffer) error {
	empty := &technicalBaseline{}
	return s.persistBaselines(vendor, offer, empty, &commercialBaseline{}, &complianceBaseline{})
}

func parseJSONResponse(response string, target interface{}) error {
	// Try to extract JSON from response (LLM might wrap it in markdown)
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w\nResponse: %s", err, response)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
