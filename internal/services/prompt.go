package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildTechnicalBaselinePrompt creates the prompt that seeds per-criterion
// AI baseline scores for a vendor proposal.
func (pb *PromptBuilder) BuildTechnicalBaselinePrompt(proposalText, rubricContext string, criteria []CriterionTemplate) string {
	var lines []string
	for i, c := range criteria {
		lines = append(lines, fmt.Sprintf("%d. %s (Weight: %.0f%%)", i+1, c.Name, c.Weight))
	}

	return fmt.Sprintf(`You are a senior procurement analyst evaluating a vendor's tender proposal for the technical stage.

EVALUATION RUBRIC CONTEXT:
%s

VENDOR PROPOSAL:
%s

Score the proposal against each criterion on a 0-100 scale:
%s

Return your response in the following JSON format:
{
  "criteria": [
    {"name": "<criterion name exactly as listed>", "score": <0-100>, "justification": "<2-3 sentences citing the proposal>"}
  ]
}

Be objective. Cite specific sections of the proposal to justify every score.`,
		rubricContext, proposalText, strings.Join(lines, "\n"))
}

// BuildCommercialBaselinePrompt creates the prompt that seeds the commercial
// AI baseline score and the vendor's cost-component breakdown.
func (pb *PromptBuilder) BuildCommercialBaselinePrompt(proposalText string, initialOffer float64, components []ComponentTemplate) string {
	var lines []string
	for i, c := range components {
		lines = append(lines, fmt.Sprintf("%d. %s (Owner estimate: %.2f)", i+1, c.Name, c.EstimatedPrice))
	}

	return fmt.Sprintf(`You are a senior procurement analyst evaluating the commercial competitiveness of a vendor's tender proposal.

VENDOR PROPOSAL:
%s

TOTAL INITIAL OFFER: %.2f

Assess price competitiveness against the owner's estimate and extract the vendor's quoted price for each cost component:
%s

Return your response in the following JSON format:
{
  "offer_score": <0-100, higher means more competitive>,
  "justification": "<2-3 sentences>",
  "components": [
    {"name": "<component name exactly as listed>", "vendor_price": <quoted price, or a proportional share of the total offer if not broken out>}
  ]
}

The component prices must sum approximately to the total initial offer.`,
		proposalText, initialOffer, strings.Join(lines, "\n"))
}

// BuildCompliancePrompt creates the prompt that seeds document completeness
// and validity baselines for the administration gate.
func (pb *PromptBuilder) BuildCompliancePrompt(proposalText string, documents []string) string {
	var lines []string
	for i, name := range documents {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, name))
	}

	return fmt.Sprintf(`You are a procurement administrator checking a vendor's tender submission for required documents.

VENDOR PROPOSAL:
%s

REQUIRED DOCUMENTS:
%s

For each required document, report whether the proposal shows it as present and current.

Return your response in the following JSON format:
{
  "documents": [
    {"name": "<document name exactly as listed>", "status": "<complete|incomplete|missing>", "validity": "<valid|not_valid|expired|pending>"}
  ]
}

When the proposal gives no evidence either way, use status "missing" and validity "pending".`,
		proposalText, strings.Join(lines, "\n"))
}

// BuildRetrievalQuery creates the query for rubric retrieval.
func (pb *PromptBuilder) BuildRetrievalQuery(queryType string) string {
	switch queryType {
	case "technical_rubric":
		return "Technical evaluation criteria and scoring guidelines for tender proposals"
	case "commercial_rubric":
		return "Commercial evaluation and price competitiveness guidelines for tender proposals"
	case "document_checklist":
		return "Required administrative documents for tender submissions"
	default:
		return queryType
	}
}

// Helper to clean and format context from RAG results
func FormatRAGContext(results []SearchResult) string {
	if len(results) == 0 {
		return "No relevant context found."
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Context %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
