package services

import (
	"fmt"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/scoring"
)

// RankingService recomputes the event standing from the three stage results.
// Recompute is idempotent: the aggregation itself is pure, so unchanged
// records always yield the same ranking.
type RankingService interface {
	Rank(eventID uuid.UUID) ([]models.RankedVendor, error)
}

type rankingService struct {
	vendorRepo     repositories.VendorRepository
	offerRepo      repositories.OfferRepository
	administration AdministrationService
	technical      TechnicalService
}

func NewRankingService(
	vendorRepo repositories.VendorRepository,
	offerRepo repositories.OfferRepository,
	administration AdministrationService,
	technical TechnicalService,
) RankingService {
	return &rankingService{
		vendorRepo:     vendorRepo,
		offerRepo:      offerRepo,
		administration: administration,
		technical:      technical,
	}
}

// Rank implements RankingService.
func (s *rankingService) Rank(eventID uuid.UUID) ([]models.RankedVendor, error) {
	vendors, err := s.vendorRepo.FindByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendors: %w", err)
	}

	inputs := make([]scoring.RankingInput, 0, len(vendors))
	for _, vendor := range vendors {
		adminResult, err := s.administration.Evaluate(vendor.ID)
		if err != nil {
			return nil, err
		}

		technicalRaw, _, err := s.technical.Score(vendor.ID)
		if err != nil {
			return nil, err
		}

		offer, err := s.offerRepo.FindByVendor(vendor.ID)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, scoring.RankingInput{
			Vendor:               vendor,
			AdministrationResult: adminResult,
			TechnicalRaw:         technicalRaw,
			CommercialRaw:        offer.EffectiveScore(),
			FinalOffer:           offer.FinalOffer,
		})
	}

	return scoring.Rank(inputs), nil
}
