package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
	"alfredoptarigan/tender-evaluator/internal/repositories"
	"alfredoptarigan/tender-evaluator/internal/scoring"
)

// CommercialService runs the negotiation-round simulator and scores vendor
// offers. One mutex per sourcing event serializes round advances against
// concurrent score edits.
type CommercialService interface {
	AdvanceRound(eventID uuid.UUID) (round int, revised map[string]float64, err error)
	Score(vendorID uuid.UUID) (raw float64, normalized float64, err error)
	SetManualScore(vendorID uuid.UUID, score float64, justification string) error
	Submit(vendorID uuid.UUID) error
	Opportunities(eventID uuid.UUID, vendorID uuid.UUID) ([]models.OpportunityRow, error)
}

type commercialService struct {
	eventRepo     repositories.SourcingEventRepository
	offerRepo     repositories.OfferRepository
	recordRepo    repositories.EvaluationRecordRepository
	componentRepo repositories.CostComponentRepository
	schedule      scoring.ReductionSchedule
	jitterFactory func() scoring.JitterSource

	mu         sync.Mutex
	eventLocks map[uuid.UUID]*sync.Mutex
}

func NewCommercialService(
	eventRepo repositories.SourcingEventRepository,
	offerRepo repositories.OfferRepository,
	recordRepo repositories.EvaluationRecordRepository,
	componentRepo repositories.CostComponentRepository,
	schedule scoring.ReductionSchedule,
	jitterFactory func() scoring.JitterSource,
) CommercialService {
	if jitterFactory == nil {
		jitterFactory = scoring.NewRandomJitter
	}
	return &commercialService{
		eventRepo:     eventRepo,
		offerRepo:     offerRepo,
		recordRepo:    recordRepo,
		componentRepo: componentRepo,
		schedule:      schedule,
		jitterFactory: jitterFactory,
		eventLocks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *commercialService) lockEvent(eventID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.eventLocks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		s.eventLocks[eventID] = lock
	}
	return lock
}

// AdvanceRound implements CommercialService. Each advance freezes one
// revised offer per vendor: initial * (1 - base_reduction - jitter), with a
// jitter source seeded fresh for the advance. Rounds are monotone and capped
// at three; at the last round the final offer becomes the round-3 revision.
// Vendors whose commercial record is already final are left untouched.
func (s *commercialService) AdvanceRound(eventID uuid.UUID) (int, map[string]float64, error) {
	lock := s.lockEvent(eventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return 0, nil, err
	}

	if event.Round >= models.MaxNegotiationRounds {
		return event.Round, nil, models.NewStateError("negotiation for event %s is closed after round %d", eventID, models.MaxNegotiationRounds)
	}

	round := event.Round + 1
	jitter := s.jitterFactory()

	offers, err := s.offerRepo.FindByEvent(eventID)
	if err != nil {
		return 0, nil, err
	}

	revised := make(map[string]float64, len(offers))
	for i := range offers {
		offer := &offers[i]

		record, err := s.recordRepo.FindByVendorStage(offer.VendorID, models.StageCommercial)
		if err != nil {
			return 0, nil, err
		}
		if record.IsFinal() {
			log.Printf("⚠️  Skipping vendor %s: commercial stage already final\n", offer.VendorID)
			continue
		}

		// Round k offers are immutable once generated.
		if offer.RevisedOffer(round) != nil {
			continue
		}

		value := scoring.SimulateOffer(offer.InitialOffer, round, s.schedule, jitter)
		switch round {
		case 1:
			offer.RevisedOffer1 = &value
		case 2:
			offer.RevisedOffer2 = &value
		case 3:
			offer.RevisedOffer3 = &value
			offer.FinalOffer = value
		}
		offer.UpdatedAt = time.Now()

		if err := s.offerRepo.Save(offer); err != nil {
			return 0, nil, err
		}
		revised[offer.VendorID.String()] = value
	}

	if err := s.eventRepo.UpdateRound(eventID, round); err != nil {
		return 0, nil, err
	}

	log.Printf("🤝 Event %s advanced to negotiation round %d (%d offers revised)\n", eventID, round, len(revised))
	return round, revised, nil
}

// Score implements CommercialService. Returns the raw 0-100 effective score
// and its 0-20 contribution to the total.
func (s *commercialService) Score(vendorID uuid.UUID) (float64, float64, error) {
	offer, err := s.offerRepo.FindByVendor(vendorID)
	if err != nil {
		return 0, 0, err
	}

	raw := scoring.RoundScore(offer.EffectiveScore())
	return raw, scoring.NormalizeCommercial(raw), nil
}

// SetManualScore implements CommercialService.
func (s *commercialService) SetManualScore(vendorID uuid.UUID, score float64, justification string) error {
	if score < 0 || score > 100 {
		return models.NewValidationError("manual score %.2f is outside [0,100]", score)
	}

	offer, err := s.offerRepo.FindByVendor(vendorID)
	if err != nil {
		return err
	}

	lock := s.lockEvent(offer.SourcingEventID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.recordRepo.FindByVendorStage(vendorID, models.StageCommercial)
	if err != nil {
		return err
	}

	if record.IsFinal() {
		return models.NewStateError("commercial stage for vendor %s is final, scores can no longer be edited", vendorID)
	}

	offer.ManualScore = &score
	offer.Justification = justification
	offer.UpdatedAt = time.Now()

	return s.offerRepo.Save(offer)
}

// Submit implements CommercialService. Mirrors the technical rule: an
// override diverging from the AI baseline needs a justification before the
// stage can close.
func (s *commercialService) Submit(vendorID uuid.UUID) error {
	record, err := s.recordRepo.FindByVendorStage(vendorID, models.StageCommercial)
	if err != nil {
		return err
	}

	if record.IsFinal() {
		return models.NewStateError("commercial stage for vendor %s is already final", vendorID)
	}

	offer, err := s.offerRepo.FindByVendor(vendorID)
	if err != nil {
		return err
	}

	if offer.ManualScore != nil && *offer.ManualScore != offer.AIScore && offer.Justification == "" {
		return models.NewValidationError(
			"offer for vendor %s has a manual score differing from the AI baseline and requires a justification",
			vendorID,
		)
	}

	return s.recordRepo.Finalize(record.ID, time.Now())
}

// Opportunities implements CommercialService. Advisory only; see
// scoring.Opportunities.
func (s *commercialService) Opportunities(eventID uuid.UUID, vendorID uuid.UUID) ([]models.OpportunityRow, error) {
	components, err := s.componentRepo.FindByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cost components: %w", err)
	}

	return scoring.Opportunities(vendorID.String(), components), nil
}
