package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/tender-evaluator/internal/models"
)

// In-memory repository fakes backing the service tests. They mirror the
// lookup and not-found semantics of the gorm-backed implementations.

type fakeEventRepo struct {
	events map[uuid.UUID]*models.SourcingEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*models.SourcingEvent)}
}

func (r *fakeEventRepo) Create(event *models.SourcingEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) FindByID(id uuid.UUID) (*models.SourcingEvent, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, models.NewNotFoundError("sourcing event %s not found", id)
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) UpdateRound(id uuid.UUID, round int) error {
	event, ok := r.events[id]
	if !ok {
		return models.NewNotFoundError("sourcing event %s not found", id)
	}
	event.Round = round
	event.UpdatedAt = time.Now()
	return nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*models.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*models.Vendor)}
}

func (r *fakeVendorRepo) Create(vendor *models.Vendor) error {
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	copied := *vendor
	r.vendors[vendor.ID] = &copied
	return nil
}

func (r *fakeVendorRepo) FindByID(id uuid.UUID) (*models.Vendor, error) {
	vendor, ok := r.vendors[id]
	if !ok {
		return nil, models.NewNotFoundError("vendor %s not found", id)
	}
	copied := *vendor
	return &copied, nil
}

func (r *fakeVendorRepo) FindByEvent(eventID uuid.UUID) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, vendor := range r.vendors {
		if vendor.SourcingEventID == eventID {
			out = append(out, *vendor)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeVendorRepo) UpdateBaselineStatus(id uuid.UUID, status models.BaselineStatus) error {
	vendor, ok := r.vendors[id]
	if !ok {
		return models.NewNotFoundError("vendor %s not found", id)
	}
	vendor.BaselineStatus = status
	vendor.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVendorRepo) UpdateBaselineError(id uuid.UUID, errorMsg string) error {
	vendor, ok := r.vendors[id]
	if !ok {
		return models.NewNotFoundError("vendor %s not found", id)
	}
	vendor.BaselineStatus = models.BaselineFailed
	vendor.BaselineError = &errorMsg
	vendor.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVendorRepo) FindPendingBaselines(limit int) ([]models.Vendor, error) {
	var out []models.Vendor
	for _, vendor := range r.vendors {
		if vendor.BaselineStatus == models.BaselineQueued {
			out = append(out, *vendor)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeRecordRepo struct {
	records map[uuid.UUID]*models.EvaluationRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uuid.UUID]*models.EvaluationRecord)}
}

func (r *fakeRecordRepo) Create(record *models.EvaluationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	copied := *record
	r.records[record.ID] = &copied
	return nil
}

func (r *fakeRecordRepo) FindByVendorStage(vendorID uuid.UUID, stage models.Stage) (*models.EvaluationRecord, error) {
	for _, record := range r.records {
		if record.VendorID == vendorID && record.Stage == stage {
			copied := *record
			return &copied, nil
		}
	}
	return nil, models.NewNotFoundError("%s record for vendor %s not found", stage, vendorID)
}

func (r *fakeRecordRepo) FindByVendor(vendorID uuid.UUID) ([]models.EvaluationRecord, error) {
	var out []models.EvaluationRecord
	for _, record := range r.records {
		if record.VendorID == vendorID {
			out = append(out, *record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeRecordRepo) Finalize(id uuid.UUID, submittedAt time.Time) error {
	record, ok := r.records[id]
	if !ok || record.Status != models.RecordOnProgress {
		return models.NewStateError("record %s is already final", id)
	}
	record.Status = models.RecordFinal
	record.SubmittedAt = &submittedAt
	record.UpdatedAt = time.Now()
	return nil
}

type fakeDocRepo struct {
	docs map[uuid.UUID]*models.Document
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: make(map[uuid.UUID]*models.Document)}
}

func (r *fakeDocRepo) CreateBatch(documents []models.Document) error {
	for i := range documents {
		if documents[i].ID == uuid.Nil {
			documents[i].ID = uuid.New()
		}
		copied := documents[i]
		r.docs[copied.ID] = &copied
	}
	return nil
}

func (r *fakeDocRepo) FindByVendor(vendorID uuid.UUID) ([]models.Document, error) {
	var out []models.Document
	for _, doc := range r.docs {
		if doc.VendorID == vendorID {
			out = append(out, *doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeDocRepo) FindByName(vendorID uuid.UUID, name string) (*models.Document, error) {
	for _, doc := range r.docs {
		if doc.VendorID == vendorID && doc.Name == name {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, models.NewNotFoundError("document %q for vendor %s not found", name, vendorID)
}

func (r *fakeDocRepo) Save(document *models.Document) error {
	copied := *document
	r.docs[document.ID] = &copied
	return nil
}

type fakeCriterionRepo struct {
	criteria map[uuid.UUID]*models.Criterion
}

func newFakeCriterionRepo() *fakeCriterionRepo {
	return &fakeCriterionRepo{criteria: make(map[uuid.UUID]*models.Criterion)}
}

func (r *fakeCriterionRepo) CreateBatch(criteria []models.Criterion) error {
	for i := range criteria {
		if criteria[i].ID == uuid.Nil {
			criteria[i].ID = uuid.New()
		}
		copied := criteria[i]
		r.criteria[copied.ID] = &copied
	}
	return nil
}

func (r *fakeCriterionRepo) FindByVendor(vendorID uuid.UUID) ([]models.Criterion, error) {
	var out []models.Criterion
	for _, criterion := range r.criteria {
		if criterion.VendorID == vendorID {
			out = append(out, *criterion)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCriterionRepo) FindByName(vendorID uuid.UUID, name string) (*models.Criterion, error) {
	for _, criterion := range r.criteria {
		if criterion.VendorID == vendorID && criterion.Name == name {
			copied := *criterion
			return &copied, nil
		}
	}
	return nil, models.NewNotFoundError("criterion %q for vendor %s not found", name, vendorID)
}

func (r *fakeCriterionRepo) Save(criterion *models.Criterion) error {
	copied := *criterion
	r.criteria[criterion.ID] = &copied
	return nil
}

type fakeOfferRepo struct {
	offers map[uuid.UUID]*models.VendorOffer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[uuid.UUID]*models.VendorOffer)}
}

func (r *fakeOfferRepo) Create(offer *models.VendorOffer) error {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	copied := *offer
	r.offers[offer.ID] = &copied
	return nil
}

func (r *fakeOfferRepo) FindByVendor(vendorID uuid.UUID) (*models.VendorOffer, error) {
	for _, offer := range r.offers {
		if offer.VendorID == vendorID {
			copied := *offer
			return &copied, nil
		}
	}
	return nil, models.NewNotFoundError("offer for vendor %s not found", vendorID)
}

func (r *fakeOfferRepo) FindByEvent(eventID uuid.UUID) ([]models.VendorOffer, error) {
	var out []models.VendorOffer
	for _, offer := range r.offers {
		if offer.SourcingEventID == eventID {
			out = append(out, *offer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOfferRepo) Save(offer *models.VendorOffer) error {
	copied := *offer
	r.offers[offer.ID] = &copied
	return nil
}

type fakeComponentRepo struct {
	components []models.CostComponent
}

func newFakeComponentRepo() *fakeComponentRepo {
	return &fakeComponentRepo{}
}

func (r *fakeComponentRepo) CreateBatch(components []models.CostComponent) error {
	for i := range components {
		if components[i].ID == uuid.Nil {
			components[i].ID = uuid.New()
		}
	}
	r.components = append(r.components, components...)
	return nil
}

func (r *fakeComponentRepo) FindByEvent(eventID uuid.UUID) ([]models.CostComponent, error) {
	var out []models.CostComponent
	for i := range r.components {
		if r.components[i].SourcingEventID == eventID {
			out = append(out, r.components[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
