package memory

import (
	"context"

	"github.com/coachstack/coachstack/internal/domain/assessment"
	"github.com/coachstack/coachstack/internal/domain/tenant"
)

type AssessmentRepository struct {
	store *Store
}

func (r *AssessmentRepository) List(ctx context.Context, tc tenant.Context) ([]assessment.PhysicalAssessment, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "assessment")
		return nil, nil
	}

	var out []assessment.PhysicalAssessment
	for _, id := range r.store.assessmentOrder {
		item := r.store.assessments[id]
		if tc.Allows(item.TeamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *AssessmentRepository) ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]assessment.PhysicalAssessment, error) {
	if tc.Empty() {
		r.store.denyEmptyScope(ctx, tc, "assessment")
		return nil, nil
	}

	var out []assessment.PhysicalAssessment
	for _, id := range r.store.assessmentOrder {
		item := r.store.assessments[id]
		if item.PlayerID == playerID && tc.Allows(item.TeamID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *AssessmentRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (assessment.PhysicalAssessment, bool, error) {
	item, ok := r.store.assessments[id]
	if !ok {
		return assessment.PhysicalAssessment{}, false, nil
	}
	if !tc.Allows(item.TeamID) {
		r.store.denyOutOfScope(ctx, tc, "assessment", id, item.TeamID)
		return assessment.PhysicalAssessment{}, false, nil
	}
	return item, true, nil
}

func (r *AssessmentRepository) Create(_ context.Context, item assessment.PhysicalAssessment) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.assessments[item.ID] = item
	r.store.assessmentOrder = append(r.store.assessmentOrder, item.ID)
	return nil
}

func (r *AssessmentRepository) Update(ctx context.Context, tc tenant.Context, id string, patch assessment.Patch) (assessment.PhysicalAssessment, bool, error) {
	item, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return assessment.PhysicalAssessment{}, false, err
	}

	item.AssessedAt = patch.AssessedAt
	item.HeightCM = patch.HeightCM
	item.WeightKG = patch.WeightKG
	item.BodyFatPct = patch.BodyFatPct
	item.Notes = patch.Notes
	r.store.assessments[id] = item
	return item, true, nil
}

func (r *AssessmentRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	_, ok, err := r.GetByID(ctx, tc, id)
	if err != nil || !ok {
		return false, err
	}

	delete(r.store.assessments, id)
	r.store.assessmentOrder = removeID(r.store.assessmentOrder, id)
	return true, nil
}
