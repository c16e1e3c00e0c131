package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coachstack/coachstack/internal/domain/assessment"
	"github.com/coachstack/coachstack/internal/domain/tenant"
	qb "github.com/coachstack/coachstack/internal/platform/querybuilder"
)

type assessmentTableModel struct {
	ID         string    `db:"id"`
	TeamID     string    `db:"team_id"`
	PlayerID   string    `db:"player_id"`
	AssessedAt time.Time `db:"assessed_at"`
	HeightCM   float64   `db:"height_cm"`
	WeightKG   float64   `db:"weight_kg"`
	BodyFatPct float64   `db:"body_fat_pct"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func assessmentFromRow(row assessmentTableModel) assessment.PhysicalAssessment {
	return assessment.PhysicalAssessment{
		ID:         row.ID,
		TeamID:     row.TeamID,
		PlayerID:   row.PlayerID,
		AssessedAt: row.AssessedAt,
		HeightCM:   row.HeightCM,
		WeightKG:   row.WeightKG,
		BodyFatPct: row.BodyFatPct,
		Notes:      row.Notes,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

type AssessmentRepository struct {
	s *session
}

func (r *AssessmentRepository) List(ctx context.Context, tc tenant.Context) ([]assessment.PhysicalAssessment, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "assessment")
		return nil, nil
	}
	return r.selectWhere(ctx, teamScope("team_id", tc))
}

func (r *AssessmentRepository) ListByPlayer(ctx context.Context, tc tenant.Context, playerID string) ([]assessment.PhysicalAssessment, error) {
	if tc.Empty() {
		r.s.denyEmptyScope(ctx, tc, "assessment")
		return nil, nil
	}
	return r.selectWhere(ctx, qb.Eq("player_id", playerID), teamScope("team_id", tc))
}

func (r *AssessmentRepository) GetByID(ctx context.Context, tc tenant.Context, id string) (assessment.PhysicalAssessment, bool, error) {
	query, args, err := qb.Select("*").From("physical_assessments").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return assessment.PhysicalAssessment{}, false, fmt.Errorf("build get assessment by id query: %w", err)
	}

	var row assessmentTableModel
	if err := sqlx.GetContext(ctx, r.s.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return assessment.PhysicalAssessment{}, false, nil
		}
		return assessment.PhysicalAssessment{}, false, fmt.Errorf("get assessment by id: %w", err)
	}
	return assessmentFromRow(row), true, nil
}

func (r *AssessmentRepository) Create(ctx context.Context, item assessment.PhysicalAssessment) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := assessmentTableModel{
		ID:         item.ID,
		TeamID:     item.TeamID,
		PlayerID:   item.PlayerID,
		AssessedAt: item.AssessedAt,
		HeightCM:   item.HeightCM,
		WeightKG:   item.WeightKG,
		BodyFatPct: item.BodyFatPct,
		Notes:      item.Notes,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	query, args, err := qb.InsertModel("physical_assessments", model, "")
	if err != nil {
		return fmt.Errorf("build insert assessment query: %w", err)
	}
	if _, err := r.s.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) Update(ctx context.Context, tc tenant.Context, id string, patch assessment.Patch) (assessment.PhysicalAssessment, bool, error) {
	query, args, err := qb.Update("physical_assessments").
		Set("assessed_at", patch.AssessedAt).
		Set("height_cm", patch.HeightCM).
		Set("weight_kg", patch.WeightKG).
		Set("body_fat_pct", patch.BodyFatPct).
		Set("notes", patch.Notes).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return assessment.PhysicalAssessment{}, false, fmt.Errorf("build update assessment query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return assessment.PhysicalAssessment{}, false, fmt.Errorf("update assessment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return assessment.PhysicalAssessment{}, false, fmt.Errorf("rows affected update assessment: %w", err)
	}
	if affected == 0 {
		return assessment.PhysicalAssessment{}, false, nil
	}

	return r.GetByID(ctx, tc, id)
}

func (r *AssessmentRepository) Delete(ctx context.Context, tc tenant.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom("physical_assessments").
		Where(
			qb.Eq("id", id),
			teamScope("team_id", tc),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete assessment query: %w", err)
	}

	res, err := r.s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete assessment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete assessment: %w", err)
	}
	return affected > 0, nil
}

func (r *AssessmentRepository) selectWhere(ctx context.Context, where ...qb.Condition) ([]assessment.PhysicalAssessment, error) {
	query, args, err := qb.Select("*").From("physical_assessments").
		Where(where...).
		OrderBy("assessed_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list assessments query: %w", err)
	}

	var rows []assessmentTableModel
	if err := sqlx.SelectContext(ctx, r.s.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}

	out := make([]assessment.PhysicalAssessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, assessmentFromRow(row))
	}
	return out, nil
}
