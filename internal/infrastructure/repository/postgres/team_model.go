package postgres

import (
	"database/sql"
	"time"

	"github.com/coachstack/coachstack/internal/domain/team"
)

type teamTableModel struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Category       string         `db:"category"`
	Season         string         `db:"season"`
	CoachID        sql.NullString `db:"coach_id"`
	OrganizationID sql.NullString `db:"organization_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:             row.ID,
		Name:           row.Name,
		Category:       row.Category,
		Season:         row.Season,
		CoachID:        row.CoachID.String,
		OrganizationID: row.OrganizationID.String,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

type teamInsertModel struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Category       string         `db:"category"`
	Season         string         `db:"season"`
	CoachID        sql.NullString `db:"coach_id"`
	OrganizationID sql.NullString `db:"organization_id"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func intPtr(i sql.NullInt64) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int64)
	return &v
}
