package postgres

import (
	"database/sql"
	"time"

	"github.com/coachstack/coachstack/internal/domain/player"
)

type playerTableModel struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Position  string       `db:"position"`
	BirthDate sql.NullTime `db:"birth_date"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		Position:  row.Position,
		BirthDate: timePtr(row.BirthDate),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type membershipTableModel struct {
	ID        string       `db:"id"`
	PlayerID  string       `db:"player_id"`
	TeamID    string       `db:"team_id"`
	StartDate time.Time    `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
}

func membershipFromRow(row membershipTableModel) player.Membership {
	return player.Membership{
		ID:        row.ID,
		PlayerID:  row.PlayerID,
		TeamID:    row.TeamID,
		StartDate: row.StartDate,
		EndDate:   timePtr(row.EndDate),
	}
}

func membershipToInsert(m player.Membership) membershipTableModel {
	return membershipTableModel{
		ID:        m.ID,
		PlayerID:  m.PlayerID,
		TeamID:    m.TeamID,
		StartDate: m.StartDate,
		EndDate:   nullTime(m.EndDate),
	}
}
