package postgres

import (
	"database/sql"
	"time"

	"github.com/coachstack/coachstack/internal/domain/championship"
)

type championshipTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Name      string    `db:"name"`
	Season    string    `db:"season"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func championshipFromRow(row championshipTableModel) championship.Championship {
	return championship.Championship{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Name:      row.Name,
		Season:    row.Season,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type fixtureTableModel struct {
	ID             string        `db:"id"`
	ChampionshipID string        `db:"championship_id"`
	Round          int           `db:"round"`
	Opponent       string        `db:"opponent"`
	PlayedAt       time.Time     `db:"played_at"`
	HomeScore      sql.NullInt64 `db:"home_score"`
	AwayScore      sql.NullInt64 `db:"away_score"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

func fixtureFromRow(row fixtureTableModel) championship.Fixture {
	return championship.Fixture{
		ID:             row.ID,
		ChampionshipID: row.ChampionshipID,
		Round:          row.Round,
		Opponent:       row.Opponent,
		PlayedAt:       row.PlayedAt,
		HomeScore:      intPtr(row.HomeScore),
		AwayScore:      intPtr(row.AwayScore),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func fixtureToInsert(f championship.Fixture) fixtureTableModel {
	return fixtureTableModel{
		ID:             f.ID,
		ChampionshipID: f.ChampionshipID,
		Round:          f.Round,
		Opponent:       f.Opponent,
		PlayedAt:       f.PlayedAt,
		HomeScore:      nullInt(f.HomeScore),
		AwayScore:      nullInt(f.AwayScore),
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
