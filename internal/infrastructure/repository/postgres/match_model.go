package postgres

import (
	"time"

	"github.com/coachstack/coachstack/internal/domain/match"
)

type matchTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Opponent  string    `db:"opponent"`
	Location  string    `db:"location"`
	PlayedAt  time.Time `db:"played_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Opponent:  row.Opponent,
		Location:  row.Location,
		PlayedAt:  row.PlayedAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type teamStatsTableModel struct {
	ID           string `db:"id"`
	MatchID      string `db:"match_id"`
	GoalsFor     int    `db:"goals_for"`
	GoalsAgainst int    `db:"goals_against"`
	Possession   int    `db:"possession"`
	Metrics      []byte `db:"metrics"`
}

func teamStatsFromRow(row teamStatsTableModel) (match.TeamStats, error) {
	metrics, err := metricsFromJSON(row.Metrics)
	if err != nil {
		return match.TeamStats{}, err
	}
	return match.TeamStats{
		ID:           row.ID,
		MatchID:      row.MatchID,
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		Possession:   row.Possession,
		Metrics:      metrics,
	}, nil
}

type playerStatsTableModel struct {
	ID       string `db:"id"`
	MatchID  string `db:"match_id"`
	PlayerID string `db:"player_id"`
	Minutes  int    `db:"minutes"`
	Metrics  []byte `db:"metrics"`
}

func playerStatsFromRow(row playerStatsTableModel) (match.PlayerStats, error) {
	metrics, err := metricsFromJSON(row.Metrics)
	if err != nil {
		return match.PlayerStats{}, err
	}
	return match.PlayerStats{
		ID:       row.ID,
		MatchID:  row.MatchID,
		PlayerID: row.PlayerID,
		Minutes:  row.Minutes,
		Metrics:  metrics,
	}, nil
}
