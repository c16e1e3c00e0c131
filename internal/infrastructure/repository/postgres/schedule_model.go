package postgres

import (
	"time"

	"github.com/coachstack/coachstack/internal/domain/schedule"
)

type scheduleTableModel struct {
	ID        string    `db:"id"`
	TeamID    string    `db:"team_id"`
	Title     string    `db:"title"`
	StartsOn  time.Time `db:"starts_on"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func scheduleFromRow(row scheduleTableModel, days []schedule.Day) schedule.Schedule {
	return schedule.Schedule{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Title:     row.Title,
		StartsOn:  row.StartsOn,
		Days:      days,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

type scheduleDayTableModel struct {
	ID         string    `db:"id"`
	ScheduleID string    `db:"schedule_id"`
	Date       time.Time `db:"date"`
	Activity   string    `db:"activity"`
	Notes      string    `db:"notes"`
}

func dayFromRow(row scheduleDayTableModel) schedule.Day {
	return schedule.Day{
		ID:         row.ID,
		ScheduleID: row.ScheduleID,
		Date:       row.Date,
		Activity:   row.Activity,
		Notes:      row.Notes,
	}
}

func dayToInsert(d schedule.Day) scheduleDayTableModel {
	return scheduleDayTableModel{
		ID:         d.ID,
		ScheduleID: d.ScheduleID,
		Date:       d.Date,
		Activity:   d.Activity,
		Notes:      d.Notes,
	}
}
