package schedule

import (
	"fmt"
	"time"
)

// Schedule is a training week owned directly by a team; its day entries are
// one hop removed.
type Schedule struct {
	ID        string
	TeamID    string
	Title     string
	StartsOn  time.Time
	Days      []Day
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Schedule) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("schedule id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("schedule team id is required")
	}
	if s.Title == "" {
		return fmt.Errorf("schedule title is required")
	}
	for i, d := range s.Days {
		if d.Activity == "" {
			return fmt.Errorf("schedule day %d activity is required", i)
		}
	}

	return nil
}

// Day is a single dated activity entry inside a schedule.
type Day struct {
	ID         string
	ScheduleID string
	Date       time.Time
	Activity   string
	Notes      string
}

// Patch carries updatable schedule attributes.
type Patch struct {
	Title    string
	StartsOn time.Time
}
