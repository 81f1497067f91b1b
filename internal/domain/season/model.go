package season

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a season. Active is the only
// non-terminal state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Season is one bounded one-year progression window for a team, with
// accumulated match statistics and budget snapshots.
type Season struct {
	ID             string
	TeamID         string
	StartDate      time.Time
	EndDate        time.Time
	Status         Status
	TotalMatches   int
	Wins           int
	Draws          int
	Losses         int
	StartingBudget int64
	EndingBudget   int64
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("season team id is required")
	}
	if !s.EndDate.After(s.StartDate) {
		return fmt.Errorf("season end date must be after start date")
	}

	return nil
}

// Terminal reports whether the season reached a final state.
func (s Season) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusFailed
}
