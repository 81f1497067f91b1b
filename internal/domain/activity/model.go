package activity

import (
	"fmt"
	"time"
)

// Type discriminates the two schedulable activity kinds.
type Type string

const (
	TypeTraining Type = "training"
	TypeMatch    Type = "match"
)

// Result is the terminal outcome of a resolved activity. Training
// sessions record Win/Loss as a success/failure pseudo-result.
type Result string

const (
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
	ResultWin  Result = "win"
)

// Activity is a scheduled training session or match owned by a team.
// A nil Result means the activity is still Scheduled; recording a
// result makes it Resolved.
type Activity struct {
	ID            string
	TeamID        string
	TemplateID    string
	Name          string
	Description   string
	Type          Type
	Duration      int
	StartTime     time.Time
	Result        *Result
	GoalsScored   *int
	GoalsConceded *int
	PlayerIDs     []string
}

func (a Activity) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("activity id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("activity name is required")
	}
	if a.Type != TypeTraining && a.Type != TypeMatch {
		return fmt.Errorf("invalid activity type: %s", a.Type)
	}
	if a.StartTime.IsZero() {
		return fmt.Errorf("activity start time is required")
	}

	return nil
}

// Resolved reports whether a result has been recorded.
func (a Activity) Resolved() bool {
	return a.Result != nil
}
