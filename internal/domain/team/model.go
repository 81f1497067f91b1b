package team

import "fmt"

// Team is a managed football club with its own budget and staff.
// Budget is whole currency units and may legally go negative between
// daily settlements; the season lifecycle treats a non-positive budget
// as a game-over trigger, this type does not enforce a sign.
type Team struct {
	ID         string
	Name       string
	Budget     int64
	StaffCount int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.StaffCount < 1 {
		return fmt.Errorf("team staff count must be at least 1")
	}

	return nil
}
