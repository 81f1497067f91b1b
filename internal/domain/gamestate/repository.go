package gamestate

import (
	"context"
	"time"
)

// Repository owns the engine's shared mutable state: the current
// simulation date and the manager's selected team.
type Repository interface {
	CurrentDate(ctx context.Context) (time.Time, error)
	SetCurrentDate(ctx context.Context, date time.Time) error
	SelectedTeamID(ctx context.Context) (string, bool, error)
	SetSelectedTeam(ctx context.Context, teamID string) error
}
