package activity

import (
	"context"
	"time"
)

// Repository describes activity persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Activity) error
	GetByID(ctx context.Context, activityID string) (Activity, bool, error)
	Update(ctx context.Context, item Activity) error
	ListByTeam(ctx context.Context, teamID string) ([]Activity, error)
	// ListDueByTeam returns the team's unresolved activities whose start
	// date falls on the given calendar day.
	ListDueByTeam(ctx context.Context, teamID string, day time.Time) ([]Activity, error)
	// ListByTeamOnDate returns all of the team's activities on the given
	// calendar day regardless of resolution state.
	ListByTeamOnDate(ctx context.Context, teamID string, day time.Time) ([]Activity, error)
}
