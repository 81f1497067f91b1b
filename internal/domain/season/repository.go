package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Season) error
	Update(ctx context.Context, item Season) error
	// CurrentByTeam returns the team's most recently created season
	// regardless of status. Game-over evaluation still inspects a season
	// that the daily tick already marked Completed.
	CurrentByTeam(ctx context.Context, teamID string) (Season, bool, error)
}
