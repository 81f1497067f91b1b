package player

import (
	"context"
	"time"
)

// Repository describes player persistence needs from use cases.
// Skill values are stored as part of the player record.
type Repository interface {
	Create(ctx context.Context, item Player) error
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Update(ctx context.Context, item Player) error
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	ListHealthyByTeam(ctx context.Context, teamID string) ([]Player, error)
	ListContractsExpiringBefore(ctx context.Context, cutoff time.Time) ([]Player, error)
	ListTransferListed(ctx context.Context, excludeTeamID string) ([]Player, error)
}
