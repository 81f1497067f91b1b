package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Update(ctx context.Context, item Team) error
	List(ctx context.Context) ([]Team, error)
}
