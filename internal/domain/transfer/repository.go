package transfer

import "context"

// Repository describes transfer-offer persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Offer) error
	GetByID(ctx context.Context, offerID string) (Offer, bool, error)
	Update(ctx context.Context, item Offer) error
	// ListPendingByTeam returns pending offers addressed to the team
	// (offers for the team's own players).
	ListPendingByTeam(ctx context.Context, teamID string) ([]Offer, error)
}
