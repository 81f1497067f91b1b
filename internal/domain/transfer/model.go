package transfer

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a transfer offer. Pending is the
// only non-terminal state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Offer is a proposed player sale from the offering team to the
// player's current team.
type Offer struct {
	ID                  string
	PlayerID            string
	FromTeamID          string
	ToTeamID            string
	OfferedAmount       int64
	OfferedWeeklySalary int64
	OfferDate           time.Time
	ResponseDate        *time.Time
	Status              Status
}

func (o Offer) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("transfer offer id is required")
	}
	if o.PlayerID == "" {
		return fmt.Errorf("transfer offer player id is required")
	}
	if o.FromTeamID == "" || o.ToTeamID == "" {
		return fmt.Errorf("transfer offer team ids are required")
	}
	if o.OfferedAmount < 0 {
		return fmt.Errorf("transfer offer amount cannot be negative")
	}

	return nil
}

// Terminal reports whether the offer reached a final state.
func (o Offer) Terminal() bool {
	return o.Status != StatusPending
}
