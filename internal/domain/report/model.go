package report

import (
	"context"
	"time"
)

// ActivityReport is the flat record emitted after every resolved
// activity and handed to the configured sink.
type ActivityReport struct {
	ActivityName    string
	TeamName        string
	ExecutionDate   time.Time
	Success         bool
	RemainingBudget int64
	AffectedPlayers []string
}

// Sink persists activity reports and retrieves them by file name.
type Sink interface {
	Generate(ctx context.Context, item ActivityReport) error
	Load(ctx context.Context, name string) (ActivityReport, error)
}
