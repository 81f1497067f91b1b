package usecase

import (
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
)

// PerformanceChangedEvent fires when a resolution moves a player's
// performance tier.
type PerformanceChangedEvent struct {
	Player         player.Player
	OldPerformance player.Performance
	NewPerformance player.Performance
}

// PlayerInjuredEvent fires when a resolution injures a player.
type PlayerInjuredEvent struct {
	Player     player.Player
	InjuryDate time.Time
}

// ActivityCompletedEvent fires once per resolved activity, bundling
// every player the resolution touched.
type ActivityCompletedEvent struct {
	Activity        activity.Activity
	Success         bool
	AffectedPlayers []player.Player
}

// eventHandlers is the explicit subscriber list the engine notifies.
// The engine is single-threaded by contract, so plain slices suffice;
// handlers run synchronously in registration order.
type eventHandlers struct {
	performanceChanged []func(PerformanceChangedEvent)
	playerInjured      []func(PlayerInjuredEvent)
	activityCompleted  []func(ActivityCompletedEvent)
}

func (h *eventHandlers) emitPerformanceChanged(e PerformanceChangedEvent) {
	for _, fn := range h.performanceChanged {
		fn(e)
	}
}

func (h *eventHandlers) emitPlayerInjured(e PlayerInjuredEvent) {
	for _, fn := range h.playerInjured {
		fn(e)
	}
}

func (h *eventHandlers) emitActivityCompleted(e ActivityCompletedEvent) {
	for _, fn := range h.activityCompleted {
		fn(e)
	}
}
