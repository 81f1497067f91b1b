package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
	order []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(players))
	order := make([]string, 0, len(players))
	for _, p := range players {
		items[p.ID] = p
		order = append(order, p.ID)
	}

	return &PlayerRepository{items: items, order: order}
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("player %s already exists", item.ID)
	}
	r.items[item.ID] = clonePlayer(item)
	r.order = append(r.order, item.ID)

	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(p), true, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("player %s not found", item.ID)
	}
	r.items[item.ID] = clonePlayer(item)

	return nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(player.Player) bool { return true }), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p player.Player) bool { return p.TeamID == teamID }), nil
}

func (r *PlayerRepository) ListHealthyByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p player.Player) bool {
		return p.TeamID == teamID && p.Condition == player.ConditionHealthy
	}), nil
}

func (r *PlayerRepository) ListContractsExpiringBefore(_ context.Context, cutoff time.Time) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p player.Player) bool { return p.ContractEnd.Before(cutoff) }), nil
}

func (r *PlayerRepository) ListTransferListed(_ context.Context, excludeTeamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(p player.Player) bool {
		return p.Status == player.StatusTransferListed && p.TeamID != excludeTeamID
	}), nil
}

// collect expects the read lock to be held.
func (r *PlayerRepository) collect(keep func(player.Player) bool) []player.Player {
	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		p := r.items[id]
		if keep(p) {
			out = append(out, clonePlayer(p))
		}
	}

	return out
}

// clonePlayer copies the skills slice so callers cannot alias stored
// state through a returned player.
func clonePlayer(p player.Player) player.Player {
	if len(p.Skills) == 0 {
		return p
	}
	skills := make([]player.Skill, len(p.Skills))
	copy(skills, p.Skills)
	p.Skills = skills

	return p
}
