package memory

import (
	"context"
	"sync"
	"time"
)

type GameStateRepository struct {
	mu             sync.RWMutex
	currentDate    time.Time
	selectedTeamID string
}

func NewGameStateRepository(start time.Time) *GameStateRepository {
	return &GameStateRepository{currentDate: start}
}

func (r *GameStateRepository) CurrentDate(_ context.Context) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.currentDate, nil
}

func (r *GameStateRepository) SetCurrentDate(_ context.Context, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.currentDate = date
	return nil
}

func (r *GameStateRepository) SelectedTeamID(_ context.Context) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.selectedTeamID, r.selectedTeamID != "", nil
}

func (r *GameStateRepository) SetSelectedTeam(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selectedTeamID = teamID
	return nil
}
