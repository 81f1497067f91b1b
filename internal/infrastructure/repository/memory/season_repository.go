package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/franchise-manager/internal/domain/season"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	items map[string]season.Season
	order []string
}

func NewSeasonRepository() *SeasonRepository {
	return &SeasonRepository{items: make(map[string]season.Season)}
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("season %s already exists", item.ID)
	}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return nil
}

func (r *SeasonRepository) Update(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("season %s not found", item.ID)
	}
	r.items[item.ID] = item

	return nil
}

// CurrentByTeam returns the team's most recently created season.
func (r *SeasonRepository) CurrentByTeam(_ context.Context, teamID string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		item := r.items[r.order[i]]
		if item.TeamID == teamID {
			return item, true, nil
		}
	}

	return season.Season{}, false, nil
}
