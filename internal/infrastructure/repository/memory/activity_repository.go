package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
)

type ActivityRepository struct {
	mu    sync.RWMutex
	items map[string]activity.Activity
	order []string
}

func NewActivityRepository(activities []activity.Activity) *ActivityRepository {
	items := make(map[string]activity.Activity, len(activities))
	order := make([]string, 0, len(activities))
	for _, a := range activities {
		items[a.ID] = a
		order = append(order, a.ID)
	}

	return &ActivityRepository{items: items, order: order}
}

func (r *ActivityRepository) Create(_ context.Context, item activity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("activity %s already exists", item.ID)
	}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return nil
}

func (r *ActivityRepository) GetByID(_ context.Context, activityID string) (activity.Activity, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[activityID]
	return a, ok, nil
}

func (r *ActivityRepository) Update(_ context.Context, item activity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("activity %s not found", item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *ActivityRepository) ListByTeam(_ context.Context, teamID string) ([]activity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(a activity.Activity) bool { return a.TeamID == teamID }), nil
}

func (r *ActivityRepository) ListDueByTeam(_ context.Context, teamID string, day time.Time) ([]activity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(a activity.Activity) bool {
		return a.TeamID == teamID && !a.Resolved() && sameDay(a.StartTime, day)
	}), nil
}

func (r *ActivityRepository) ListByTeamOnDate(_ context.Context, teamID string, day time.Time) ([]activity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(a activity.Activity) bool {
		return a.TeamID == teamID && sameDay(a.StartTime, day)
	}), nil
}

// collect expects the read lock to be held.
func (r *ActivityRepository) collect(keep func(activity.Activity) bool) []activity.Activity {
	out := make([]activity.Activity, 0, len(r.order))
	for _, id := range r.order {
		a := r.items[id]
		if keep(a) {
			out = append(out, a)
		}
	}

	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
