package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/franchise-manager/internal/domain/transfer"
)

type TransferRepository struct {
	mu    sync.RWMutex
	items map[string]transfer.Offer
	order []string
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{items: make(map[string]transfer.Offer)}
}

func (r *TransferRepository) Create(_ context.Context, item transfer.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("transfer offer %s already exists", item.ID)
	}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return nil
}

func (r *TransferRepository) GetByID(_ context.Context, offerID string) (transfer.Offer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.items[offerID]
	return o, ok, nil
}

func (r *TransferRepository) Update(_ context.Context, item transfer.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("transfer offer %s not found", item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *TransferRepository) ListPendingByTeam(_ context.Context, teamID string) ([]transfer.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transfer.Offer, 0, len(r.order))
	for _, id := range r.order {
		o := r.items[id]
		if o.ToTeamID == teamID && o.Status == transfer.StatusPending {
			out = append(out, o)
		}
	}

	return out, nil
}
