package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/franchise-manager/internal/domain/transfer"
	qb "github.com/riskibarqy/franchise-manager/internal/platform/querybuilder"
)

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, item transfer.Offer) error {
	query, args, err := qb.InsertInto("transfer_offers").
		Columns("id", "player_id", "from_team_id", "to_team_id", "offered_amount",
			"offered_weekly_salary", "offer_date", "response_date", "status").
		Values(item.ID, item.PlayerID, item.FromTeamID, item.ToTeamID, item.OfferedAmount,
			item.OfferedWeeklySalary, item.OfferDate, nullTime(item.ResponseDate),
			string(item.Status)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert transfer offer query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert transfer offer: %w", err)
	}

	return nil
}

func (r *TransferRepository) GetByID(ctx context.Context, offerID string) (transfer.Offer, bool, error) {
	query, args, err := qb.Select("*").From("transfer_offers").
		Where(qb.Eq("id", offerID)).
		ToSQL()
	if err != nil {
		return transfer.Offer{}, false, fmt.Errorf("build select transfer offer query: %w", err)
	}

	var row transferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return transfer.Offer{}, false, nil
		}
		return transfer.Offer{}, false, fmt.Errorf("select transfer offer: %w", err)
	}

	return mapTransferOffer(row), true, nil
}

func (r *TransferRepository) Update(ctx context.Context, item transfer.Offer) error {
	query, args, err := qb.Update("transfer_offers").
		Set("offered_amount", item.OfferedAmount).
		Set("offered_weekly_salary", item.OfferedWeeklySalary).
		Set("response_date", nullTime(item.ResponseDate)).
		Set("status", string(item.Status)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update transfer offer query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update transfer offer: %w", err)
	}

	return nil
}

func (r *TransferRepository) ListPendingByTeam(ctx context.Context, teamID string) ([]transfer.Offer, error) {
	query, args, err := qb.Select("*").From("transfer_offers").
		Where(
			qb.Eq("to_team_id", teamID),
			qb.Eq("status", string(transfer.StatusPending)),
		).
		OrderBy("offer_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfer offers query: %w", err)
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select transfer offers: %w", err)
	}

	out := make([]transfer.Offer, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTransferOffer(row))
	}

	return out, nil
}

func mapTransferOffer(row transferTableModel) transfer.Offer {
	item := transfer.Offer{
		ID:                  row.ID,
		PlayerID:            row.PlayerID,
		FromTeamID:          row.FromTeamID,
		ToTeamID:            row.ToTeamID,
		OfferedAmount:       row.OfferedAmount,
		OfferedWeeklySalary: row.OfferedWeeklySalary,
		OfferDate:           row.OfferDate,
		Status:              transfer.Status(row.Status),
	}
	if row.ResponseDate.Valid {
		responded := row.ResponseDate.Time
		item.ResponseDate = &responded
	}

	return item
}
