package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/franchise-manager/internal/platform/querybuilder"
)

// game_state is a single-row table keyed by id = 1. The migration
// seeds the row so reads never miss.
const gameStateRowID = 1

type GameStateRepository struct {
	db *sqlx.DB
}

func NewGameStateRepository(db *sqlx.DB) *GameStateRepository {
	return &GameStateRepository{db: db}
}

func (r *GameStateRepository) CurrentDate(ctx context.Context) (time.Time, error) {
	row, err := r.load(ctx)
	if err != nil {
		return time.Time{}, err
	}

	return row.GameDate, nil
}

func (r *GameStateRepository) SetCurrentDate(ctx context.Context, date time.Time) error {
	query, args, err := qb.Update("game_state").
		Set("game_date", date).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", gameStateRowID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game state query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update game state date: %w", err)
	}

	return nil
}

func (r *GameStateRepository) SelectedTeamID(ctx context.Context) (string, bool, error) {
	row, err := r.load(ctx)
	if err != nil {
		return "", false, err
	}

	return row.SelectedTeamID.String, row.SelectedTeamID.Valid && row.SelectedTeamID.String != "", nil
}

func (r *GameStateRepository) SetSelectedTeam(ctx context.Context, teamID string) error {
	query, args, err := qb.Update("game_state").
		Set("selected_team_id", nullString(teamID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", gameStateRowID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update game state query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update game state team: %w", err)
	}

	return nil
}

func (r *GameStateRepository) load(ctx context.Context) (gameStateTableModel, error) {
	query, args, err := qb.Select("*").From("game_state").
		Where(qb.Eq("id", gameStateRowID)).
		ToSQL()
	if err != nil {
		return gameStateTableModel{}, fmt.Errorf("build select game state query: %w", err)
	}

	var row gameStateTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return gameStateTableModel{}, fmt.Errorf("select game state: %w", err)
	}

	return row, nil
}
