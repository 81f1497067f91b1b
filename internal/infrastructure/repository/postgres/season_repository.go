package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	qb "github.com/riskibarqy/franchise-manager/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	query, args, err := qb.InsertInto("seasons").
		Columns("id", "team_id", "start_date", "end_date", "status", "total_matches",
			"wins", "draws", "losses", "starting_budget", "ending_budget").
		Values(item.ID, item.TeamID, item.StartDate, item.EndDate, string(item.Status),
			item.TotalMatches, item.Wins, item.Draws, item.Losses,
			item.StartingBudget, item.EndingBudget).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert season: %w", err)
	}

	return nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	query, args, err := qb.Update("seasons").
		Set("end_date", item.EndDate).
		Set("status", string(item.Status)).
		Set("total_matches", item.TotalMatches).
		Set("wins", item.Wins).
		Set("draws", item.Draws).
		Set("losses", item.Losses).
		Set("starting_budget", item.StartingBudget).
		Set("ending_budget", item.EndingBudget).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update season query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update season: %w", err)
	}

	return nil
}

func (r *SeasonRepository) CurrentByTeam(ctx context.Context, teamID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("created_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season: %w", err)
	}

	return mapSeason(row), true, nil
}

func mapSeason(row seasonTableModel) season.Season {
	return season.Season{
		ID:             row.ID,
		TeamID:         row.TeamID,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		Status:         season.Status(row.Status),
		TotalMatches:   row.TotalMatches,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		StartingBudget: row.StartingBudget,
		EndingBudget:   row.EndingBudget,
	}
}
