package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	qb "github.com/riskibarqy/franchise-manager/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	skills, err := sonic.Marshal(item.Skills)
	if err != nil {
		return fmt.Errorf("marshal player skills: %w", err)
	}

	query, args, err := qb.InsertInto("players").
		Columns("id", "team_id", "name", "position", "performance", "condition", "status",
			"contract_start", "contract_end", "weekly_salary", "transfer_value", "skills").
		Values(item.ID, item.TeamID, item.Name, string(item.Position), int(item.Performance),
			string(item.Condition), string(item.Status), item.ContractStart, item.ContractEnd,
			item.WeeklySalary, item.TransferValue, skills).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	item, err := mapPlayer(row)
	if err != nil {
		return player.Player{}, false, err
	}

	return item, true, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	skills, err := sonic.Marshal(item.Skills)
	if err != nil {
		return fmt.Errorf("marshal player skills: %w", err)
	}

	query, args, err := qb.Update("players").
		Set("team_id", item.TeamID).
		Set("name", item.Name).
		Set("position", string(item.Position)).
		Set("performance", int(item.Performance)).
		Set("condition", string(item.Condition)).
		Set("status", string(item.Status)).
		Set("contract_start", item.ContractStart).
		Set("contract_end", item.ContractEnd).
		Set("weekly_salary", item.WeeklySalary).
		Set("transfer_value", item.TransferValue).
		Set("skills", skills).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.selectPlayers(ctx)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return r.selectPlayers(ctx, qb.Eq("team_id", teamID))
}

func (r *PlayerRepository) ListHealthyByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return r.selectPlayers(ctx,
		qb.Eq("team_id", teamID),
		qb.Eq("condition", string(player.ConditionHealthy)),
	)
}

func (r *PlayerRepository) ListContractsExpiringBefore(ctx context.Context, cutoff time.Time) ([]player.Player, error) {
	return r.selectPlayers(ctx, qb.Lt("contract_end", cutoff))
}

func (r *PlayerRepository) ListTransferListed(ctx context.Context, excludeTeamID string) ([]player.Player, error) {
	return r.selectPlayers(ctx,
		qb.Eq("status", string(player.StatusTransferListed)),
		qb.Neq("team_id", excludeTeamID),
	)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, conditions ...qb.Condition) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		item, err := mapPlayer(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func mapPlayer(row playerTableModel) (player.Player, error) {
	var skills []player.Skill
	if len(row.Skills) > 0 {
		if err := sonic.Unmarshal(row.Skills, &skills); err != nil {
			return player.Player{}, fmt.Errorf("unmarshal player skills: %w", err)
		}
	}

	return player.Player{
		ID:            row.ID,
		TeamID:        row.TeamID,
		Name:          row.Name,
		Position:      player.Position(row.Position),
		Performance:   player.Performance(row.Performance),
		Condition:     player.Condition(row.Condition),
		Status:        player.Status(row.Status),
		ContractStart: row.ContractStart,
		ContractEnd:   row.ContractEnd,
		WeeklySalary:  row.WeeklySalary,
		TransferValue: row.TransferValue,
		Skills:        skills,
	}, nil
}
