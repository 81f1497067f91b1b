package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	qb "github.com/riskibarqy/franchise-manager/internal/platform/querybuilder"
)

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, item activity.Activity) error {
	playerIDs, err := sonic.Marshal(item.PlayerIDs)
	if err != nil {
		return fmt.Errorf("marshal activity player ids: %w", err)
	}

	query, args, err := qb.InsertInto("activities").
		Columns("id", "team_id", "template_id", "name", "description", "type", "duration",
			"start_time", "result", "goals_scored", "goals_conceded", "player_ids").
		Values(item.ID, item.TeamID, nullString(item.TemplateID), item.Name, item.Description,
			string(item.Type), item.Duration, item.StartTime, nullResult(item.Result),
			nullInt(item.GoalsScored), nullInt(item.GoalsConceded), playerIDs).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert activity query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, activityID string) (activity.Activity, bool, error) {
	query, args, err := qb.Select("*").From("activities").
		Where(qb.Eq("id", activityID)).
		ToSQL()
	if err != nil {
		return activity.Activity{}, false, fmt.Errorf("build select activity query: %w", err)
	}

	var row activityTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return activity.Activity{}, false, nil
		}
		return activity.Activity{}, false, fmt.Errorf("select activity: %w", err)
	}

	item, err := mapActivity(row)
	if err != nil {
		return activity.Activity{}, false, err
	}

	return item, true, nil
}

func (r *ActivityRepository) Update(ctx context.Context, item activity.Activity) error {
	playerIDs, err := sonic.Marshal(item.PlayerIDs)
	if err != nil {
		return fmt.Errorf("marshal activity player ids: %w", err)
	}

	query, args, err := qb.Update("activities").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("duration", item.Duration).
		Set("start_time", item.StartTime).
		Set("result", nullResult(item.Result)).
		Set("goals_scored", nullInt(item.GoalsScored)).
		Set("goals_conceded", nullInt(item.GoalsConceded)).
		Set("player_ids", playerIDs).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update activity query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	return nil
}

func (r *ActivityRepository) ListByTeam(ctx context.Context, teamID string) ([]activity.Activity, error) {
	return r.selectActivities(ctx, qb.Eq("team_id", teamID))
}

func (r *ActivityRepository) ListDueByTeam(ctx context.Context, teamID string, day time.Time) ([]activity.Activity, error) {
	start, end := dayBounds(day)
	return r.selectActivities(ctx,
		qb.Eq("team_id", teamID),
		qb.Gte("start_time", start),
		qb.Lt("start_time", end),
		qb.IsNull("result"),
	)
}

func (r *ActivityRepository) ListByTeamOnDate(ctx context.Context, teamID string, day time.Time) ([]activity.Activity, error) {
	start, end := dayBounds(day)
	return r.selectActivities(ctx,
		qb.Eq("team_id", teamID),
		qb.Gte("start_time", start),
		qb.Lt("start_time", end),
	)
}

func (r *ActivityRepository) selectActivities(ctx context.Context, conditions ...qb.Condition) ([]activity.Activity, error) {
	query, args, err := qb.Select("*").From("activities").
		Where(conditions...).
		OrderBy("start_time", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select activities query: %w", err)
	}

	var rows []activityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}

	out := make([]activity.Activity, 0, len(rows))
	for _, row := range rows {
		item, err := mapActivity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func mapActivity(row activityTableModel) (activity.Activity, error) {
	var playerIDs []string
	if len(row.PlayerIDs) > 0 {
		if err := sonic.Unmarshal(row.PlayerIDs, &playerIDs); err != nil {
			return activity.Activity{}, fmt.Errorf("unmarshal activity player ids: %w", err)
		}
	}

	item := activity.Activity{
		ID:          row.ID,
		TeamID:      row.TeamID,
		TemplateID:  row.TemplateID.String,
		Name:        row.Name,
		Description: row.Description,
		Type:        activity.Type(row.Type),
		Duration:    row.Duration,
		StartTime:   row.StartTime,
		PlayerIDs:   playerIDs,
	}
	if row.Result.Valid {
		result := activity.Result(row.Result.String)
		item.Result = &result
	}
	if row.GoalsScored.Valid {
		scored := int(row.GoalsScored.Int64)
		item.GoalsScored = &scored
	}
	if row.GoalsConceded.Valid {
		conceded := int(row.GoalsConceded.Int64)
		item.GoalsConceded = &conceded
	}

	return item, nil
}

func nullResult(r *activity.Result) any {
	if r == nil {
		return nil
	}
	return string(*r)
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
