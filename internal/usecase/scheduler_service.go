package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/catalog"
	"github.com/riskibarqy/franchise-manager/internal/domain/gamestate"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
)

const (
	// matchSquadMinimum is the healthy-player floor for scheduling a match.
	matchSquadMinimum = 11
	// matchBudgetMinimum is the fixed budget floor for scheduling a match.
	matchBudgetMinimum = 5000
)

// SchedulerService validates and creates scheduled activities against
// roster constraints.
type SchedulerService struct {
	state      gamestate.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	actRepo    activity.Repository
	templates  *catalog.Catalog
	ids        idgen.Generator
	logger     *slog.Logger
}

func NewSchedulerService(
	state gamestate.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	actRepo activity.Repository,
	templates *catalog.Catalog,
	ids idgen.Generator,
	logger *slog.Logger,
) *SchedulerService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SchedulerService{
		state:      state,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		actRepo:    actRepo,
		templates:  templates,
		ids:        ids,
		logger:     logger,
	}
}

// ScheduleMatchInput carries the caller-described match fixture.
type ScheduleMatchInput struct {
	Name      string
	Duration  int
	StartTime time.Time
	PlayerIDs []string
}

// ScheduleMatch binds a match to the managed team. It requires at
// least eleven healthy players and the fixed match budget floor; squad
// size and budget are checked in that order.
func (s *SchedulerService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (activity.Activity, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return activity.Activity{}, err
	}

	healthy, err := s.playerRepo.ListHealthyByTeam(ctx, current.ID)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("list healthy players: %w", err)
	}
	if len(healthy) < matchSquadMinimum {
		return activity.Activity{}, fmt.Errorf("%w: not enough healthy players for a match", ErrInsufficientResource)
	}

	if current.Budget < matchBudgetMinimum {
		return activity.Activity{}, fmt.Errorf("%w: insufficient budget for match", ErrInsufficientResource)
	}

	activityID, err := s.ids.NewID()
	if err != nil {
		return activity.Activity{}, fmt.Errorf("generate activity id: %w", err)
	}

	item := activity.Activity{
		ID:        activityID,
		TeamID:    current.ID,
		Name:      input.Name,
		Type:      activity.TypeMatch,
		Duration:  input.Duration,
		StartTime: input.StartTime,
		PlayerIDs: append([]string(nil), input.PlayerIDs...),
	}
	if err := item.Validate(); err != nil {
		return activity.Activity{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.actRepo.Create(ctx, item); err != nil {
		return activity.Activity{}, fmt.Errorf("create match activity: %w", err)
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"activity_id", item.ID,
		"team_id", current.ID,
		"start_time", item.StartTime,
	)

	return item, nil
}

// ScheduleTraining instantiates a catalog template as a scheduled
// training session. The template's money requirement is deducted from
// the team budget immediately, at scheduling time.
func (s *SchedulerService) ScheduleTraining(ctx context.Context, templateID string, startTime time.Time, playerIDs []string) (activity.Activity, error) {
	tpl, ok := s.templates.Get(templateID)
	if !ok {
		return activity.Activity{}, fmt.Errorf("%w: training template=%s", ErrNotFound, templateID)
	}

	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return activity.Activity{}, err
	}

	if current.Budget < tpl.Requirements.Money {
		return activity.Activity{}, fmt.Errorf("%w: insufficient budget, need %d", ErrInsufficientResource, tpl.Requirements.Money)
	}
	if current.StaffCount < tpl.Requirements.Staff {
		return activity.Activity{}, fmt.Errorf("%w: insufficient staff, need %d", ErrInsufficientResource, tpl.Requirements.Staff)
	}

	activityID, err := s.ids.NewID()
	if err != nil {
		return activity.Activity{}, fmt.Errorf("generate activity id: %w", err)
	}

	item := activity.Activity{
		ID:          activityID,
		TeamID:      current.ID,
		TemplateID:  tpl.ID,
		Name:        tpl.Name,
		Description: fmt.Sprintf("Success Chance: %d%%", tpl.SuccessChance),
		Type:        activity.TypeTraining,
		Duration:    tpl.Duration,
		StartTime:   startTime,
		PlayerIDs:   append([]string(nil), playerIDs...),
	}
	if err := item.Validate(); err != nil {
		return activity.Activity{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current.Budget -= tpl.Requirements.Money
	if err := s.teamRepo.Update(ctx, current); err != nil {
		return activity.Activity{}, fmt.Errorf("deduct training cost: %w", err)
	}
	if err := s.actRepo.Create(ctx, item); err != nil {
		return activity.Activity{}, fmt.Errorf("create training activity: %w", err)
	}

	s.logger.InfoContext(ctx, "training scheduled",
		"activity_id", item.ID,
		"template_id", tpl.ID,
		"team_id", current.ID,
		"cost", tpl.Requirements.Money,
	)

	return item, nil
}

// AvailableTrainings lists the catalog templates.
func (s *SchedulerService) AvailableTrainings() []catalog.Template {
	return s.templates.List()
}
