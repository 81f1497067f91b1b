package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/gamestate"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
)

// SeasonSummary is a read-only projection of the managed team's
// current season.
type SeasonSummary struct {
	DaysRemaining  int
	StartingBudget int64
	CurrentBudget  int64
	TotalPlayers   int
	HealthyPlayers int
	TopPerformers  int
	Wins           int
	Draws          int
	Losses         int
	EndDate        time.Time
}

func (s SeasonSummary) TotalMatches() int {
	return s.Wins + s.Draws + s.Losses
}

// Victory reports the campaign-won reading of the summary: season
// played out with a solvent budget and at least one top performer.
func (s SeasonSummary) Victory() bool {
	return s.DaysRemaining <= 0 && s.CurrentBudget > 0 && s.TopPerformers > 0
}

// SeasonService owns the season lifecycle state machine.
type SeasonService struct {
	state      gamestate.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	seasonRepo season.Repository
	ids        idgen.Generator
	logger     *slog.Logger
}

func NewSeasonService(
	state gamestate.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	seasonRepo season.Repository,
	ids idgen.Generator,
	logger *slog.Logger,
) *SeasonService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SeasonService{
		state:      state,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		seasonRepo: seasonRepo,
		ids:        ids,
		logger:     logger,
	}
}

// StartNewSeason opens a one-year season for the managed team,
// snapshotting the starting budget. A team runs one season at a time.
func (s *SeasonService) StartNewSeason(ctx context.Context) (season.Season, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return season.Season{}, err
	}

	existing, exists, err := s.seasonRepo.CurrentByTeam(ctx, current.ID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get current season: %w", err)
	}
	if exists && !existing.Terminal() {
		return season.Season{}, fmt.Errorf("%w: season already active for team %s", ErrInvalidOperation, current.ID)
	}

	now, err := s.state.CurrentDate(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get current date: %w", err)
	}

	seasonID, err := s.ids.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	item := season.Season{
		ID:             seasonID,
		TeamID:         current.ID,
		StartDate:      now,
		EndDate:        now.AddDate(1, 0, 0),
		Status:         season.StatusActive,
		StartingBudget: current.Budget,
		EndingBudget:   current.Budget,
	}
	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	s.logger.InfoContext(ctx, "season started",
		"season_id", item.ID,
		"team_id", current.ID,
		"end_date", item.EndDate,
	)

	return item, nil
}

// CheckGameOver evaluates the terminal conditions for the managed
// team's season: calendar exhausted, no player above Critical, or a
// non-positive budget. On any trigger the season is finalized as
// Completed (victory requires all three favorable conditions) or
// Failed, with the ending budget recorded. Without a season it
// reports false.
func (s *SeasonService) CheckGameOver(ctx context.Context) (bool, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return false, err
	}

	item, exists, err := s.seasonRepo.CurrentByTeam(ctx, current.ID)
	if err != nil {
		return false, fmt.Errorf("get current season: %w", err)
	}
	if !exists {
		return false, nil
	}

	now, err := s.state.CurrentDate(ctx)
	if err != nil {
		return false, fmt.Errorf("get current date: %w", err)
	}

	squad, err := s.playerRepo.ListByTeam(ctx, current.ID)
	if err != nil {
		return false, fmt.Errorf("list team players: %w", err)
	}

	seasonComplete := !now.Before(item.EndDate)
	hasValidPlayers := false
	for _, p := range squad {
		if p.Performance > player.PerformanceCritical {
			hasValidPlayers = true
			break
		}
	}
	solvent := current.Budget > 0

	if !seasonComplete && hasValidPlayers && solvent {
		return false, nil
	}

	victory := seasonComplete && hasValidPlayers && solvent
	if victory {
		item.Status = season.StatusCompleted
	} else {
		item.Status = season.StatusFailed
	}
	item.EndingBudget = current.Budget

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return false, fmt.Errorf("finalize season: %w", err)
	}

	s.logger.InfoContext(ctx, "season finished",
		"season_id", item.ID,
		"status", string(item.Status),
		"ending_budget", item.EndingBudget,
	)

	return true, nil
}

// GetSeasonSummary projects the managed team's current season.
func (s *SeasonService) GetSeasonSummary(ctx context.Context) (SeasonSummary, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return SeasonSummary{}, err
	}

	item, exists, err := s.seasonRepo.CurrentByTeam(ctx, current.ID)
	if err != nil {
		return SeasonSummary{}, fmt.Errorf("get current season: %w", err)
	}
	if !exists {
		return SeasonSummary{}, ErrNoActiveSeason
	}

	now, err := s.state.CurrentDate(ctx)
	if err != nil {
		return SeasonSummary{}, fmt.Errorf("get current date: %w", err)
	}

	squad, err := s.playerRepo.ListByTeam(ctx, current.ID)
	if err != nil {
		return SeasonSummary{}, fmt.Errorf("list team players: %w", err)
	}

	healthy := 0
	top := 0
	for _, p := range squad {
		if p.Condition == player.ConditionHealthy {
			healthy++
		}
		if p.Performance == player.PerformanceHigh {
			top++
		}
	}

	return SeasonSummary{
		DaysRemaining:  int(item.EndDate.Sub(now).Hours() / 24),
		StartingBudget: item.StartingBudget,
		CurrentBudget:  current.Budget,
		TotalPlayers:   len(squad),
		HealthyPlayers: healthy,
		TopPerformers:  top,
		Wins:           item.Wins,
		Draws:          item.Draws,
		Losses:         item.Losses,
		EndDate:        item.EndDate,
	}, nil
}

// RecordMatchOutcome folds one resolved match into the season's
// counters. Fails when the team has no season yet.
func (s *SeasonService) RecordMatchOutcome(ctx context.Context, teamID string, result activity.Result) error {
	item, exists, err := s.seasonRepo.CurrentByTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get current season: %w", err)
	}
	if !exists {
		return ErrNoActiveSeason
	}

	item.TotalMatches++
	switch result {
	case activity.ResultWin:
		item.Wins++
	case activity.ResultDraw:
		item.Draws++
	case activity.ResultLoss:
		item.Losses++
	}

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("update season counters: %w", err)
	}

	return nil
}
