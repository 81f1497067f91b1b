package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/gamestate"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
)

// contractWarningMonths is the expiring-contract lookahead window.
const contractWarningMonths = 6

// TeamStatistics aggregates a team's resolved matches.
type TeamStatistics struct {
	Wins          int
	Draws         int
	Losses        int
	GoalsScored   int
	GoalsConceded int
}

// RosterService manages teams and their squads outside of the
// simulation loop.
type RosterService struct {
	state        gamestate.Repository
	teamRepo     team.Repository
	playerRepo   player.Repository
	activityRepo activity.Repository
	ids          idgen.Generator
	logger       *slog.Logger
}

func NewRosterService(
	state gamestate.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	activityRepo activity.Repository,
	ids idgen.Generator,
	logger *slog.Logger,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}

	return &RosterService{
		state:        state,
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		activityRepo: activityRepo,
		ids:          ids,
		logger:       logger,
	}
}

// selectedTeam loads the manager's currently selected team. Shared by
// every service that operates "as" a team.
func selectedTeam(ctx context.Context, state gamestate.Repository, teams team.Repository) (team.Team, error) {
	teamID, ok, err := state.SelectedTeamID(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("get selected team id: %w", err)
	}
	if !ok {
		return team.Team{}, ErrNoTeamSelected
	}

	item, exists, err := teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// CreateTeam creates a club and selects it as the managed team.
func (s *RosterService) CreateTeam(ctx context.Context, name string, initialBudget int64, staffCount int) (team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name cannot be empty", ErrInvalidInput)
	}
	if initialBudget < 0 {
		return team.Team{}, fmt.Errorf("%w: initial budget cannot be negative", ErrInvalidInput)
	}
	if staffCount < 1 {
		return team.Team{}, fmt.Errorf("%w: staff count must be at least 1", ErrInvalidInput)
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:         teamID,
		Name:       name,
		Budget:     initialBudget,
		StaffCount: staffCount,
	}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	if err := s.state.SetSelectedTeam(ctx, teamID); err != nil {
		return team.Team{}, fmt.Errorf("select created team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", teamID, "name", name)

	return item, nil
}

// SelectTeam switches the managed team.
func (s *RosterService) SelectTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if err := s.state.SetSelectedTeam(ctx, teamID); err != nil {
		return fmt.Errorf("set selected team: %w", err)
	}

	return nil
}

// CurrentTeam returns the managed team.
func (s *RosterService) CurrentTeam(ctx context.Context) (team.Team, error) {
	return selectedTeam(ctx, s.state, s.teamRepo)
}

// CurrentDate returns the engine's simulation date.
func (s *RosterService) CurrentDate(ctx context.Context) (time.Time, error) {
	return s.state.CurrentDate(ctx)
}

// SetCurrentDate overrides the simulation date.
func (s *RosterService) SetCurrentDate(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return s.state.SetCurrentDate(ctx, date)
}

// UpdateTeamBudget replaces a team's budget.
func (s *RosterService) UpdateTeamBudget(ctx context.Context, teamID string, newBudget int64) error {
	if newBudget < 1 {
		return fmt.Errorf("%w: budget cannot be less than one", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	item.Budget = newBudget
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("update team budget: %w", err)
	}

	return nil
}

// AddPlayer signs a player to the managed team. Missing contract
// fields default to a one-year term from the current date.
func (s *RosterService) AddPlayer(ctx context.Context, item player.Player) (player.Player, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return player.Player{}, err
	}

	now, err := s.state.CurrentDate(ctx)
	if err != nil {
		return player.Player{}, fmt.Errorf("get current date: %w", err)
	}

	if item.ID == "" {
		playerID, err := s.ids.NewID()
		if err != nil {
			return player.Player{}, fmt.Errorf("generate player id: %w", err)
		}
		item.ID = playerID
	}
	item.TeamID = current.ID
	if item.ContractStart.IsZero() {
		item.ContractStart = now
	}
	if item.ContractEnd.IsZero() {
		item.ContractEnd = item.ContractStart.AddDate(1, 0, 0)
	}
	if item.Condition == "" {
		item.Condition = player.ConditionHealthy
	}
	if item.Status == "" {
		item.Status = player.StatusAvailable
	}

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

// UpdatePlayerStatus sets a player's roster/market status.
func (s *RosterService) UpdatePlayerStatus(ctx context.Context, playerID string, status player.Status) error {
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	item.Status = status
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("update player status: %w", err)
	}

	return nil
}

func (s *RosterService) AllTeams(ctx context.Context) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *RosterService) AllPlayers(ctx context.Context) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

// TopPerformers returns the count highest-rated players by mean skill.
func (s *RosterService) TopPerformers(ctx context.Context, count int) ([]player.Player, error) {
	if count <= 0 {
		count = 5
	}

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MeanSkill() > items[j].MeanSkill()
	})
	if len(items) > count {
		items = items[:count]
	}

	return items, nil
}

// PlayersByPerformance filters the full player pool by tier.
func (s *RosterService) PlayersByPerformance(ctx context.Context, tier player.Performance) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.Performance == tier {
			out = append(out, item)
		}
	}

	return out, nil
}

// PlayersWithExpiringContracts lists the managed team's players whose
// contracts end within the warning window.
func (s *RosterService) PlayersWithExpiringContracts(ctx context.Context) ([]player.Player, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return nil, err
	}

	now, err := s.state.CurrentDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("get current date: %w", err)
	}

	cutoff := now.AddDate(0, contractWarningMonths, 0)
	items, err := s.playerRepo.ListContractsExpiringBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expiring contracts: %w", err)
	}

	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		if item.TeamID == current.ID {
			out = append(out, item)
		}
	}

	return out, nil
}

// ActivitiesForDate lists the managed team's activities on a calendar
// day, resolved or not.
func (s *RosterService) ActivitiesForDate(ctx context.Context, date time.Time) ([]activity.Activity, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return nil, err
	}

	items, err := s.activityRepo.ListByTeamOnDate(ctx, current.ID, date)
	if err != nil {
		return nil, fmt.Errorf("list activities on date: %w", err)
	}

	return items, nil
}

// TeamStatistics aggregates the managed team's resolved matches.
func (s *RosterService) TeamStatistics(ctx context.Context) (TeamStatistics, error) {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return TeamStatistics{}, err
	}

	items, err := s.activityRepo.ListByTeam(ctx, current.ID)
	if err != nil {
		return TeamStatistics{}, fmt.Errorf("list team activities: %w", err)
	}

	var stats TeamStatistics
	for _, item := range items {
		if item.Type != activity.TypeMatch || !item.Resolved() {
			continue
		}
		switch *item.Result {
		case activity.ResultWin:
			stats.Wins++
		case activity.ResultDraw:
			stats.Draws++
		case activity.ResultLoss:
			stats.Losses++
		}
		if item.GoalsScored != nil {
			stats.GoalsScored += *item.GoalsScored
		}
		if item.GoalsConceded != nil {
			stats.GoalsConceded += *item.GoalsConceded
		}
	}

	return stats, nil
}
