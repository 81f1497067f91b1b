package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
)

func newRosterService(t *testing.T, w *world, actRepo *memory.ActivityRepository) *RosterService {
	t.Helper()
	if actRepo == nil {
		actRepo = memory.NewActivityRepository(nil)
	}
	return NewRosterService(w.state, w.teamRepo, w.playerRepo, actRepo, idgen.NewSequence("roster"), testLogger())
}

func TestRosterService_CreateTeamSelectsIt(t *testing.T) {
	state := memory.NewGameStateRepository(testStartDate())
	teamRepo := memory.NewTeamRepository(nil)
	playerRepo := memory.NewPlayerRepository(nil)
	service := NewRosterService(state, teamRepo, playerRepo, memory.NewActivityRepository(nil), idgen.NewSequence("roster"), testLogger())

	created, err := service.CreateTeam(t.Context(), "Garamvari Ultras", 100000, 6)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	current, err := service.CurrentTeam(t.Context())
	if err != nil {
		t.Fatalf("current team: %v", err)
	}
	if current.ID != created.ID {
		t.Fatalf("expected created team selected, got %s vs %s", current.ID, created.ID)
	}
}

func TestRosterService_CreateTeamValidation(t *testing.T) {
	state := memory.NewGameStateRepository(testStartDate())
	service := NewRosterService(state, memory.NewTeamRepository(nil), memory.NewPlayerRepository(nil), memory.NewActivityRepository(nil), idgen.NewSequence("roster"), testLogger())

	cases := []struct {
		name   string
		team   string
		budget int64
		staff  int
	}{
		{"empty name", "  ", 1000, 3},
		{"negative budget", "Club", -1, 3},
		{"no staff", "Club", 1000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateTeam(t.Context(), tc.team, tc.budget, tc.staff); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected invalid-input, got %v", err)
			}
		})
	}
}

func TestRosterService_OperationsRequireSelectedTeam(t *testing.T) {
	state := memory.NewGameStateRepository(testStartDate())
	service := NewRosterService(state, memory.NewTeamRepository(nil), memory.NewPlayerRepository(nil), memory.NewActivityRepository(nil), idgen.NewSequence("roster"), testLogger())

	if _, err := service.CurrentTeam(t.Context()); !errors.Is(err, ErrNoTeamSelected) {
		t.Fatalf("expected no-team-selected, got %v", err)
	}
}

func TestRosterService_AddPlayerDefaults(t *testing.T) {
	w := newWorld(t, 100000, 5, nil)
	service := newRosterService(t, w, nil)

	created, err := service.AddPlayer(t.Context(), player.Player{
		Name:         "Bence Szabo",
		Position:     player.PositionMidfielder,
		WeeklySalary: 900,
	})
	if err != nil {
		t.Fatalf("add player: %v", err)
	}

	if created.TeamID != "team-home" {
		t.Fatalf("expected player bound to selected team, got %s", created.TeamID)
	}
	if created.Condition != player.ConditionHealthy || created.Status != player.StatusAvailable {
		t.Fatalf("unexpected defaults: %+v", created)
	}
	if !created.ContractStart.Equal(testStartDate()) {
		t.Fatalf("expected contract from the current date, got %v", created.ContractStart)
	}
	if want := testStartDate().AddDate(1, 0, 0); !created.ContractEnd.Equal(want) {
		t.Fatalf("expected one-year default term, got %v", created.ContractEnd)
	}
}

func TestRosterService_UpdateTeamBudget(t *testing.T) {
	w := newWorld(t, 100000, 5, nil)
	service := newRosterService(t, w, nil)

	if err := service.UpdateTeamBudget(t.Context(), "team-home", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid-input for budget below 1, got %v", err)
	}

	if err := service.UpdateTeamBudget(t.Context(), "team-home", 42000); err != nil {
		t.Fatalf("update budget: %v", err)
	}
	home, _, _ := w.teamRepo.GetByID(t.Context(), "team-home")
	if home.Budget != 42000 {
		t.Fatalf("expected budget 42000, got %d", home.Budget)
	}
}

func TestRosterService_TopPerformers(t *testing.T) {
	squad := healthySquad("team-home", 3)
	squad[0].Skills = []player.Skill{{Name: "passing", Value: 40}}
	squad[1].Skills = []player.Skill{{Name: "passing", Value: 90}}
	squad[2].Skills = []player.Skill{{Name: "passing", Value: 70}}
	w := newWorld(t, 100000, 5, squad)
	service := newRosterService(t, w, nil)

	top, err := service.TopPerformers(t.Context(), 2)
	if err != nil {
		t.Fatalf("top performers: %v", err)
	}
	if len(top) != 2 || top[0].ID != "player-01" || top[1].ID != "player-02" {
		t.Fatalf("unexpected ranking: %+v", top)
	}
}

func TestRosterService_PlayersByPerformance(t *testing.T) {
	squad := healthySquad("team-home", 3)
	squad[1].Performance = player.PerformanceCritical
	w := newWorld(t, 100000, 5, squad)
	service := newRosterService(t, w, nil)

	critical, err := service.PlayersByPerformance(t.Context(), player.PerformanceCritical)
	if err != nil {
		t.Fatalf("players by performance: %v", err)
	}
	if len(critical) != 1 || critical[0].ID != "player-01" {
		t.Fatalf("unexpected filter result: %+v", critical)
	}
}

func TestRosterService_PlayersWithExpiringContracts(t *testing.T) {
	squad := healthySquad("team-home", 2)
	squad[0].ContractEnd = testStartDate().AddDate(0, 2, 0)
	squad[1].ContractEnd = testStartDate().AddDate(2, 0, 0)
	w := newWorld(t, 100000, 5, squad)
	service := newRosterService(t, w, nil)

	expiring, err := service.PlayersWithExpiringContracts(t.Context())
	if err != nil {
		t.Fatalf("expiring contracts: %v", err)
	}
	if len(expiring) != 1 || expiring[0].ID != "player-00" {
		t.Fatalf("expected only the two-month contract, got %+v", expiring)
	}
}

func TestRosterService_TeamStatistics(t *testing.T) {
	win := activity.ResultWin
	loss := activity.ResultLoss
	three, one, zero, two := 3, 1, 0, 2
	activities := []activity.Activity{
		{ID: "m1", TeamID: "team-home", Name: "Fixture 1", Type: activity.TypeMatch, StartTime: testStartDate(), Result: &win, GoalsScored: &three, GoalsConceded: &one},
		{ID: "m2", TeamID: "team-home", Name: "Fixture 2", Type: activity.TypeMatch, StartTime: testStartDate().AddDate(0, 0, 7), Result: &loss, GoalsScored: &zero, GoalsConceded: &two},
		{ID: "m3", TeamID: "team-home", Name: "Fixture 3", Type: activity.TypeMatch, StartTime: testStartDate().AddDate(0, 0, 14)},
		{ID: "t1", TeamID: "team-home", Name: "Session", Type: activity.TypeTraining, StartTime: testStartDate(), Result: &win},
	}
	w := newWorld(t, 100000, 5, nil)
	service := newRosterService(t, w, memory.NewActivityRepository(activities))

	stats, err := service.TeamStatistics(t.Context())
	if err != nil {
		t.Fatalf("team statistics: %v", err)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 0 {
		t.Fatalf("unexpected results: %+v", stats)
	}
	if stats.GoalsScored != 3 || stats.GoalsConceded != 3 {
		t.Fatalf("unexpected goal totals: %+v", stats)
	}
}

func TestRosterService_ActivitiesForDate(t *testing.T) {
	activities := []activity.Activity{
		{ID: "m1", TeamID: "team-home", Name: "Fixture", Type: activity.TypeMatch, StartTime: testStartDate()},
		{ID: "m2", TeamID: "team-home", Name: "Later Fixture", Type: activity.TypeMatch, StartTime: testStartDate().AddDate(0, 0, 7)},
	}
	w := newWorld(t, 100000, 5, nil)
	service := newRosterService(t, w, memory.NewActivityRepository(activities))

	items, err := service.ActivitiesForDate(t.Context(), testStartDate())
	if err != nil {
		t.Fatalf("activities for date: %v", err)
	}
	if len(items) != 1 || items[0].ID != "m1" {
		t.Fatalf("expected only the same-day fixture, got %+v", items)
	}
}
