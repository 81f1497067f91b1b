package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/memory"
	seasonmock "github.com/riskibarqy/franchise-manager/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/franchise-manager/internal/mocks/domain/team"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
)

func TestSeasonService_RecordMatchOutcome_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)

	service := NewSeasonService(nil, nil, nil, seasonRepo, idgen.NewSequence("season"), testLogger())
	teamID := "team-home"
	current := season.Season{
		ID:           "season-01",
		TeamID:       teamID,
		Status:       season.StatusActive,
		TotalMatches: 3,
		Wins:         1,
		Draws:        1,
		Losses:       1,
	}

	seasonRepo.
		On("CurrentByTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), teamID).
		Return(current, true, nil).
		Once()
	seasonRepo.
		On("Update", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(v season.Season) bool {
			return v.ID == current.ID && v.TotalMatches == 4 && v.Wins == 2
		})).
		Return(nil).
		Once()

	if err := service.RecordMatchOutcome(ctx, teamID, activity.ResultWin); err != nil {
		t.Fatalf("record match outcome: %v", err)
	}
}

func TestSeasonService_RecordMatchOutcome_NoSeasonUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)

	service := NewSeasonService(nil, nil, nil, seasonRepo, idgen.NewSequence("season"), testLogger())
	teamID := "team-home"

	seasonRepo.
		On("CurrentByTeam", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), teamID).
		Return(season.Season{}, false, nil).
		Once()

	err := service.RecordMatchOutcome(ctx, teamID, activity.ResultDraw)
	if !errors.Is(err, ErrNoActiveSeason) {
		t.Fatalf("expected ErrNoActiveSeason, got %v", err)
	}
}

func TestSeasonService_StartNewSeason_AlreadyActiveUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	teamRepo := teammock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	state := memory.NewGameStateRepository(testStartDate())

	home := team.Team{ID: "team-home", Name: "Garamvari Ultras", Budget: 500_000, StaffCount: 8}
	if err := state.SetSelectedTeam(ctx, home.ID); err != nil {
		t.Fatalf("select team: %v", err)
	}

	service := NewSeasonService(state, teamRepo, nil, seasonRepo, idgen.NewSequence("season"), testLogger())

	teamRepo.
		On("GetByID", mock.Anything, home.ID).
		Return(home, true, nil).
		Once()
	seasonRepo.
		On("CurrentByTeam", mock.Anything, home.ID).
		Return(season.Season{ID: "season-01", TeamID: home.ID, Status: season.StatusActive}, true, nil).
		Once()

	_, err := service.StartNewSeason(ctx)
	if !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("expected ErrInvalidOperation, got %v", err)
	}
}
