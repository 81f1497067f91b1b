package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/report"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/memory"
)

// scriptedSource replays a fixed draw sequence so resolution outcomes
// are exact. Running out of draws fails the test at the call site.
type scriptedSource struct {
	t     *testing.T
	draws []int
	pos   int
}

func newScriptedSource(t *testing.T, draws ...int) *scriptedSource {
	return &scriptedSource{t: t, draws: draws}
}

func (s *scriptedSource) IntN(n int) int {
	s.t.Helper()
	if s.pos >= len(s.draws) {
		s.t.Fatalf("scripted source exhausted after %d draws (next bound %d)", s.pos, n)
	}
	v := s.draws[s.pos]
	s.pos++
	if v >= n {
		s.t.Fatalf("scripted draw %d out of bound %d at position %d", v, n, s.pos-1)
	}
	return v
}

func (s *scriptedSource) remaining() int {
	return len(s.draws) - s.pos
}

// memorySink collects generated reports in order.
type memorySink struct {
	reports []report.ActivityReport
}

func (m *memorySink) Generate(_ context.Context, item report.ActivityReport) error {
	m.reports = append(m.reports, item)
	return nil
}

func (m *memorySink) Load(_ context.Context, name string) (report.ActivityReport, error) {
	for _, item := range m.reports {
		if item.ActivityName == name {
			return item, nil
		}
	}
	return report.ActivityReport{}, io.EOF
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStartDate() time.Time {
	return time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
}

// newWorld builds a selected team with the given budget, staff, and
// players backed by fresh memory repositories.
type world struct {
	state      *memory.GameStateRepository
	teamRepo   *memory.TeamRepository
	playerRepo *memory.PlayerRepository
}

func newWorld(t *testing.T, budget int64, staff int, players []player.Player) *world {
	t.Helper()

	home := team.Team{ID: "team-home", Name: "Garamvari Ultras", Budget: budget, StaffCount: staff}
	w := &world{
		state:      memory.NewGameStateRepository(testStartDate()),
		teamRepo:   memory.NewTeamRepository([]team.Team{home}),
		playerRepo: memory.NewPlayerRepository(players),
	}
	if err := w.state.SetSelectedTeam(t.Context(), home.ID); err != nil {
		t.Fatalf("select team: %v", err)
	}

	return w
}

func healthySquad(teamID string, size int) []player.Player {
	out := make([]player.Player, 0, size)
	for i := 0; i < size; i++ {
		out = append(out, player.Player{
			ID:            idFor(i),
			TeamID:        teamID,
			Name:          "Player " + idFor(i),
			Position:      player.PositionMidfielder,
			Performance:   player.PerformanceMedium,
			Condition:     player.ConditionHealthy,
			Status:        player.StatusAvailable,
			ContractStart: testStartDate(),
			ContractEnd:   testStartDate().AddDate(1, 0, 0),
			WeeklySalary:  700,
			Skills: []player.Skill{
				{Name: "passing", Value: 60},
				{Name: "stamina", Value: 55},
			},
		})
	}

	return out
}

func idFor(i int) string {
	return fmt.Sprintf("player-%02d", i)
}
