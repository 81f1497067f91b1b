package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/memory"
)

const sampleDataset = `{
  "teams": [
    {"team_id": 1, "team_name": "Garamvari Ultras", "budget": 250000, "staff_count": 8, "players": [10, 11]},
    {"team_id": 2, "team_name": "Dunaharaszti FC", "budget": 180000, "staff_count": 5, "players": [12]}
  ],
  "players": [
    {"player_id": 10, "name": "Balazs Toth", "position": "kapus", "performance": "magas", "physical_condition": "egészséges", "skills": {"reflexes": 74}},
    {"player_id": 11, "name": "Bence Szabo", "position": "középpályás", "performance": "közepes", "physical_condition": "sérült", "skills": {"passing": 79, "stamina": 75}},
    {"player_id": 12, "name": "Laszlo Juhasz", "position": "forward", "performance": "kritikus", "physical_condition": "healthy", "skills": {"finishing": 77}}
  ],
  "tasks": [
    {
      "task_id": 1,
      "name": "Endurance Camp",
      "duration": 3,
      "successchance": "70%",
      "impact": {"stamina": "3", "injury_chance": "10%"},
      "requirements": {"money": 2000, "staff": 2}
    }
  ]
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	teamRepo := memory.NewTeamRepository(nil)
	playerRepo := memory.NewPlayerRepository(nil)
	loader := NewLoader(teamRepo, playerRepo, nil)

	result, err := loader.Load(t.Context(), writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}

	if len(result.Teams) != 2 || len(result.Players) != 3 || len(result.Templates) != 1 {
		t.Fatalf("unexpected result sizes: %d teams, %d players, %d templates",
			len(result.Teams), len(result.Players), len(result.Templates))
	}

	teams, err := teamRepo.List(t.Context())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected two imported teams, got %d", len(teams))
	}

	keeper, found, err := playerRepo.GetByID(t.Context(), "player-10")
	if err != nil || !found {
		t.Fatalf("expected imported keeper, found=%v err=%v", found, err)
	}
	if keeper.TeamID != "team-1" {
		t.Fatalf("expected keeper on team-1, got %s", keeper.TeamID)
	}
	if keeper.Position != player.PositionGoalkeeper || keeper.Performance != player.PerformanceHigh {
		t.Fatalf("hungarian enums not parsed: %+v", keeper)
	}

	injured, _, _ := playerRepo.GetByID(t.Context(), "player-11")
	if injured.Condition != player.ConditionInjured {
		t.Fatalf("expected injured midfielder, got %v", injured.Condition)
	}
	if len(injured.Skills) != 2 || injured.Skills[0].Name != "passing" {
		t.Fatalf("expected sorted skills, got %+v", injured.Skills)
	}

	striker, _, _ := playerRepo.GetByID(t.Context(), "player-12")
	if striker.Position != player.PositionForward || striker.Performance != player.PerformanceCritical {
		t.Fatalf("english enums not parsed: %+v", striker)
	}

	tpl := result.Templates[0]
	if tpl.ID != "tpl-1" || tpl.SuccessChance != 70 {
		t.Fatalf("unexpected template: %+v", tpl)
	}
	if chance, ok := tpl.InjuryChance(); !ok || chance != 10 {
		t.Fatalf("expected 10%% injury chance, got %d ok=%v", chance, ok)
	}
	if tpl.Requirements.Money != 2000 || tpl.Requirements.Staff != 2 {
		t.Fatalf("unexpected requirements: %+v", tpl.Requirements)
	}
}

func TestLoader_Load_RejectsUnknownPlayerReference(t *testing.T) {
	broken := `{
  "teams": [{"team_id": 1, "team_name": "Club", "budget": 1000, "staff_count": 1, "players": [99]}],
  "players": [],
  "tasks": []
}`
	loader := NewLoader(memory.NewTeamRepository(nil), memory.NewPlayerRepository(nil), nil)

	if _, err := loader.Load(t.Context(), writeDataset(t, broken)); !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("expected ErrMalformedDataset for dangling player reference, got %v", err)
	}
}

func TestLoader_Load_RejectsMalformedChance(t *testing.T) {
	broken := `{
  "teams": [{"team_id": 1, "team_name": "Club", "budget": 1000, "staff_count": 1, "players": []}],
  "players": [],
  "tasks": [{"task_id": 1, "name": "Camp", "duration": 1, "successchance": "often", "impact": {}, "requirements": {}}]
}`
	loader := NewLoader(memory.NewTeamRepository(nil), memory.NewPlayerRepository(nil), nil)

	if _, err := loader.Load(t.Context(), writeDataset(t, broken)); !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("expected ErrMalformedDataset for malformed success chance, got %v", err)
	}
}
