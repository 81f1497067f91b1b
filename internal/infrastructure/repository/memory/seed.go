package memory

import (
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/catalog"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
)

const (
	TeamIDGaramvariUltras = "hun-garamvari-ultras"
	TeamIDDunaharaszti    = "hun-dunaharaszti-fc"
)

// SeedStartDate anchors seeded contracts relative to the opening
// simulation date.
var SeedStartDate = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDGaramvariUltras, Name: "Garamvari Ultras", Budget: 250000, StaffCount: 8},
		{ID: TeamIDDunaharaszti, Name: "Dunaharaszti FC", Budget: 180000, StaffCount: 5},
	}
}

func SeedPlayers() []player.Player {
	contractEnd := SeedStartDate.AddDate(1, 0, 0)
	newPlayer := func(id, teamID, name string, pos player.Position, salary int64, skills ...player.Skill) player.Player {
		return player.Player{
			ID:            id,
			TeamID:        teamID,
			Name:          name,
			Position:      pos,
			Performance:   player.PerformanceMedium,
			Condition:     player.ConditionHealthy,
			Status:        player.StatusAvailable,
			ContractStart: SeedStartDate,
			ContractEnd:   contractEnd,
			WeeklySalary:  salary,
			TransferValue: salary * 40,
			Skills:        skills,
		}
	}

	return []player.Player{
		newPlayer("gu-gk-01", TeamIDGaramvariUltras, "Balazs Toth", player.PositionGoalkeeper, 1200,
			player.Skill{Name: "reflexes", Value: 74}, player.Skill{Name: "positioning", Value: 68}),
		newPlayer("gu-def-01", TeamIDGaramvariUltras, "Marton Kiss", player.PositionDefender, 1100,
			player.Skill{Name: "tackling", Value: 71}, player.Skill{Name: "strength", Value: 77}),
		newPlayer("gu-def-02", TeamIDGaramvariUltras, "Peter Nagy", player.PositionDefender, 1000,
			player.Skill{Name: "tackling", Value: 66}, player.Skill{Name: "heading", Value: 70}),
		newPlayer("gu-def-03", TeamIDGaramvariUltras, "Adam Horvath", player.PositionDefender, 950,
			player.Skill{Name: "tackling", Value: 63}, player.Skill{Name: "strength", Value: 69}),
		newPlayer("gu-def-04", TeamIDGaramvariUltras, "Gergo Varga", player.PositionDefender, 900,
			player.Skill{Name: "tackling", Value: 61}, player.Skill{Name: "positioning", Value: 64}),
		newPlayer("gu-mid-01", TeamIDGaramvariUltras, "Bence Szabo", player.PositionMidfielder, 1400,
			player.Skill{Name: "passing", Value: 79}, player.Skill{Name: "stamina", Value: 75}),
		newPlayer("gu-mid-02", TeamIDGaramvariUltras, "Daniel Farkas", player.PositionMidfielder, 1300,
			player.Skill{Name: "passing", Value: 73}, player.Skill{Name: "dribbling", Value: 70}),
		newPlayer("gu-mid-03", TeamIDGaramvariUltras, "Levente Molnar", player.PositionMidfielder, 1250,
			player.Skill{Name: "passing", Value: 70}, player.Skill{Name: "stamina", Value: 72}),
		newPlayer("gu-mid-04", TeamIDGaramvariUltras, "Zoltan Papp", player.PositionMidfielder, 1150,
			player.Skill{Name: "passing", Value: 67}, player.Skill{Name: "dribbling", Value: 66}),
		newPlayer("gu-fwd-01", TeamIDGaramvariUltras, "Krisztian Balogh", player.PositionForward, 1600,
			player.Skill{Name: "finishing", Value: 81}, player.Skill{Name: "pace", Value: 78}),
		newPlayer("gu-fwd-02", TeamIDGaramvariUltras, "Attila Lukacs", player.PositionForward, 1500,
			player.Skill{Name: "finishing", Value: 76}, player.Skill{Name: "pace", Value: 74}),
		newPlayer("gu-fwd-03", TeamIDGaramvariUltras, "Tamas Olah", player.PositionForward, 1350,
			player.Skill{Name: "finishing", Value: 72}, player.Skill{Name: "heading", Value: 68}),
		newPlayer("dh-gk-01", TeamIDDunaharaszti, "Istvan Fekete", player.PositionGoalkeeper, 1100,
			player.Skill{Name: "reflexes", Value: 70}, player.Skill{Name: "positioning", Value: 65}),
		newPlayer("dh-def-01", TeamIDDunaharaszti, "Gabor Simon", player.PositionDefender, 1000,
			player.Skill{Name: "tackling", Value: 68}, player.Skill{Name: "strength", Value: 71}),
		newPlayer("dh-mid-01", TeamIDDunaharaszti, "Norbert Takacs", player.PositionMidfielder, 1250,
			player.Skill{Name: "passing", Value: 72}, player.Skill{Name: "stamina", Value: 70}),
		newPlayer("dh-fwd-01", TeamIDDunaharaszti, "Laszlo Juhasz", player.PositionForward, 1500,
			player.Skill{Name: "finishing", Value: 77}, player.Skill{Name: "pace", Value: 75}),
	}
}

func SeedTemplates() []catalog.Template {
	return []catalog.Template{
		{
			ID:            "tpl-endurance",
			Name:          "Endurance Camp",
			Duration:      3,
			SuccessChance: 70,
			Impacts:       map[string]int{"stamina": 3, "strength": 2, catalog.InjuryChanceKey: 10},
			Requirements:  catalog.Requirements{Money: 2000, Staff: 2},
		},
		{
			ID:            "tpl-finishing",
			Name:          "Finishing Drills",
			Duration:      1,
			SuccessChance: 60,
			Impacts:       map[string]int{"finishing": 4, catalog.InjuryChanceKey: 5},
			Requirements:  catalog.Requirements{Money: 1500, Staff: 1},
		},
		{
			ID:            "tpl-possession",
			Name:          "Possession Play",
			Duration:      2,
			SuccessChance: 80,
			Impacts:       map[string]int{"passing": 2, "dribbling": 2},
			Requirements:  catalog.Requirements{Money: 1000, Staff: 2},
		},
	}
}
