package usecase

import (
	"strings"
	"testing"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
)

type simFixture struct {
	w          *world
	actRepo    *memory.ActivityRepository
	seasonRepo *memory.SeasonRepository
	sink       *memorySink
	service    *SimulationService
	seasons    *SeasonService
}

func newSimFixture(t *testing.T, budget int64, players []player.Player, activities []activity.Activity, src *scriptedSource) *simFixture {
	t.Helper()

	w := newWorld(t, budget, 5, players)
	actRepo := memory.NewActivityRepository(activities)
	seasonRepo := memory.NewSeasonRepository()
	sink := &memorySink{}

	seasons := NewSeasonService(w.state, w.teamRepo, w.playerRepo, seasonRepo, idgen.NewSequence("season"), testLogger())
	service := NewSimulationService(
		w.state, w.teamRepo, w.playerRepo, actRepo,
		seasons, testTemplates(), sink, src, testLogger(),
	)

	return &simFixture{w: w, actRepo: actRepo, seasonRepo: seasonRepo, sink: sink, service: service, seasons: seasons}
}

func (f *simFixture) startSeason(t *testing.T) season.Season {
	t.Helper()
	item, err := f.seasons.StartNewSeason(t.Context())
	if err != nil {
		t.Fatalf("start season: %v", err)
	}
	return item
}

func TestSimulationService_DailyEvaluation_NoActivitiesStillSettlesWages(t *testing.T) {
	// Two healthy players at 700 a week, no heal draws, drift misses.
	src := newScriptedSource(t, 50, 50)
	f := newSimFixture(t, 10000, healthySquad("team-home", 2), nil, src)

	if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
		t.Fatalf("daily evaluation: %v", err)
	}

	home, _, _ := f.w.teamRepo.GetByID(t.Context(), "team-home")
	if home.Budget != 9800 {
		t.Fatalf("expected budget 9800 after daily wages, got %d", home.Budget)
	}

	date, err := f.w.state.CurrentDate(t.Context())
	if err != nil {
		t.Fatalf("current date: %v", err)
	}
	if want := testStartDate().AddDate(0, 0, 1); !date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, date)
	}
	if src.remaining() != 0 {
		t.Fatalf("expected all draws consumed, %d left", src.remaining())
	}
}

func TestSimulationService_DailyEvaluation_ResolvesMatchWin(t *testing.T) {
	squad := healthySquad("team-home", 2)
	match := activity.Activity{
		ID:        "act-match",
		TeamID:    "team-home",
		Name:      "League Fixture",
		Type:      activity.TypeMatch,
		StartTime: testStartDate(),
		PlayerIDs: []string{"player-00"},
	}

	// Draw order: result roll (2 = win), goals scored offset (2 -> 3),
	// conceded offset (0 -> scored-1 = 2), injury roll for the one
	// assigned player (90 = safe), then one drift roll per squad player.
	src := newScriptedSource(t, 2, 2, 0, 90, 50, 50)
	f := newSimFixture(t, 10000, squad, []activity.Activity{match}, src)
	f.startSeason(t)

	var perfEvents []PerformanceChangedEvent
	f.service.OnPerformanceChanged(func(e PerformanceChangedEvent) { perfEvents = append(perfEvents, e) })
	var completed []ActivityCompletedEvent
	f.service.OnActivityCompleted(func(e ActivityCompletedEvent) { completed = append(completed, e) })

	if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
		t.Fatalf("daily evaluation: %v", err)
	}

	resolved, _, _ := f.actRepo.GetByID(t.Context(), "act-match")
	if !resolved.Resolved() || *resolved.Result != activity.ResultWin {
		t.Fatalf("expected resolved win, got %+v", resolved.Result)
	}
	if *resolved.GoalsScored != 3 || *resolved.GoalsConceded != 2 {
		t.Fatalf("expected 3-2, got %d-%d", *resolved.GoalsScored, *resolved.GoalsConceded)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Performance != player.PerformanceHigh {
		t.Fatalf("expected performance raised to High, got %v", p.Performance)
	}
	if p.Condition != player.ConditionHealthy {
		t.Fatalf("expected player to stay healthy, got %v", p.Condition)
	}

	current, found, _ := f.seasonRepo.CurrentByTeam(t.Context(), "team-home")
	if !found || current.TotalMatches != 1 || current.Wins != 1 {
		t.Fatalf("expected season counters 1 match 1 win, got %+v", current)
	}

	if len(perfEvents) != 1 || perfEvents[0].NewPerformance != player.PerformanceHigh {
		t.Fatalf("expected one performance-changed event, got %+v", perfEvents)
	}
	if len(completed) != 1 || !completed[0].Success {
		t.Fatalf("expected one successful activity-completed event, got %+v", completed)
	}

	if len(f.sink.reports) != 1 {
		t.Fatalf("expected one report, got %d", len(f.sink.reports))
	}
	rep := f.sink.reports[0]
	if !rep.Success || rep.RemainingBudget != 10000 || len(rep.AffectedPlayers) != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestSimulationService_DailyEvaluation_DrawnMatchStillReportsSuccess(t *testing.T) {
	squad := healthySquad("team-home", 1)
	match := activity.Activity{
		ID:        "act-match",
		TeamID:    "team-home",
		Name:      "League Fixture",
		Type:      activity.TypeMatch,
		StartTime: testStartDate(),
		PlayerIDs: []string{"player-00"},
	}

	// Draw order: result roll (1 = draw), goals scored (1), injury roll
	// (90 = safe), drift roll (50 = none).
	src := newScriptedSource(t, 1, 1, 90, 50)
	f := newSimFixture(t, 10000, squad, []activity.Activity{match}, src)
	f.startSeason(t)

	var completed []ActivityCompletedEvent
	f.service.OnActivityCompleted(func(e ActivityCompletedEvent) { completed = append(completed, e) })

	if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
		t.Fatalf("daily evaluation: %v", err)
	}

	resolved, _, _ := f.actRepo.GetByID(t.Context(), "act-match")
	if *resolved.Result != activity.ResultDraw || *resolved.GoalsScored != 1 || *resolved.GoalsConceded != 1 {
		t.Fatalf("expected resolved 1-1 draw, got %+v", resolved)
	}

	// Playing the match out is the completion; the scoreline does not
	// turn the event or the report into a failure.
	if len(completed) != 1 || !completed[0].Success {
		t.Fatalf("expected successful completion event for the draw, got %+v", completed)
	}
	if len(f.sink.reports) != 1 || !f.sink.reports[0].Success {
		t.Fatalf("expected successful report for the draw, got %+v", f.sink.reports)
	}
}

func TestSimulationService_DailyEvaluation_FailedTrainingNeverLowersSkills(t *testing.T) {
	squad := healthySquad("team-home", 2)
	training := activity.Activity{
		ID:         "act-training",
		TeamID:     "team-home",
		TemplateID: "tpl-endurance",
		Name:       "Endurance Camp",
		Type:       activity.TypeTraining,
		StartTime:  testStartDate(),
		PlayerIDs:  []string{"player-00"},
	}

	// Draw order: success roll (95 = failure), one zero-width penalty
	// roll per skill, injury roll (50 = safe), then drift per squad player.
	src := newScriptedSource(t, 95, 0, 0, 50, 50, 50)
	f := newSimFixture(t, 10000, squad, []activity.Activity{training}, src)

	if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
		t.Fatalf("daily evaluation: %v", err)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Skills[0].Value != 60 || p.Skills[1].Value != 55 {
		t.Fatalf("failed training must leave skills untouched, got %+v", p.Skills)
	}

	resolved, _, _ := f.actRepo.GetByID(t.Context(), "act-training")
	if *resolved.Result != activity.ResultLoss {
		t.Fatalf("expected failure pseudo-result, got %v", *resolved.Result)
	}
	if len(f.sink.reports) != 1 || f.sink.reports[0].Success {
		t.Fatalf("expected one failure report, got %+v", f.sink.reports)
	}
}

func TestSimulationService_DailyEvaluation_SuccessfulTrainingClampsAtHundred(t *testing.T) {
	squad := healthySquad("team-home", 1)
	squad[0].Skills = []player.Skill{{Name: "passing", Value: 99}}
	training := activity.Activity{
		ID:        "act-training",
		TeamID:    "team-home",
		Name:      "Sharp Session",
		Type:      activity.TypeTraining,
		StartTime: testStartDate(),
		PlayerIDs: []string{"player-00"},
	}

	// Success roll (10), skill gain offset (1 -> +2, clamped to 100),
	// injury roll (50 = safe), drift roll (50 = none).
	src := newScriptedSource(t, 10, 1, 50, 50)
	f := newSimFixture(t, 10000, squad, []activity.Activity{training}, src)

	if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
		t.Fatalf("daily evaluation: %v", err)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Skills[0].Value != 100 {
		t.Fatalf("expected skill clamped at 100, got %d", p.Skills[0].Value)
	}
}

func TestSimulationService_DailyEvaluation_HealAndDrift(t *testing.T) {
	t.Run("injured player heals and drifts down on a low roll", func(t *testing.T) {
		squad := healthySquad("team-home", 1)
		squad[0].Condition = player.ConditionInjured

		// Heal roll 5 (< 10 heals), drift roll 1 (< 2 drifts down).
		src := newScriptedSource(t, 5, 1)
		f := newSimFixture(t, 10000, squad, nil, src)

		if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
			t.Fatalf("daily evaluation: %v", err)
		}

		p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
		if p.Condition != player.ConditionHealthy {
			t.Fatalf("expected healed player, got %v", p.Condition)
		}
		if p.Performance != player.PerformanceLow {
			t.Fatalf("expected drift down to Low, got %v", p.Performance)
		}
	})

	t.Run("healthy player drifts up inside the upper band", func(t *testing.T) {
		// Drift roll 3: inside the 5-point window, above the down band.
		src := newScriptedSource(t, 3)
		f := newSimFixture(t, 10000, healthySquad("team-home", 1), nil, src)

		if err := f.service.PerformDailyEvaluation(t.Context()); err != nil {
			t.Fatalf("daily evaluation: %v", err)
		}

		p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
		if p.Performance != player.PerformanceHigh {
			t.Fatalf("expected drift up to High, got %v", p.Performance)
		}
	})
}

func TestSimulationService_EvaluateTraining_PositiveImpact(t *testing.T) {
	squad := healthySquad("team-home", 1)
	training := activity.Activity{
		ID:        "act-training",
		TeamID:    "team-home",
		Name:      "Review Session",
		Type:      activity.TypeTraining,
		StartTime: testStartDate(),
		PlayerIDs: []string{"player-00"},
	}

	// Injury roll (50 = safe), then one gain offset per skill (1 -> +2, 0 -> +1).
	src := newScriptedSource(t, 50, 1, 0)
	f := newSimFixture(t, 10000, squad, []activity.Activity{training}, src)

	if err := f.service.EvaluateTraining(t.Context(), "act-training", 1); err != nil {
		t.Fatalf("evaluate training: %v", err)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Performance != player.PerformanceHigh {
		t.Fatalf("expected performance raised, got %v", p.Performance)
	}
	if p.Skills[0].Value != 62 || p.Skills[1].Value != 56 {
		t.Fatalf("unexpected skill values: %+v", p.Skills)
	}

	item, _, _ := f.actRepo.GetByID(t.Context(), "act-training")
	if !strings.Contains(item.Description, "Impact: Positive") {
		t.Fatalf("expected evaluation note in description, got %q", item.Description)
	}
}

func TestSimulationService_EvaluateTraining_RejectsMatches(t *testing.T) {
	match := activity.Activity{
		ID:        "act-match",
		TeamID:    "team-home",
		Name:      "League Fixture",
		Type:      activity.TypeMatch,
		StartTime: testStartDate(),
	}
	f := newSimFixture(t, 10000, nil, []activity.Activity{match}, newScriptedSource(t))

	err := f.service.EvaluateTraining(t.Context(), "act-match", 1)
	if err == nil {
		t.Fatal("expected error for non-training activity")
	}
}

func TestSimulationService_RecordMatchResult_UpdatesPlayersAndSeason(t *testing.T) {
	squad := healthySquad("team-home", 1)
	match := activity.Activity{
		ID:        "act-match",
		TeamID:    "team-home",
		Name:      "League Fixture",
		Type:      activity.TypeMatch,
		StartTime: testStartDate(),
		PlayerIDs: []string{"player-00"},
	}
	f := newSimFixture(t, 10000, squad, []activity.Activity{match}, newScriptedSource(t))
	f.startSeason(t)

	if err := f.service.RecordMatchResult(t.Context(), "act-match", activity.ResultLoss, 0, 2); err != nil {
		t.Fatalf("record match result: %v", err)
	}

	resolved, _, _ := f.actRepo.GetByID(t.Context(), "act-match")
	if *resolved.Result != activity.ResultLoss || *resolved.GoalsScored != 0 || *resolved.GoalsConceded != 2 {
		t.Fatalf("unexpected recorded result: %+v", resolved)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Performance != player.PerformanceLow {
		t.Fatalf("expected performance lowered on loss, got %v", p.Performance)
	}

	current, _, _ := f.seasonRepo.CurrentByTeam(t.Context(), "team-home")
	if current.TotalMatches != 1 || current.Losses != 1 {
		t.Fatalf("expected one recorded loss, got %+v", current)
	}
}

func TestSimulationService_ManualPathsReapplyToResolvedActivities(t *testing.T) {
	t.Run("recording a match result twice applies twice", func(t *testing.T) {
		squad := healthySquad("team-home", 1)
		match := activity.Activity{
			ID:        "act-match",
			TeamID:    "team-home",
			Name:      "League Fixture",
			Type:      activity.TypeMatch,
			StartTime: testStartDate(),
			PlayerIDs: []string{"player-00"},
		}
		f := newSimFixture(t, 10000, squad, []activity.Activity{match}, newScriptedSource(t))
		f.startSeason(t)

		if err := f.service.RecordMatchResult(t.Context(), "act-match", activity.ResultLoss, 0, 2); err != nil {
			t.Fatalf("record match result: %v", err)
		}
		if err := f.service.RecordMatchResult(t.Context(), "act-match", activity.ResultLoss, 1, 3); err != nil {
			t.Fatalf("record match result again: %v", err)
		}

		// No guard exists, so the second recording lowers the tier again
		// and counts a second match.
		p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
		if p.Performance != player.PerformanceCritical {
			t.Fatalf("expected tier lowered twice to Critical, got %v", p.Performance)
		}

		current, _, _ := f.seasonRepo.CurrentByTeam(t.Context(), "team-home")
		if current.TotalMatches != 2 || current.Losses != 2 {
			t.Fatalf("expected two counted losses, got %+v", current)
		}

		resolved, _, _ := f.actRepo.GetByID(t.Context(), "act-match")
		if *resolved.GoalsScored != 1 || *resolved.GoalsConceded != 3 {
			t.Fatalf("expected the later scoreline kept, got %d-%d", *resolved.GoalsScored, *resolved.GoalsConceded)
		}
	})

	t.Run("evaluating an already resolved training still applies", func(t *testing.T) {
		squad := healthySquad("team-home", 1)
		resolvedWin := activity.ResultWin
		training := activity.Activity{
			ID:        "act-training",
			TeamID:    "team-home",
			Name:      "Review Session",
			Type:      activity.TypeTraining,
			StartTime: testStartDate(),
			PlayerIDs: []string{"player-00"},
			Result:    &resolvedWin,
		}

		// Injury roll (50 = safe), then one gain offset per skill.
		src := newScriptedSource(t, 50, 1, 0)
		f := newSimFixture(t, 10000, squad, []activity.Activity{training}, src)

		if err := f.service.EvaluateTraining(t.Context(), "act-training", 1); err != nil {
			t.Fatalf("evaluate resolved training: %v", err)
		}

		p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
		if p.Skills[0].Value != 62 || p.Skills[1].Value != 56 {
			t.Fatalf("expected skills adjusted despite prior result, got %+v", p.Skills)
		}

		item, _, _ := f.actRepo.GetByID(t.Context(), "act-training")
		if !strings.Contains(item.Description, "Impact: Positive") {
			t.Fatalf("expected evaluation note appended, got %q", item.Description)
		}
	})
}

func TestSimulationService_EvaluateTrainingResult_AppliesTemplateImpacts(t *testing.T) {
	squad := healthySquad("team-home", 1)
	training := activity.Activity{
		ID:         "act-training",
		TeamID:     "team-home",
		TemplateID: "tpl-endurance",
		Name:       "Endurance Camp",
		Type:       activity.TypeTraining,
		StartTime:  testStartDate(),
		PlayerIDs:  []string{"player-00"},
	}

	// Success roll (10 < 70), injury roll from the template chance (50 = safe).
	src := newScriptedSource(t, 10, 50)
	f := newSimFixture(t, 10000, squad, []activity.Activity{training}, src)

	if err := f.service.EvaluateTrainingResult(t.Context(), "act-training"); err != nil {
		t.Fatalf("evaluate training result: %v", err)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Skills[1].Name != "stamina" || p.Skills[1].Value != 58 {
		t.Fatalf("expected stamina 58 from template impact, got %+v", p.Skills)
	}
	if p.Skills[0].Value != 60 {
		t.Fatalf("unimpacted skill must not move, got %d", p.Skills[0].Value)
	}

	resolved, _, _ := f.actRepo.GetByID(t.Context(), "act-training")
	if *resolved.Result != activity.ResultWin {
		t.Fatalf("expected success pseudo-result, got %v", *resolved.Result)
	}
}

func TestSimulationService_EvaluateTrainingResult_FailureNegatesImpacts(t *testing.T) {
	squad := healthySquad("team-home", 1)
	squad[0].Skills = []player.Skill{{Name: "stamina", Value: 2}}
	training := activity.Activity{
		ID:         "act-training",
		TeamID:     "team-home",
		TemplateID: "tpl-endurance",
		Name:       "Endurance Camp",
		Type:       activity.TypeTraining,
		StartTime:  testStartDate(),
		PlayerIDs:  []string{"player-00"},
	}

	// Success roll (90 >= 70 fails), injury roll (50 = safe). The
	// negated impact of 3 clamps at zero.
	src := newScriptedSource(t, 90, 50)
	f := newSimFixture(t, 10000, squad, []activity.Activity{training}, src)

	if err := f.service.EvaluateTrainingResult(t.Context(), "act-training"); err != nil {
		t.Fatalf("evaluate training result: %v", err)
	}

	p, _, _ := f.w.playerRepo.GetByID(t.Context(), "player-00")
	if p.Skills[0].Value != 0 {
		t.Fatalf("expected stamina clamped at 0, got %d", p.Skills[0].Value)
	}
}
