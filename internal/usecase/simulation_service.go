package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/catalog"
	"github.com/riskibarqy/franchise-manager/internal/domain/gamestate"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/report"
	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	"github.com/riskibarqy/franchise-manager/internal/platform/random"
)

const (
	matchInjuryChance      = 30
	trainingSuccessChance  = 70
	trainingInjuryChance   = 10
	manualReviewInjuryRisk = 5
	injuryHealChance       = 10
	tierDriftChance        = 5
	tierDriftDownBand      = 2
)

// SimulationService is the daily-tick engine: it resolves due
// activities, mutates player attributes, settles wages, and advances
// the calendar. All randomness flows through one injected Source so
// tests can script the draws.
//
// Multi-entity mutations are sequential repository writes with no
// transaction; a failure partway leaves a partially-updated state.
type SimulationService struct {
	state      gamestate.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	actRepo    activity.Repository
	seasons    *SeasonService
	templates  *catalog.Catalog
	sink       report.Sink
	rng        random.Source
	logger     *slog.Logger
	handlers   eventHandlers
}

func NewSimulationService(
	state gamestate.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	actRepo activity.Repository,
	seasons *SeasonService,
	templates *catalog.Catalog,
	sink report.Sink,
	rng random.Source,
	logger *slog.Logger,
) *SimulationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &SimulationService{
		state:      state,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		actRepo:    actRepo,
		seasons:    seasons,
		templates:  templates,
		sink:       sink,
		rng:        rng,
		logger:     logger,
	}
}

// OnPerformanceChanged registers a subscriber for tier changes.
func (s *SimulationService) OnPerformanceChanged(fn func(PerformanceChangedEvent)) {
	s.handlers.performanceChanged = append(s.handlers.performanceChanged, fn)
}

// OnPlayerInjured registers a subscriber for injuries.
func (s *SimulationService) OnPlayerInjured(fn func(PlayerInjuredEvent)) {
	s.handlers.playerInjured = append(s.handlers.playerInjured, fn)
}

// OnActivityCompleted registers a subscriber for resolved activities.
func (s *SimulationService) OnActivityCompleted(fn func(ActivityCompletedEvent)) {
	s.handlers.activityCompleted = append(s.handlers.activityCompleted, fn)
}

// PerformDailyEvaluation resolves all of the managed team's activities
// due today, settles the daily wage bill (sum of weekly salaries over
// seven, even with no activities), applies recovery and morale drift
// rolls to every player, and advances the calendar by one day. When
// the advanced date reaches the season end, the season is marked
// Completed.
func (s *SimulationService) PerformDailyEvaluation(ctx context.Context) error {
	current, err := selectedTeam(ctx, s.state, s.teamRepo)
	if err != nil {
		return err
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("get current date: %w", err)
	}

	due, err := s.actRepo.ListDueByTeam(ctx, current.ID, today)
	if err != nil {
		return fmt.Errorf("list due activities: %w", err)
	}

	s.logger.InfoContext(ctx, "daily evaluation",
		"team_id", current.ID,
		"date", today.Format("2006-01-02"),
		"due_activities", len(due),
	)

	for _, item := range due {
		switch item.Type {
		case activity.TypeMatch:
			if err := s.simulateMatch(ctx, current, item, today); err != nil {
				return err
			}
		case activity.TypeTraining:
			if err := s.simulateTraining(ctx, current, item, today); err != nil {
				return err
			}
		}
	}

	squad, err := s.playerRepo.ListByTeam(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("list team players: %w", err)
	}

	var weekly int64
	for _, p := range squad {
		weekly += p.WeeklySalary
	}
	current.Budget -= weekly / 7

	for _, p := range squad {
		changed := false
		if p.Condition == player.ConditionInjured && random.Percent(s.rng, injuryHealChance) {
			p.Condition = player.ConditionHealthy
			changed = true
		}

		// One draw decides both whether the tier drifts and in which
		// direction: the low band drifts down, the rest of the window up.
		drift := s.rng.IntN(100)
		if drift < tierDriftChance {
			if drift < tierDriftDownBand {
				p.Performance = p.Performance.Lowered()
			} else {
				p.Performance = p.Performance.Raised()
			}
			changed = true
		}

		if changed {
			if err := s.playerRepo.Update(ctx, p); err != nil {
				return fmt.Errorf("update player after daily rolls: %w", err)
			}
		}
	}

	if err := s.teamRepo.Update(ctx, current); err != nil {
		return fmt.Errorf("settle daily wages: %w", err)
	}

	currentSeason, hasSeason, err := s.seasons.seasonRepo.CurrentByTeam(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("get current season: %w", err)
	}
	if hasSeason {
		currentSeason.EndingBudget = current.Budget
		if err := s.seasons.seasonRepo.Update(ctx, currentSeason); err != nil {
			return fmt.Errorf("snapshot season budget: %w", err)
		}
	}

	next := today.AddDate(0, 0, 1)
	if err := s.state.SetCurrentDate(ctx, next); err != nil {
		return fmt.Errorf("advance current date: %w", err)
	}

	if hasSeason && !next.Before(currentSeason.EndDate) {
		currentSeason.Status = season.StatusCompleted
		if err := s.seasons.seasonRepo.Update(ctx, currentSeason); err != nil {
			return fmt.Errorf("complete season: %w", err)
		}
	}

	return nil
}

func (s *SimulationService) simulateMatch(ctx context.Context, current team.Team, item activity.Activity, today time.Time) error {
	var result activity.Result
	switch s.rng.IntN(3) {
	case 0:
		result = activity.ResultLoss
	case 1:
		result = activity.ResultDraw
	default:
		result = activity.ResultWin
	}

	var scored, conceded int
	switch result {
	case activity.ResultWin:
		scored = random.Between(s.rng, 1, 5)
		conceded = scored - random.Between(s.rng, 1, 3)
	case activity.ResultDraw:
		scored = random.Between(s.rng, 0, 3)
		conceded = scored
	case activity.ResultLoss:
		scored = random.Between(s.rng, 0, 2)
		conceded = scored + random.Between(s.rng, 1, 3)
	}

	assigned, err := s.loadAssigned(ctx, item.PlayerIDs)
	if err != nil {
		return err
	}

	var affected []player.Player
	for _, p := range assigned {
		old := p.Performance
		switch result {
		case activity.ResultWin:
			p.Performance = p.Performance.Raised()
		case activity.ResultLoss:
			p.Performance = p.Performance.Lowered()
		}

		if random.Percent(s.rng, matchInjuryChance) {
			p.Condition = player.ConditionInjured
		}

		if err := s.playerRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("update player after match: %w", err)
		}

		if p.Performance != old {
			s.handlers.emitPerformanceChanged(PerformanceChangedEvent{
				Player:         p,
				OldPerformance: old,
				NewPerformance: p.Performance,
			})
		}
		if p.Condition == player.ConditionInjured {
			s.handlers.emitPlayerInjured(PlayerInjuredEvent{Player: p, InjuryDate: today})
		}
		affected = append(affected, p)
	}

	item.Result = &result
	item.GoalsScored = &scored
	item.GoalsConceded = &conceded
	if err := s.actRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("record match outcome: %w", err)
	}

	if err := s.seasons.RecordMatchOutcome(ctx, current.ID, result); err != nil && !errors.Is(err, ErrNoActiveSeason) {
		return err
	}

	s.logger.InfoContext(ctx, "match resolved",
		"activity_id", item.ID,
		"result", string(result),
		"goals_scored", scored,
		"goals_conceded", conceded,
	)

	// A simulated match completes successfully whatever the scoreline;
	// only trainings carry a real success flag.
	return s.completeActivity(ctx, current, item, true, today, affected)
}

func (s *SimulationService) simulateTraining(ctx context.Context, current team.Team, item activity.Activity, today time.Time) error {
	success := random.Percent(s.rng, trainingSuccessChance)

	assigned, err := s.loadAssigned(ctx, item.PlayerIDs)
	if err != nil {
		return err
	}

	var affected []player.Player
	for _, p := range assigned {
		for i := range p.Skills {
			if success {
				p.Skills[i].Value = player.ClampSkillValue(p.Skills[i].Value + random.Between(s.rng, 1, 3))
			} else {
				// Failed sessions roll a penalty from a zero-width range,
				// so skills never actually regress.
				p.Skills[i].Value = player.ClampSkillValue(p.Skills[i].Value - s.rng.IntN(1))
			}
		}

		if random.Percent(s.rng, trainingInjuryChance) {
			p.Condition = player.ConditionInjured
		}

		if err := s.playerRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("update player after training: %w", err)
		}

		if p.Condition == player.ConditionInjured {
			s.handlers.emitPlayerInjured(PlayerInjuredEvent{Player: p, InjuryDate: today})
		}
		affected = append(affected, p)
	}

	result := activity.ResultLoss
	if success {
		result = activity.ResultWin
	}
	item.Result = &result
	if err := s.actRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("record training outcome: %w", err)
	}

	s.logger.InfoContext(ctx, "training resolved",
		"activity_id", item.ID,
		"success", success,
	)

	return s.completeActivity(ctx, current, item, success, today, affected)
}

// EvaluateTraining applies a manager-judged impact to a finished
// training session: positive raises each assigned player one tier,
// negative lowers one tier, zero leaves tiers alone. Each player also
// faces a small injury roll and a skill adjustment matching the sign.
// The session's description gains an evaluation line.
func (s *SimulationService) EvaluateTraining(ctx context.Context, activityID string, impact int) error {
	item, found, err := s.actRepo.GetByID(ctx, activityID)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}
	if !found || item.Type != activity.TypeTraining {
		return fmt.Errorf("%w: training session %s", ErrNotFound, activityID)
	}

	today, err := s.state.CurrentDate(ctx)
	if err != nil {
		return fmt.Errorf("get current date: %w", err)
	}

	assigned, err := s.loadAssigned(ctx, item.PlayerIDs)
	if err != nil {
		return err
	}

	for _, p := range assigned {
		switch {
		case impact > 0:
			p.Performance = p.Performance.Raised()
		case impact < 0:
			p.Performance = p.Performance.Lowered()
		}

		if random.Percent(s.rng, manualReviewInjuryRisk) {
			p.Condition = player.ConditionInjured
		}

		for i := range p.Skills {
			switch {
			case impact > 0:
				p.Skills[i].Value = player.ClampSkillValue(p.Skills[i].Value + random.Between(s.rng, 1, 3))
			case impact < 0:
				p.Skills[i].Value = player.ClampSkillValue(p.Skills[i].Value - random.Between(s.rng, 1, 3))
			}
		}

		if err := s.playerRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("update player after evaluation: %w", err)
		}
	}

	label := "Neutral"
	switch {
	case impact > 0:
		label = "Positive"
	case impact < 0:
		label = "Negative"
	}
	item.Description += fmt.Sprintf("\nEvaluated: %s - Impact: %s", today.Format("2006-01-02"), label)

	if err := s.actRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("record training evaluation: %w", err)
	}

	return nil
}

// RecordMatchResult books a manually-entered match outcome: it stores
// the result and scoreline, shifts each assigned player's tier by the
// result, and feeds the season counters. No injury rolls happen on
// this path.
func (s *SimulationService) RecordMatchResult(ctx context.Context, activityID string, result activity.Result, goalsScored, goalsConceded int) error {
	item, found, err := s.actRepo.GetByID(ctx, activityID)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}
	if !found || item.Type != activity.TypeMatch {
		return fmt.Errorf("%w: match %s", ErrNotFound, activityID)
	}

	item.Result = &result
	item.GoalsScored = &goalsScored
	item.GoalsConceded = &goalsConceded

	assigned, err := s.loadAssigned(ctx, item.PlayerIDs)
	if err != nil {
		return err
	}

	for _, p := range assigned {
		switch result {
		case activity.ResultWin:
			p.Performance = p.Performance.Raised()
		case activity.ResultLoss:
			p.Performance = p.Performance.Lowered()
		}
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("update player after recorded match: %w", err)
		}
	}

	if err := s.actRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("record match result: %w", err)
	}

	return s.seasons.RecordMatchOutcome(ctx, item.TeamID, result)
}

// EvaluateTrainingResult resolves a scheduled training against its
// template: one success roll against the template's chance, then the
// template's skill impacts applied per player (negated on failure) and
// the template's injury chance rolled per player.
func (s *SimulationService) EvaluateTrainingResult(ctx context.Context, activityID string) error {
	item, found, err := s.actRepo.GetByID(ctx, activityID)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}
	if !found || item.Type != activity.TypeTraining {
		return fmt.Errorf("%w: training session %s", ErrNotFound, activityID)
	}

	tpl, found := s.templates.Get(item.TemplateID)
	if !found {
		return fmt.Errorf("%w: training template %s", ErrNotFound, item.TemplateID)
	}

	success := random.Percent(s.rng, tpl.SuccessChance)

	assigned, err := s.loadAssigned(ctx, item.PlayerIDs)
	if err != nil {
		return err
	}

	impacts := tpl.SkillImpacts()
	names := make([]string, 0, len(impacts))
	for name := range impacts {
		names = append(names, name)
	}
	sort.Strings(names)

	injuryChance, hasInjuryChance := tpl.InjuryChance()

	for _, p := range assigned {
		for _, name := range names {
			delta := impacts[name]
			if !success {
				delta = -delta
			}
			for i := range p.Skills {
				if strings.EqualFold(p.Skills[i].Name, name) {
					p.Skills[i].Value = player.ClampSkillValue(p.Skills[i].Value + delta)
				}
			}
		}

		if hasInjuryChance && random.Percent(s.rng, injuryChance) {
			p.Condition = player.ConditionInjured
		}

		if err := s.playerRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("update player after template evaluation: %w", err)
		}
	}

	result := activity.ResultLoss
	if success {
		result = activity.ResultWin
	}
	item.Result = &result
	if err := s.actRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("record template evaluation: %w", err)
	}

	s.logger.InfoContext(ctx, "training evaluated against template",
		"activity_id", item.ID,
		"template_id", item.TemplateID,
		"success", success,
	)

	return nil
}

func (s *SimulationService) loadAssigned(ctx context.Context, ids []string) ([]player.Player, error) {
	players := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		p, found, err := s.playerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get player: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: player %s", ErrNotFound, id)
		}
		players = append(players, p)
	}
	return players, nil
}

func (s *SimulationService) completeActivity(ctx context.Context, current team.Team, item activity.Activity, success bool, today time.Time, affected []player.Player) error {
	s.handlers.emitActivityCompleted(ActivityCompletedEvent{
		Activity:        item,
		Success:         success,
		AffectedPlayers: affected,
	})

	names := make([]string, 0, len(affected))
	for _, p := range affected {
		names = append(names, p.Name)
	}

	rep := report.ActivityReport{
		ActivityName:    item.Name,
		TeamName:        current.Name,
		ExecutionDate:   today,
		Success:         success,
		RemainingBudget: current.Budget,
		AffectedPlayers: names,
	}
	if err := s.sink.Generate(ctx, rep); err != nil {
		return fmt.Errorf("generate activity report: %w", err)
	}

	return nil
}
