// Package dataset imports the initial game world from a JSON file:
// teams, their players with skill maps, and the training template
// catalog. The field names and Hungarian enum values follow the
// published dataset format.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/franchise-manager/internal/domain/catalog"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
)

const defaultImportWorkers = 4

// ErrMalformedDataset marks files that fail to parse, validate, or
// cross-reference. IO and persistence failures are not tagged with it.
var ErrMalformedDataset = crerr.New("malformed dataset")

type fileFormat struct {
	Teams   []teamRecord     `json:"teams" validate:"required,min=1,dive"`
	Players []playerRecord   `json:"players" validate:"dive"`
	Tasks   []templateRecord `json:"tasks" validate:"dive"`
}

type teamRecord struct {
	TeamID     int    `json:"team_id" validate:"required"`
	TeamName   string `json:"team_name" validate:"required"`
	Budget     int64  `json:"budget" validate:"gte=0"`
	StaffCount int    `json:"staff_count" validate:"gte=0"`
	Players    []int  `json:"players"`
}

type playerRecord struct {
	PlayerID          int            `json:"player_id" validate:"required"`
	Name              string         `json:"name" validate:"required"`
	Position          string         `json:"position"`
	Performance       string         `json:"performance"`
	PhysicalCondition string         `json:"physical_condition"`
	Skills            map[string]int `json:"skills" validate:"dive,gte=0,lte=100"`
}

type templateRecord struct {
	TaskID        int               `json:"task_id" validate:"required"`
	Name          string            `json:"name" validate:"required"`
	Duration      int               `json:"duration" validate:"gte=0"`
	SuccessChance string            `json:"successchance" validate:"required"`
	Impact        map[string]string `json:"impact"`
	Requirements  map[string]int    `json:"requirements"`
}

// Result carries everything a loaded dataset contributes to the
// engine.
type Result struct {
	Teams     []team.Team
	Players   []player.Player
	Templates []catalog.Template
}

// Loader reads and validates a dataset file and maps its records into
// domain entities.
type Loader struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	validate   *validator.Validate
	workers    int
	logger     *slog.Logger
}

func NewLoader(teamRepo team.Repository, playerRepo player.Repository, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		validate:   validator.New(),
		workers:    defaultImportWorkers,
		logger:     logger,
	}
}

// SetWorkers overrides the import pool size.
func (l *Loader) SetWorkers(n int) {
	if n > 0 {
		l.workers = n
	}
}

// Load parses the dataset file, persists teams and their players, and
// returns the parsed world including the training template catalog.
// Teams are imported concurrently through a bounded worker pool; the
// first failure wins.
func (l *Loader) Load(ctx context.Context, path string) (Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read dataset file: %w", err)
	}

	var data fileFormat
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return Result{}, fmt.Errorf("%w: parse dataset file: %v", ErrMalformedDataset, err)
	}
	if err := l.validate.Struct(data); err != nil {
		return Result{}, fmt.Errorf("%w: invalid dataset: %v", ErrMalformedDataset, err)
	}

	result, err := mapDataset(data)
	if err != nil {
		return Result{}, err
	}

	playersByTeam := make(map[string][]player.Player)
	for _, p := range result.Players {
		playersByTeam[p.TeamID] = append(playersByTeam[p.TeamID], p)
	}

	pool, err := ants.NewPool(l.workers)
	if err != nil {
		return Result{}, fmt.Errorf("create import pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, t := range result.Teams {
		t := t
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := l.importTeam(ctx, t, playersByTeam[t.ID]); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}); err != nil {
			wg.Done()
			return Result{}, fmt.Errorf("submit import task: %w", err)
		}
	}
	wg.Wait()
	if firstErr != nil {
		return Result{}, firstErr
	}

	l.logger.InfoContext(ctx, "dataset imported",
		"teams", len(result.Teams),
		"players", len(result.Players),
		"templates", len(result.Templates),
	)

	return result, nil
}

func (l *Loader) importTeam(ctx context.Context, t team.Team, squad []player.Player) error {
	if err := l.teamRepo.Create(ctx, t); err != nil {
		return fmt.Errorf("import team %s: %w", t.ID, err)
	}
	for _, p := range squad {
		if err := l.playerRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("import player %s: %w", p.ID, err)
		}
	}
	return nil
}

func mapDataset(data fileFormat) (Result, error) {
	playersByID := make(map[int]playerRecord, len(data.Players))
	for _, rec := range data.Players {
		playersByID[rec.PlayerID] = rec
	}

	var out Result
	for _, rec := range data.Teams {
		teamID := fmt.Sprintf("team-%d", rec.TeamID)
		out.Teams = append(out.Teams, team.Team{
			ID:         teamID,
			Name:       rec.TeamName,
			Budget:     rec.Budget,
			StaffCount: rec.StaffCount,
		})

		for _, playerID := range rec.Players {
			prec, ok := playersByID[playerID]
			if !ok {
				return Result{}, fmt.Errorf("%w: team %d references unknown player %d", ErrMalformedDataset, rec.TeamID, playerID)
			}
			out.Players = append(out.Players, mapPlayer(prec, teamID))
		}
	}

	for _, rec := range data.Tasks {
		tpl, err := mapTemplate(rec)
		if err != nil {
			return Result{}, err
		}
		out.Templates = append(out.Templates, tpl)
	}

	return out, nil
}

func mapPlayer(rec playerRecord, teamID string) player.Player {
	skills := make([]player.Skill, 0, len(rec.Skills))
	for _, name := range sortedKeys(rec.Skills) {
		skills = append(skills, player.Skill{Name: name, Value: player.ClampSkillValue(rec.Skills[name])})
	}

	return player.Player{
		ID:          fmt.Sprintf("player-%d", rec.PlayerID),
		TeamID:      teamID,
		Name:        rec.Name,
		Position:    parsePosition(rec.Position),
		Performance: parsePerformance(rec.Performance),
		Condition:   parseCondition(rec.PhysicalCondition),
		Status:      player.StatusAvailable,
		Skills:      skills,
	}
}

func mapTemplate(rec templateRecord) (catalog.Template, error) {
	chance, err := parsePercent(rec.SuccessChance)
	if err != nil {
		return catalog.Template{}, fmt.Errorf("%w: task %d success chance: %v", ErrMalformedDataset, rec.TaskID, err)
	}

	impacts := make(map[string]int, len(rec.Impact))
	for name, value := range rec.Impact {
		if strings.EqualFold(name, catalog.InjuryChanceKey) {
			pct, err := parsePercent(value)
			if err != nil {
				return catalog.Template{}, fmt.Errorf("%w: task %d injury chance: %v", ErrMalformedDataset, rec.TaskID, err)
			}
			impacts[catalog.InjuryChanceKey] = pct
			continue
		}
		delta, err := strconv.Atoi(value)
		if err != nil {
			return catalog.Template{}, fmt.Errorf("%w: task %d impact %q: %v", ErrMalformedDataset, rec.TaskID, name, err)
		}
		impacts[name] = delta
	}

	return catalog.Template{
		ID:            fmt.Sprintf("tpl-%d", rec.TaskID),
		Name:          rec.Name,
		Duration:      rec.Duration,
		SuccessChance: chance,
		Impacts:       impacts,
		Requirements: catalog.Requirements{
			Money: int64(rec.Requirements["money"]),
			Staff: rec.Requirements["staff"],
		},
	}, nil
}

// parsePercent reads "70%" or plain "70".
func parsePercent(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, fmt.Errorf("parse percentage %q: %w", s, err)
	}
	return v, nil
}

// The dataset ships positions and states in Hungarian; unknown values
// fall back the same way the published importer does.
func parsePosition(s string) player.Position {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "védő", "defender":
		return player.PositionDefender
	case "középpályás", "midfielder":
		return player.PositionMidfielder
	case "kapus", "goalkeeper":
		return player.PositionGoalkeeper
	case "támadó", "forward":
		return player.PositionForward
	default:
		return player.PositionForward
	}
}

func parsePerformance(s string) player.Performance {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "magas", "high":
		return player.PerformanceHigh
	case "alacsony", "low":
		return player.PerformanceLow
	case "kritikus", "critical":
		return player.PerformanceCritical
	case "közepes", "medium":
		return player.PerformanceMedium
	default:
		return player.PerformanceMedium
	}
}

func parseCondition(s string) player.Condition {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sérült", "injured":
		return player.ConditionInjured
	default:
		return player.ConditionHealthy
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
