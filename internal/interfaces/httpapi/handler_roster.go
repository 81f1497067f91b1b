package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/usecase"
)

type createTeamRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	InitialBudget int64  `json:"initial_budget" validate:"gte=0"`
	StaffCount    int    `json:"staff_count" validate:"gte=1"`
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.rosterService.CreateTeam(ctx, req.Name, req.InitialBudget, req.StaffCount)
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.rosterService.AllTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, item := range teams {
		items = append(items, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SelectTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.rosterService.SelectTeam(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "select team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"selected_team_id": teamID})
}

type updateBudgetRequest struct {
	NewBudget int64 `json:"new_budget" validate:"gte=1"`
}

func (h *Handler) UpdateTeamBudget(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeamBudget")
	defer span.End()

	var req updateBudgetRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	if err := h.rosterService.UpdateTeamBudget(ctx, teamID, req.NewBudget); err != nil {
		h.logger.WarnContext(ctx, "update team budget failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"team_id": teamID, "budget": req.NewBudget})
}

func (h *Handler) GetCurrentTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentTeam")
	defer span.End()

	current, err := h.rosterService.CurrentTeam(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(current))
}

type teamStatisticsDTO struct {
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsScored   int `json:"goals_scored"`
	GoalsConceded int `json:"goals_conceded"`
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	stats, err := h.rosterService.TeamStatistics(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "team statistics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatisticsDTO{
		Wins:          stats.Wins,
		Draws:         stats.Draws,
		Losses:        stats.Losses,
		GoalsScored:   stats.GoalsScored,
		GoalsConceded: stats.GoalsConceded,
	})
}

type addPlayerRequest struct {
	Name         string         `json:"name" validate:"required,max=100"`
	Position     string         `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	Performance  string         `json:"performance" validate:"omitempty,oneof=critical low medium high"`
	WeeklySalary int64          `json:"weekly_salary" validate:"gte=0"`
	Skills       map[string]int `json:"skills" validate:"omitempty,dive,gte=0,lte=100"`
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	performance := player.PerformanceMedium
	if req.Performance != "" {
		tier, err := parsePerformanceTier(req.Performance)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		performance = tier
	}

	skills := make([]player.Skill, 0, len(req.Skills))
	for name, value := range req.Skills {
		skills = append(skills, player.Skill{Name: name, Value: player.ClampSkillValue(value)})
	}

	created, err := h.rosterService.AddPlayer(ctx, player.Player{
		Name:         req.Name,
		Position:     player.Position(req.Position),
		Performance:  performance,
		WeeklySalary: req.WeeklySalary,
		Skills:       skills,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.rosterService.AllPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

func (h *Handler) ListTopPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopPerformers")
	defer span.End()

	count := 5
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, fmt.Errorf("%w: count must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		count = parsed
	}

	players, err := h.rosterService.TopPerformers(ctx, count)
	if err != nil {
		h.logger.WarnContext(ctx, "top performers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

func (h *Handler) ListPlayersByPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByPerformance")
	defer span.End()

	tier, err := parsePerformanceTier(r.PathValue("tier"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.rosterService.PlayersByPerformance(ctx, tier)
	if err != nil {
		h.logger.WarnContext(ctx, "players by performance failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

func (h *Handler) ListExpiringContracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListExpiringContracts")
	defer span.End()

	players, err := h.rosterService.PlayersWithExpiringContracts(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "expiring contracts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(players))
}

func (h *Handler) ListActivitiesForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListActivitiesForDate")
	defer span.End()

	date, err := h.rosterService.CurrentDate(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, parseErr := time.Parse("2006-01-02", raw)
		if parseErr != nil {
			writeError(ctx, w, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput))
			return
		}
		date = parsed
	}

	activities, err := h.rosterService.ActivitiesForDate(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "activities for date failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]activityDTO, 0, len(activities))
	for _, item := range activities {
		items = append(items, activityToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parsePerformanceTier(raw string) (player.Performance, error) {
	switch raw {
	case "critical":
		return player.PerformanceCritical, nil
	case "low":
		return player.PerformanceLow, nil
	case "medium":
		return player.PerformanceMedium, nil
	case "high":
		return player.PerformanceHigh, nil
	default:
		return 0, fmt.Errorf("%w: unknown performance tier %q", usecase.ErrInvalidInput, raw)
	}
}
