package httpapi

import (
	"net/http"
	"time"
)

func (h *Handler) StartSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSeason")
	defer span.End()

	started, err := h.seasonService.StartNewSeason(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "start season failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(started))
}

type seasonSummaryDTO struct {
	DaysRemaining  int       `json:"days_remaining"`
	StartingBudget int64     `json:"starting_budget"`
	CurrentBudget  int64     `json:"current_budget"`
	TotalPlayers   int       `json:"total_players"`
	HealthyPlayers int       `json:"healthy_players"`
	TopPerformers  int       `json:"top_performers"`
	TotalMatches   int       `json:"total_matches"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	EndDate        time.Time `json:"end_date"`
}

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	summary, err := h.seasonService.GetSeasonSummary(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "season summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryDTO{
		DaysRemaining:  summary.DaysRemaining,
		StartingBudget: summary.StartingBudget,
		CurrentBudget:  summary.CurrentBudget,
		TotalPlayers:   summary.TotalPlayers,
		HealthyPlayers: summary.HealthyPlayers,
		TopPerformers:  summary.TopPerformers,
		TotalMatches:   summary.TotalMatches(),
		Wins:           summary.Wins,
		Draws:          summary.Draws,
		Losses:         summary.Losses,
		EndDate:        summary.EndDate,
	})
}

func (h *Handler) CheckGameOver(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckGameOver")
	defer span.End()

	over, err := h.seasonService.CheckGameOver(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "game over check failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"game_over": over})
}
