package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/usecase"
)

func (h *Handler) PerformDailyEvaluation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PerformDailyEvaluation")
	defer span.End()

	if err := h.simulationService.PerformDailyEvaluation(ctx); err != nil {
		h.logger.WarnContext(ctx, "daily evaluation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	date, err := h.rosterService.CurrentDate(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{
		"status":       "evaluated",
		"current_date": date.Format("2006-01-02"),
	})
}

type recordMatchResultRequest struct {
	Result        string `json:"result" validate:"required,oneof=win draw loss"`
	GoalsScored   int    `json:"goals_scored" validate:"gte=0"`
	GoalsConceded int    `json:"goals_conceded" validate:"gte=0"`
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	var req recordMatchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	activityID := r.PathValue("activityID")
	err := h.simulationService.RecordMatchResult(ctx, activityID, activity.Result(req.Result), req.GoalsScored, req.GoalsConceded)
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "activity_id", activityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"activity_id": activityID, "result": req.Result})
}

type evaluateTrainingRequest struct {
	Impact int `json:"impact" validate:"gte=-100,lte=100"`
}

func (h *Handler) EvaluateTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EvaluateTraining")
	defer span.End()

	var req evaluateTrainingRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	activityID := r.PathValue("activityID")
	if err := h.simulationService.EvaluateTraining(ctx, activityID, req.Impact); err != nil {
		h.logger.WarnContext(ctx, "evaluate training failed", "activity_id", activityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"activity_id": activityID, "impact": req.Impact})
}

func (h *Handler) EvaluateTrainingResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EvaluateTrainingResult")
	defer span.End()

	activityID := r.PathValue("activityID")
	if err := h.simulationService.EvaluateTrainingResult(ctx, activityID); err != nil {
		h.logger.WarnContext(ctx, "evaluate training result failed", "activity_id", activityID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"activity_id": activityID, "status": "resolved"})
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetReport")
	defer span.End()

	name := r.PathValue("name")
	item, err := h.reportSink.Load(ctx, name)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: report %s: %v", usecase.ErrNotFound, name, err))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"activity_name":    item.ActivityName,
		"team_name":        item.TeamName,
		"execution_date":   item.ExecutionDate,
		"success":          item.Success,
		"remaining_budget": item.RemainingBudget,
		"affected_players": item.AffectedPlayers,
	})
}
