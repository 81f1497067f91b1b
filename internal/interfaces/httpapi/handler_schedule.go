package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/franchise-manager/internal/usecase"
)

type templateDTO struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Duration      int            `json:"duration"`
	SuccessChance int            `json:"success_chance"`
	Impacts       map[string]int `json:"impacts"`
	RequiredMoney int64          `json:"required_money"`
	RequiredStaff int            `json:"required_staff"`
}

func (h *Handler) ListTrainingCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTrainingCatalog")
	defer span.End()

	templates := h.schedulerService.AvailableTrainings()
	items := make([]templateDTO, 0, len(templates))
	for _, tpl := range templates {
		items = append(items, templateDTO{
			ID:            tpl.ID,
			Name:          tpl.Name,
			Duration:      tpl.Duration,
			SuccessChance: tpl.SuccessChance,
			Impacts:       tpl.Impacts,
			RequiredMoney: tpl.Requirements.Money,
			RequiredStaff: tpl.Requirements.Staff,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type scheduleTrainingRequest struct {
	TemplateID string    `json:"template_id" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	PlayerIDs  []string  `json:"player_ids" validate:"omitempty,dive,required"`
}

func (h *Handler) ScheduleTraining(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleTraining")
	defer span.End()

	var req scheduleTrainingRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	scheduled, err := h.schedulerService.ScheduleTraining(ctx, req.TemplateID, req.StartTime, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "schedule training failed", "template_id", req.TemplateID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, activityToDTO(scheduled))
}

type scheduleMatchRequest struct {
	Name      string    `json:"name" validate:"required,max=150"`
	Duration  int       `json:"duration" validate:"gte=1"`
	StartTime time.Time `json:"start_time" validate:"required"`
	PlayerIDs []string  `json:"player_ids" validate:"omitempty,dive,required"`
}

func (h *Handler) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleMatch")
	defer span.End()

	var req scheduleMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	scheduled, err := h.schedulerService.ScheduleMatch(ctx, usecase.ScheduleMatchInput{
		Name:      req.Name,
		Duration:  req.Duration,
		StartTime: req.StartTime,
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule match failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, activityToDTO(scheduled))
}
