package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/report"
	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	"github.com/riskibarqy/franchise-manager/internal/domain/transfer"
	"github.com/riskibarqy/franchise-manager/internal/usecase"
)

type Handler struct {
	rosterService     *usecase.RosterService
	schedulerService  *usecase.SchedulerService
	simulationService *usecase.SimulationService
	seasonService     *usecase.SeasonService
	transferService   *usecase.TransferService
	reportSink        report.Sink
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	rosterService *usecase.RosterService,
	schedulerService *usecase.SchedulerService,
	simulationService *usecase.SimulationService,
	seasonService *usecase.SeasonService,
	transferService *usecase.TransferService,
	reportSink report.Sink,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		rosterService:     rosterService,
		schedulerService:  schedulerService,
		simulationService: simulationService,
		seasonService:     seasonService,
		transferService:   transferService,
		reportSink:        reportSink,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type teamDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Budget     int64  `json:"budget"`
	StaffCount int    `json:"staff_count"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:         item.ID,
		Name:       item.Name,
		Budget:     item.Budget,
		StaffCount: item.StaffCount,
	}
}

type skillDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type playerDTO struct {
	ID            string     `json:"id"`
	TeamID        string     `json:"team_id"`
	Name          string     `json:"name"`
	Position      string     `json:"position"`
	Performance   string     `json:"performance"`
	Condition     string     `json:"condition"`
	Status        string     `json:"status"`
	ContractStart time.Time  `json:"contract_start"`
	ContractEnd   time.Time  `json:"contract_end"`
	WeeklySalary  int64      `json:"weekly_salary"`
	TransferValue int64      `json:"transfer_value"`
	Skills        []skillDTO `json:"skills"`
}

func playerToDTO(item player.Player) playerDTO {
	skills := make([]skillDTO, 0, len(item.Skills))
	for _, skill := range item.Skills {
		skills = append(skills, skillDTO{Name: skill.Name, Value: skill.Value})
	}

	return playerDTO{
		ID:            item.ID,
		TeamID:        item.TeamID,
		Name:          item.Name,
		Position:      string(item.Position),
		Performance:   item.Performance.String(),
		Condition:     string(item.Condition),
		Status:        string(item.Status),
		ContractStart: item.ContractStart,
		ContractEnd:   item.ContractEnd,
		WeeklySalary:  item.WeeklySalary,
		TransferValue: item.TransferValue,
		Skills:        skills,
	}
}

func playersToDTOs(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}

	return out
}

type activityDTO struct {
	ID            string    `json:"id"`
	TeamID        string    `json:"team_id"`
	TemplateID    string    `json:"template_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Duration      int       `json:"duration"`
	StartTime     time.Time `json:"start_time"`
	Result        *string   `json:"result,omitempty"`
	GoalsScored   *int      `json:"goals_scored,omitempty"`
	GoalsConceded *int      `json:"goals_conceded,omitempty"`
	PlayerIDs     []string  `json:"player_ids"`
}

func activityToDTO(item activity.Activity) activityDTO {
	dto := activityDTO{
		ID:            item.ID,
		TeamID:        item.TeamID,
		TemplateID:    item.TemplateID,
		Name:          item.Name,
		Description:   item.Description,
		Type:          string(item.Type),
		Duration:      item.Duration,
		StartTime:     item.StartTime,
		GoalsScored:   item.GoalsScored,
		GoalsConceded: item.GoalsConceded,
		PlayerIDs:     item.PlayerIDs,
	}
	if item.Result != nil {
		result := string(*item.Result)
		dto.Result = &result
	}

	return dto
}

type seasonDTO struct {
	ID             string    `json:"id"`
	TeamID         string    `json:"team_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	TotalMatches   int       `json:"total_matches"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	StartingBudget int64     `json:"starting_budget"`
	EndingBudget   int64     `json:"ending_budget"`
}

func seasonToDTO(item season.Season) seasonDTO {
	return seasonDTO{
		ID:             item.ID,
		TeamID:         item.TeamID,
		StartDate:      item.StartDate,
		EndDate:        item.EndDate,
		Status:         string(item.Status),
		TotalMatches:   item.TotalMatches,
		Wins:           item.Wins,
		Draws:          item.Draws,
		Losses:         item.Losses,
		StartingBudget: item.StartingBudget,
		EndingBudget:   item.EndingBudget,
	}
}

type offerDTO struct {
	ID                  string     `json:"id"`
	PlayerID            string     `json:"player_id"`
	FromTeamID          string     `json:"from_team_id"`
	ToTeamID            string     `json:"to_team_id"`
	OfferedAmount       int64      `json:"offered_amount"`
	OfferedWeeklySalary int64      `json:"offered_weekly_salary"`
	OfferDate           time.Time  `json:"offer_date"`
	ResponseDate        *time.Time `json:"response_date,omitempty"`
	Status              string     `json:"status"`
}

func offerToDTO(item transfer.Offer) offerDTO {
	return offerDTO{
		ID:                  item.ID,
		PlayerID:            item.PlayerID,
		FromTeamID:          item.FromTeamID,
		ToTeamID:            item.ToTeamID,
		OfferedAmount:       item.OfferedAmount,
		OfferedWeeklySalary: item.OfferedWeeklySalary,
		OfferDate:           item.OfferDate,
		ResponseDate:        item.ResponseDate,
		Status:              string(item.Status),
	}
}
