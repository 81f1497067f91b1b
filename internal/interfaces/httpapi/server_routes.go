package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFranchiseRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams/{teamID}/select", handler.SelectTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}/budget", handler.UpdateTeamBudget)
	mux.HandleFunc("GET /v1/team", handler.GetCurrentTeam)
	mux.HandleFunc("GET /v1/team/statistics", handler.GetTeamStatistics)

	mux.HandleFunc("POST /v1/players", handler.AddPlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/squad/top-performers", handler.ListTopPerformers)
	mux.HandleFunc("GET /v1/squad/by-performance/{tier}", handler.ListPlayersByPerformance)
	mux.HandleFunc("GET /v1/squad/expiring-contracts", handler.ListExpiringContracts)

	mux.HandleFunc("GET /v1/trainings/catalog", handler.ListTrainingCatalog)
	mux.HandleFunc("POST /v1/activities/trainings", handler.ScheduleTraining)
	mux.HandleFunc("POST /v1/activities/matches", handler.ScheduleMatch)
	mux.HandleFunc("GET /v1/activities", handler.ListActivitiesForDate)
	mux.HandleFunc("POST /v1/activities/{activityID}/match-result", handler.RecordMatchResult)
	mux.HandleFunc("POST /v1/activities/{activityID}/training-evaluation", handler.EvaluateTraining)
	mux.HandleFunc("POST /v1/activities/{activityID}/training-result", handler.EvaluateTrainingResult)

	mux.HandleFunc("POST /v1/simulation/daily-evaluation", handler.PerformDailyEvaluation)

	mux.HandleFunc("POST /v1/seasons", handler.StartSeason)
	mux.HandleFunc("GET /v1/seasons/current/summary", handler.GetSeasonSummary)
	mux.HandleFunc("GET /v1/seasons/current/game-over", handler.CheckGameOver)

	mux.HandleFunc("POST /v1/transfers/listings", handler.ListPlayerForTransfer)
	mux.HandleFunc("GET /v1/transfers/targets", handler.ListTransferTargets)
	mux.HandleFunc("POST /v1/transfers/offers", handler.MakeTransferOffer)
	mux.HandleFunc("GET /v1/transfers/offers/pending", handler.ListPendingOffers)
	mux.HandleFunc("POST /v1/transfers/offers/{offerID}/response", handler.RespondToTransferOffer)
	mux.HandleFunc("POST /v1/transfers/offers/{offerID}/accept", handler.AcceptTransferOffer)
	mux.HandleFunc("POST /v1/transfers/offers/{offerID}/reject", handler.RejectTransferOffer)
	mux.HandleFunc("POST /v1/transfers/offers/{offerID}/cancel", handler.CancelTransferOffer)

	mux.HandleFunc("POST /v1/contracts/renewals", handler.RenewContract)

	mux.HandleFunc("GET /v1/reports/{name}", handler.GetReport)
}
