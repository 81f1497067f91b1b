package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/franchise-manager/internal/config"
	"github.com/riskibarqy/franchise-manager/internal/domain/activity"
	"github.com/riskibarqy/franchise-manager/internal/domain/catalog"
	"github.com/riskibarqy/franchise-manager/internal/domain/gamestate"
	"github.com/riskibarqy/franchise-manager/internal/domain/player"
	"github.com/riskibarqy/franchise-manager/internal/domain/season"
	"github.com/riskibarqy/franchise-manager/internal/domain/team"
	"github.com/riskibarqy/franchise-manager/internal/domain/transfer"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/dataset"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/report"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/franchise-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/franchise-manager/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/franchise-manager/internal/platform/id"
	"github.com/riskibarqy/franchise-manager/internal/platform/random"
	"github.com/riskibarqy/franchise-manager/internal/usecase"
)

type repositories struct {
	state      gamestate.Repository
	teams      team.Repository
	players    player.Repository
	activities activity.Repository
	seasons    season.Repository
	transfers  transfer.Repository
}

// NewHTTPServer wires the engine and returns the listener plus a
// cleanup that releases infrastructure resources.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(context.Context) error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	repos, templates, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DatasetPath != "" {
		loader := dataset.NewLoader(repos.teams, repos.players, logger)
		loader.SetWorkers(cfg.DatasetWorkers)
		loaded, err := loader.Load(context.Background(), cfg.DatasetPath)
		if err != nil {
			_ = cleanup(context.Background())
			return nil, nil, fmt.Errorf("load dataset: %w", err)
		}
		if len(loaded.Templates) > 0 {
			templates = catalog.New(loaded.Templates)
		}
		logger.Info("dataset loaded",
			"path", cfg.DatasetPath,
			"teams", len(loaded.Teams),
			"players", len(loaded.Players),
			"templates", len(loaded.Templates),
		)
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		generated, err := random.NewSeed()
		if err != nil {
			_ = cleanup(context.Background())
			return nil, nil, fmt.Errorf("generate random seed: %w", err)
		}
		seed = generated
	}
	rng := random.NewSeeded(seed)
	ids := idgen.NewRandomGenerator()
	sink := report.NewXMLSink(cfg.ReportDir, logger)

	rosterSvc := usecase.NewRosterService(repos.state, repos.teams, repos.players, repos.activities, ids, logger)
	schedulerSvc := usecase.NewSchedulerService(repos.state, repos.teams, repos.players, repos.activities, templates, ids, logger)
	seasonSvc := usecase.NewSeasonService(repos.state, repos.teams, repos.players, repos.seasons, ids, logger)
	simulationSvc := usecase.NewSimulationService(repos.state, repos.teams, repos.players, repos.activities, seasonSvc, templates, sink, rng, logger)
	transferSvc := usecase.NewTransferService(repos.state, repos.teams, repos.players, repos.transfers, ids, rng, logger)

	simulationSvc.OnPlayerInjured(func(event usecase.PlayerInjuredEvent) {
		logger.Info("player injured", "player_id", event.Player.ID, "injury_date", event.InjuryDate.Format("2006-01-02"))
	})
	simulationSvc.OnActivityCompleted(func(event usecase.ActivityCompletedEvent) {
		logger.Info("activity completed",
			"activity_id", event.Activity.ID,
			"type", string(event.Activity.Type),
			"success", event.Success,
		)
	})

	handler := httpapi.NewHandler(rosterSvc, schedulerSvc, simulationSvc, seasonSvc, transferSvc, sink, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

// buildRepositories picks the persistence backend: postgres when
// DB_URL is set, otherwise seeded in-memory stores.
func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, *catalog.Catalog, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	if cfg.DBURL == "" {
		logger.Info("using in-memory repositories", "start_date", cfg.GameStartDate.Format("2006-01-02"))
		return repositories{
			state:      memory.NewGameStateRepository(cfg.GameStartDate),
			teams:      memory.NewTeamRepository(memory.SeedTeams()),
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
			activities: memory.NewActivityRepository(nil),
			seasons:    memory.NewSeasonRepository(),
			transfers:  memory.NewTransferRepository(),
		}, catalog.New(memory.SeedTemplates()), noop, nil
	}

	db, err := connectDB(cfg.DBURL)
	if err != nil {
		return repositories{}, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("using postgres repositories", "database", dbNameFromURL(cfg.DBURL))
	cleanup := func(context.Context) error { return db.Close() }

	return repositories{
		state:      postgres.NewGameStateRepository(db),
		teams:      postgres.NewTeamRepository(db),
		players:    postgres.NewPlayerRepository(db),
		activities: postgres.NewActivityRepository(db),
		seasons:    postgres.NewSeasonRepository(db),
		transfers:  postgres.NewTransferRepository(db),
	}, catalog.New(memory.SeedTemplates()), cleanup, nil
}

func connectDB(dbURL string) (*sqlx.DB, error) {
	return otelsqlx.Connect("postgres", normalizeDBURL(dbURL, true),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
}
