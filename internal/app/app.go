package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/domain/cup"
	"github.com/riskibarqy/league-portal/internal/domain/league"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/domain/topscorer"
	cacherepo "github.com/riskibarqy/league-portal/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-portal/internal/infrastructure/storage/disk"
	"github.com/riskibarqy/league-portal/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/league-portal/internal/platform/cache"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App owns the HTTP server and the background pieces that must be started and
// stopped with it.
type App struct {
	Server   *http.Server
	liveFeed *usecase.LiveFeed
	db       *sqlx.DB
	logger   *logging.Logger
}

type repositories struct {
	leagues    league.Repository
	teams      team.Repository
	players    player.Repository
	matches    match.Repository
	events     match.EventRepository
	standings  standing.Repository
	topScorers topscorer.Repository
	cups       cup.Repository
	editions   cup.EditionRepository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	store, err := disk.NewStore(cfg.UploadDir)
	if err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("open upload store: %w", err)
	}

	ids := idgen.NewUUIDGenerator()
	standingSvc := usecase.NewStandingService(repos.standings, repos.leagues, repos.teams, repos.matches, ids)
	liveSvc := usecase.NewLiveService(repos.matches, repos.teams, repos.leagues)
	liveFeed := usecase.NewLiveFeed(liveSvc, usecase.LiveFeedConfig{
		Interval: cfg.LivePollInterval,
		Workers:  cfg.LiveWorkers,
	}, logger)

	handler := httpapi.NewHandler(
		usecase.NewLeagueService(repos.leagues, repos.teams, ids),
		usecase.NewTeamService(repos.teams, repos.leagues, repos.players, ids),
		usecase.NewPlayerService(repos.players, repos.teams, ids),
		usecase.NewMatchService(repos.matches, repos.events, repos.leagues, repos.teams, repos.players, ids),
		standingSvc,
		usecase.NewTopScorerService(repos.topScorers, repos.leagues, repos.players, repos.teams, ids),
		usecase.NewCupService(repos.cups, repos.editions, repos.teams, ids),
		liveSvc,
		liveFeed,
		usecase.NewPageService(repos.leagues, repos.teams, repos.players, repos.matches, repos.events, repos.topScorers, standingSvc),
		usecase.NewUploadService(store, ids, cfg.UploadMaxBytes, cfg.PublicBaseURL),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		MediaDir:           store.Root(),
	})
	if cfg.AdminToken == "" {
		logger.Warn("cms routes disabled", "reason", "ADMIN_TOKEN empty")
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return &App{Server: server, liveFeed: liveFeed, db: db, logger: logger}, nil
}

// Start begins live polling. ctx bounds the poller, not the HTTP server.
func (a *App) Start(ctx context.Context) error {
	if err := a.liveFeed.Start(ctx); err != nil {
		return fmt.Errorf("start live feed: %w", err)
	}
	a.logger.Info("live feed started", "interval", a.liveFeed.Interval().String())
	return nil
}

// Shutdown drains HTTP traffic, then stops the live feed and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	a.liveFeed.Stop()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	var (
		repos repositories
		db    *sqlx.DB
	)

	if cfg.DBEnabled {
		var err error
		db, err = openDB(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if cfg.DBSeedEnabled {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				closeDB(db, logger)
				return repositories{}, nil, err
			}
		}
		repos = repositories{
			leagues:    postgres.NewLeagueRepository(db),
			teams:      postgres.NewTeamRepository(db),
			players:    postgres.NewPlayerRepository(db),
			matches:    postgres.NewMatchRepository(db),
			events:     postgres.NewMatchEventRepository(db),
			standings:  postgres.NewStandingRepository(db),
			topScorers: postgres.NewTopScorerRepository(db),
			cups:       postgres.NewCupRepository(db),
			editions:   postgres.NewCupEditionRepository(db),
		}
		logger.Info("using postgres repositories", "db_name", postgres.DatabaseName(cfg.DBURL))
	} else {
		repos = repositories{
			leagues:    memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:      memory.NewTeamRepository(memory.SeedTeams()),
			players:    memory.NewPlayerRepository(memory.SeedPlayers()),
			matches:    memory.NewMatchRepository(memory.SeedMatches(time.Now())),
			events:     memory.NewMatchEventRepository(memory.SeedMatchEvents()),
			standings:  memory.NewStandingRepository(nil),
			topScorers: memory.NewTopScorerRepository(memory.SeedTopScorers()),
			cups:       memory.NewCupRepository(memory.SeedCups()),
			editions:   memory.NewCupEditionRepository(memory.SeedCupEditions()),
		}
		logger.Info("using in-memory repositories", "reason", "DB_ENABLED=false")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.cups = cacherepo.NewCupRepository(repos.cups, store)
		logger.Info("reference data cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, db, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := postgres.DSN(cfg.DBURL, cfg.DBBinaryParameters)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(postgres.DatabaseName(dsn)),
		otelsql.WithQueryFormatter(postgres.TraceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close postgres failed", "error", err)
	}
}
