package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/draft-assistant/internal/config"
	"github.com/riskibarqy/draft-assistant/internal/domain/draft"
	"github.com/riskibarqy/draft-assistant/internal/domain/player"
	"github.com/riskibarqy/draft-assistant/internal/domain/replacement"
	cacherepo "github.com/riskibarqy/draft-assistant/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/draft-assistant/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/draft-assistant/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/draft-assistant/internal/platform/cache"
	"github.com/riskibarqy/draft-assistant/internal/platform/logging"
	"github.com/riskibarqy/draft-assistant/internal/usecase"
)

// Application bundles the wired services. With DB_URL set the repositories
// are postgres-backed; without it everything runs on seeded in-memory
// repositories, which is enough for a single live draft.
type Application struct {
	Config       config.Config
	Logger       *logging.Logger
	Drafts       *usecase.DraftService
	Replacements *usecase.ReplacementService
	Valuations   *usecase.ValuationService

	db *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	app := &Application{Config: cfg, Logger: logger}

	var (
		draftRepo      draft.Repository
		levelRepo      replacement.Repository
		projectionRepo player.ProjectionRepository
	)

	if cfg.DBURL != "" {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.db = db

		draftRepo = postgres.NewDraftRepository(db)
		levelRepo = postgres.NewReplacementRepository(db)
		projectionRepo = postgres.NewProjectionRepository(db)
		logger.Info("storage ready", "backend", "postgres", "db", dbNameFromURL(cfg.DBURL))
	} else {
		draftRepo = memory.NewDraftRepository()
		levelRepo = memory.NewReplacementRepository()
		projectionRepo = memory.NewProjectionRepository(memory.SeedProjections())
		logger.Info("storage ready", "backend", "memory")
	}

	if cfg.CacheEnabled {
		projectionRepo = cacherepo.NewProjectionRepository(projectionRepo, basecache.NewStore(cfg.CacheTTL))
	}

	app.Drafts = usecase.NewDraftService(draftRepo, levelRepo, projectionRepo, cfg.ReplacementRanks, logger)
	app.Replacements = usecase.NewReplacementService(levelRepo, projectionRepo, cfg.RecomputeMaxWorkers, logger)
	app.Valuations = usecase.NewValuationService(app.Drafts, levelRepo, cfg.ReplacementStrict, logger)

	return app, nil
}

func (a *Application) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
