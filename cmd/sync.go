package cmd

import (
	"context"
	"fmt"

	"github.com/mangelajo/musicevents/core/config"
	"github.com/mangelajo/musicevents/core/database"
	"github.com/mangelajo/musicevents/core/logger"
	"github.com/mangelajo/musicevents/core/storage"
	"github.com/mangelajo/musicevents/feature/events/images"
	"github.com/mangelajo/musicevents/feature/events/models"
	"github.com/mangelajo/musicevents/feature/events/store"
	"github.com/mangelajo/musicevents/feature/sync"
	"github.com/mangelajo/musicevents/feature/sync/cafeberlin"
	"github.com/mangelajo/musicevents/feature/sync/riviera"
	"github.com/mangelajo/musicevents/feature/sync/ticketmaster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync ticketmaster command
	tmState  string
	tmAPIKey string
	tmSize   int
)

// syncCmd is the parent command for all per-source sync runs.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync events from external sources",
	Long: `Sync pulls event listings from one external source, reconciles them
against the catalog and prints a created/updated/errors summary.
A run exits non-zero only when the source cannot be reached at all or its
venue cannot be bootstrapped; individual bad listings are counted and skipped.`,
}

var syncTicketmasterCmd = &cobra.Command{
	Use:   "ticketmaster <city>",
	Short: "Sync events from the Ticketmaster Discovery API",
	Long: `Sync music events for one city from the Ticketmaster Discovery API.

Examples:
  # Sync Madrid using the configured API key
  musicevents sync ticketmaster Madrid

  # Sync a US city with an explicit state code and key
  musicevents sync ticketmaster "San Francisco" --state CA --api-key KEY`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newSyncEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		tmCfg := env.cfg.Ticketmaster
		if tmAPIKey != "" {
			tmCfg.APIKey = tmAPIKey
		}
		size := tmCfg.Size
		if tmSize > 0 {
			size = tmSize
		}

		syncer := ticketmaster.NewSyncer(
			ticketmaster.NewClient(tmCfg), env.rec, env.logger, args[0], tmState, size)
		res, err := syncer.Sync(cmd.Context())
		fmt.Println(res.String())
		return err
	},
}

var syncRivieraCmd = &cobra.Command{
	Use:   "riviera",
	Short: "Sync events from the La Riviera listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newSyncEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		syncer := riviera.NewSyncer(riviera.NewScraper(), env.rec, env.logger)
		res, err := syncer.Sync(cmd.Context())
		fmt.Println(res.String())
		return err
	},
}

var syncCafeBerlinCmd = &cobra.Command{
	Use:   "cafeberlin",
	Short: "Sync events from the Café Berlín listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newSyncEnv()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		syncer := cafeberlin.NewSyncer(cafeberlin.NewScraper(), env.rec, env.logger)
		res, err := syncer.Sync(cmd.Context())
		fmt.Println(res.String())
		return err
	},
}

func init() {
	syncTicketmasterCmd.Flags().StringVar(&tmState, "state", "", "State code filter (e.g. CA)")
	syncTicketmasterCmd.Flags().StringVar(&tmAPIKey, "api-key", "", "Discovery API key (overrides configuration)")
	syncTicketmasterCmd.Flags().IntVar(&tmSize, "size", 0, "Number of events to fetch (overrides configuration)")

	syncCmd.AddCommand(syncTicketmasterCmd)
	syncCmd.AddCommand(syncRivieraCmd)
	syncCmd.AddCommand(syncCafeBerlinCmd)
	RootCmd.AddCommand(syncCmd)
}

// syncEnv bundles the collaborators every sync run needs.
type syncEnv struct {
	cfg    *config.Config
	logger *zap.Logger
	rec    *sync.Reconciler
}

func newSyncEnv() (*syncEnv, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	// A run without object storage still syncs; it just skips images.
	var media images.Store
	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("storage client unavailable, images disabled", zap.Error(err))
	} else if err := storage.EnsureBucket(context.Background(), client, cfg.Storage.Bucket); err != nil {
		logg.Warn("media bucket unavailable, images disabled", zap.Error(err))
	} else {
		media = images.NewService(client, cfg.Storage.Bucket, logg)
	}

	return &syncEnv{
		cfg:    cfg,
		logger: logg,
		rec:    sync.NewReconciler(store.New(db), media, logg),
	}, nil
}
