package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/config"
	"github.com/bizgrid/bizgrid/internal/apisrv/db"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/dberror"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/models"
	"github.com/bizgrid/bizgrid/internal/apisrv/seed"
	"github.com/bizgrid/bizgrid/internal/apisrv/server"
)

var (
	configFile string
	seedFile   string
)

var errPortNotDefined = errors.New("server port not defined")

var rootCmd = &cobra.Command{
	Use:          "bizgridsrv",
	Short:        "BizGrid multi-tenant business data API server",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the config file")
	serveCmd.Flags().StringVar(&seedFile, "seed", "", "path to a seed manifest (dev only)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	slog := log.With().Str("state", "init").Logger()

	slog.Info().Str("config_file", configFile).Msg("loading config")
	if err := config.LoadConfig(configFile); err != nil {
		slog.Error().Str("config_file", configFile).Err(err).Msg("unable to load config file")
		return err
	}
	if config.Config().ServerPort == "" {
		slog.Error().Msg("server port not defined")
		return errPortNotDefined
	}

	store, err := db.Init(ctx, config.Config().DBDsn)
	if err != nil {
		slog.Error().Err(err).Msg("unable to open store")
		return err
	}
	defer store.Close()

	if config.Config().SingleTenantMode {
		slog.Info().Msg("single tenant mode enabled")
		if err := createDefaultTenant(ctx, store); err != nil {
			slog.Error().Err(err).Msg("unable to create default tenant")
			return err
		}
	}

	manifest := seedFile
	if manifest == "" {
		manifest = config.Config().SeedFile
	}
	if manifest != "" {
		if err := seed.Load(ctx, store, manifest); err != nil {
			slog.Error().Str("seed_file", manifest).Err(err).Msg("unable to seed store")
			return err
		}
	}

	s, err := server.CreateNewServer(store)
	if err != nil {
		slog.Error().Err(err).Msg("unable to create server")
		return err
	}
	s.MountHandlers()

	slog.Info().Str("port", config.Config().ServerPort).Msg("listening")
	return http.ListenAndServe(":"+config.Config().ServerPort, s.Router)
}

func createDefaultTenant(ctx context.Context, store db.Store) error {
	tenantID := apicommon.TenantId(config.Config().DefaultTenantID)
	if tenantID == "" {
		tenantID = apicommon.NewTenantId()
	}
	ctx = db.StoreCtx(ctx, store)
	err := store.CreateTenant(ctx, &models.Tenant{TenantID: tenantID, Name: "default"})
	if err != nil && !errors.Is(err, dberror.ErrAlreadyExists) {
		return err
	}
	log.Info().Str("tenant_id", tenantID.String()).Msg("default tenant ready")
	return nil
}
