package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/c14220110/gassehat-backend/config"
	"github.com/c14220110/gassehat-backend/internal/obat/services"
	"github.com/c14220110/gassehat-backend/internal/routes"
	"github.com/c14220110/gassehat-backend/pkg/storage/database"
	"github.com/c14220110/gassehat-backend/ws"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "gassehat",
		Short:        "GasSehat clinic backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(importObatCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			db, _, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			logger.Info().Str("driver", cfg.DBDriver).Msg("migration done")
			return nil
		},
	}
}

func importObatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-obat",
		Short: "Import the medicine catalogue from an xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			db, _, err := openDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := services.NewObatService(db).ImportExcel(cmd.Context(), f)
			if err != nil {
				return err
			}
			logger.Info().Int("rows", n).Str("file", path).Msg("obat imported")
			return nil
		},
	}
	cmd.Flags().String("file", "", "Path to the .xlsx file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// setup memuat konfigurasi dan menyiapkan logger global.
func setup() (*config.Config, zerolog.Logger, error) {
	cfg := config.LoadConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid config")
		return nil, logger, err
	}
	if cfg.EphemeralSecret {
		logger.Warn().Msg("JWT_SECRET kosong, memakai secret acak. Token tidak berlaku setelah restart.")
	}
	return cfg, logger, nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, database.Dialect, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	db, dialect, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(ctx, db, dialect); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("migrate: %w", err)
	}
	return db, dialect, nil
}

func runServer() error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, dialect, err := openDB(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer db.Close()
	logger.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	hub := ws.NewHub(logger)
	go hub.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	routes.Init(e, routes.Deps{
		Config:  cfg,
		DB:      db,
		Dialect: dialect,
		Hub:     hub,
		Logger:  logger,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
