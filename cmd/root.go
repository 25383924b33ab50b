package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "messdelivery/internal/adapters/in/http"
	"messdelivery/internal/adapters/out/postgres"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewRootCommand builds the messdelivery CLI.
func NewRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "messdelivery",
		Short:         "Delivery lifecycle service for mess meal subscriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./config.yaml)")

	load := func() (Config, *zap.Logger, error) {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return Config{}, nil, err
		}
		if err = cfg.Validate(); err != nil {
			return Config{}, nil, err
		}
		return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
	}

	root.AddCommand(newServeCommand(load), newMigrateCommand(load), newTokenCommand(load))
	return root
}

type configLoader func() (Config, *zap.Logger, error)

func newServeCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the outbox relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg Config, log *zap.Logger) error {
	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	root, err := NewCompositionRoot(ctx, cfg, log, db)
	if err != nil {
		return err
	}
	defer func() {
		if err := root.Close(context.Background()); err != nil {
			log.Warn("Failed to release adapters", zap.Error(err))
		}
	}()

	e, err := httpadapter.NewRouter(ctx, root.CreateHTTPServer(), root.RouterConfig())
	if err != nil {
		return err
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%d", cfg.HTTP.Port)
		log.Info("HTTP server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		log.Info("Shutting down HTTP server")
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newMigrateCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg.Database)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("Schema is up to date")
			return nil
		},
	}
}

// newTokenCommand prints an access token for an existing profile. It only
// works with the jwt provider and is meant for local development.
func newTokenCommand(load configLoader) *cobra.Command {
	var (
		profileID string
		role      string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token for a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			if cfg.Auth.Provider != "jwt" {
				return fmt.Errorf("token issuing needs auth.provider=jwt, got %q", cfg.Auth.Provider)
			}
			return issueDevToken(cmd, cfg.Auth, profileID, role)
		},
	}
	cmd.Flags().StringVar(&profileID, "profile-id", "", "profile id to put in the token subject")
	cmd.Flags().StringVar(&role, "role", "", "student, mess_owner or delivery_personnel")
	_ = cmd.MarkFlagRequired("profile-id")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func issueDevToken(cmd *cobra.Command, cfg AuthConfig, profileID, roleName string) error {
	id, err := kernel.UUIDFromString(profileID)
	if err != nil {
		return err
	}
	role, err := profile.ParseRole(roleName)
	if err != nil {
		return err
	}

	tokens, err := newJWTTokens(cfg)
	if err != nil {
		return err
	}
	token, expiresAt, err := tokens.Issue(id, role, time.Now().UTC())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n# expires %s\n", token, expiresAt.Format(time.RFC3339))
	return err
}

func openDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}
