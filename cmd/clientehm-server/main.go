package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clientehm/api/internal/config"
	"github.com/clientehm/api/internal/domain/admin"
	"github.com/clientehm/api/internal/platform/auth"
	"github.com/clientehm/api/internal/platform/db"
	"github.com/clientehm/api/internal/platform/events"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clientehm-server",
		Short: "Medical records API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(adminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// connect loads the configuration and opens the pool shared by every
// subcommand.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			ctx := context.Background()
			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			migrator := db.NewMigrator(pool, dir, schema)
			fmt.Printf("Running migrations on schema: %s\n", schema)

			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("schema", "public", "Target schema for migrations")
	upCmd.Flags().String("dir", "", "Path to migrations directory (default MIGRATIONS_DIR)")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			ctx := context.Background()
			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			if dir == "" {
				dir = cfg.MigrationsDir
			}

			statuses, err := db.NewMigrator(pool, dir, schema).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for schema: %s\n", schema)
			fmt.Print(formatStatus(statuses))
			return nil
		},
	}
	statusCmd.Flags().String("schema", "public", "Target schema for migrations")
	statusCmd.Flags().String("dir", "", "Path to migrations directory (default MIGRATIONS_DIR)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func formatStatus(statuses []db.MigrationStatus) string {
	out := fmt.Sprintf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
	out += "---------- ---------------------------------------- ---------- --------------------\n"
	for _, s := range statuses {
		status := "pending"
		appliedAt := ""
		if s.Applied {
			status = "applied"
			if s.AppliedAt != nil {
				appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
		}
		out += fmt.Sprintf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
	}
	return out
}

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register an administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &admin.RegisterRequest{}
			req.Email, _ = cmd.Flags().GetString("email")
			req.Senha, _ = cmd.Flags().GetString("senha")
			if nome, _ := cmd.Flags().GetString("nome"); nome != "" {
				req.Nome = &nome
			}
			if kw, _ := cmd.Flags().GetString("palavra-chave"); kw != "" {
				req.PalavraChave = &kw
			}
			if req.Email == "" || req.Senha == "" {
				return fmt.Errorf("--email and --senha are required")
			}

			ctx := context.Background()
			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := cfg.Validate(); err != nil {
				return err
			}

			svc := admin.NewService(
				admin.NewRepo(pool),
				auth.NewHasher(cfg.BcryptCost, cfg.PasswordMinLength),
				auth.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTTTL),
				events.NewBus(events.NopPublisher{}, zerolog.Nop()),
			)
			created, err := svc.Register(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create administrator: %w", err)
			}

			fmt.Printf("Administrator created: %s (%s)\n", created.ID, created.Email)
			return nil
		},
	}
	createCmd.Flags().String("email", "", "Login e-mail")
	createCmd.Flags().String("senha", "", "Password")
	createCmd.Flags().String("nome", "", "Display name")
	createCmd.Flags().String("palavra-chave", "", "Recovery keyword")
	cmd.AddCommand(createCmd)

	return cmd
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		logger = logger.Level(lvl)
	}
	return logger
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}
	if cfg.UsesDevSecret() {
		logger.Warn().Msg("JWT_SECRET not set, signing tokens with the development secret")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Events
	var pub events.Publisher = events.NopPublisher{}
	if cfg.KafkaEnabled() {
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing domain events to kafka")
	}
	bus := events.NewBus(pub, logger)
	defer func() {
		if err := bus.Close(); err != nil {
			logger.Warn().Err(err).Msg("close event publisher")
		}
	}()

	svcs := newServices(cfg, pool, bus)
	e := newRouter(cfg, logger, svcs)
	e.GET("/health/db", db.HealthHandler(pool, db.PoolStatsFunc(pool)))

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil {
			logger.Info().Err(err).Msg("server stopped accepting connections")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

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
