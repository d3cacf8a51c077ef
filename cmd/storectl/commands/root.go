package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"storefront/internal/config"
	"storefront/internal/logger"
)

var (
	// Global flags
	dbURL     string
	logLevel  string
	logFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Operational tasks for the storefront database",
	Long: `storectl prepares a storefront database.

Commands:
  migrate - Apply the schema
  seed    - Insert reference data (employees, payment methods, sample catalog)

Connection settings come from --db, DATABASE_URL, or the DB_* variables,
optionally loaded from a .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (overrides DATABASE_URL and DB_*)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console|json)")

	rootCmd.AddCommand(migrateCmd, seedCmd)
}

// connect opens the pool and returns a context carrying the command logger
func connect(cmd *cobra.Command) (context.Context, *pgxpool.Pool, error) {
	log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel, logFormat)
	ctx := log.WithContext(cmd.Context())

	cfg := &config.DBConfig{DSN: dbURL}
	if dbURL == "" {
		loaded, err := config.LoadDBConfig()
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	pool, err := config.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return ctx, pool, nil
}
