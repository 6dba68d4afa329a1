// Package cli implements the budgetctl admin commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/infra/cache"
	"github.com/budget-tracker/backend/internal/infra/db"
)

// app carries the state shared by every subcommand.
type app struct {
	v   *viper.Viper
	out io.Writer
	err io.Writer
}

// NewRootCommand builds the budgetctl command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:   viper.New(),
		out: out,
		err: errOut,
	}

	root := &cobra.Command{
		Use:   "budgetctl",
		Short: "Administer the budget tracker record store",
		Long: `budgetctl runs maintenance tasks and read-only reports against the
budget tracker database without going through the HTTP API.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	// Global flags
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")
	root.PersistentFlags().String("db-driver", "", "database driver (postgres, sqlite), overrides DB_DRIVER")
	root.PersistentFlags().String("db-path", "", "sqlite database file, overrides DB_PATH")
	root.PersistentFlags().Bool("json", false, "print results as JSON")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", root.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("db.driver", root.PersistentFlags().Lookup("db-driver"))
	_ = a.v.BindPFlag("db.path", root.PersistentFlags().Lookup("db-path"))
	_ = a.v.BindPFlag("output.json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(a.migrateCmd())
	root.AddCommand(a.summaryCmd())
	root.AddCommand(a.analysisCmd())
	root.AddCommand(a.debtsCmd())
	root.AddCommand(a.payCmd())

	return root
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// BUDGET_DB_DRIVER, BUDGET_LOGGING_LEVEL, ...
	a.v.SetEnvPrefix("BUDGET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	return a.setupLogging()
}

func (a *app) setupLogging() error {
	var level slog.Level
	switch a.v.GetString("logging.level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", a.v.GetString("logging.level"))
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch a.v.GetString("logging.format") {
	case "text":
		handler = slog.NewTextHandler(a.err, opts)
	case "json":
		handler = slog.NewJSONHandler(a.err, opts)
	default:
		return fmt.Errorf("invalid log format: %s", a.v.GetString("logging.format"))
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// databaseConfig starts from the service environment and applies the CLI overrides.
func (a *app) databaseConfig() config.DatabaseConfig {
	cfg := config.Load().Database
	if driver := a.v.GetString("db.driver"); driver != "" {
		cfg.Driver = driver
	}
	if path := a.v.GetString("db.path"); path != "" {
		cfg.Path = path
		if a.v.GetString("db.driver") == "" {
			cfg.Driver = config.DriverSQLite
		}
	}
	return cfg
}

// openStore connects to the database and makes sure the schema exists.
func (a *app) openStore() (*db.Database, error) {
	cfg := a.databaseConfig()

	database, err := db.NewConnection(&cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

// dashboardCache opens the same dashboard cache the API server reads, so CLI writes invalidate it.
func (a *app) dashboardCache() (adapter.DashboardCache, func()) {
	return cache.NewDashboardCache(&config.Load().Redis)
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("output.json")
}
