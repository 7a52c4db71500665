package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firewatch-backend/lib/configutil"
	"firewatch-backend/lib/restyutil"
	"firewatch-backend/lib/scrapers/ncleg"
	"firewatch-backend/lib/sqliteutil"
	"firewatch-backend/lib/telemetry"
	"firewatch-backend/lib/util/serviceutil"
	"firewatch-backend/services/legislature"
	"firewatch-backend/services/legislature/db"
)

var rootCmd = &cobra.Command{
	Use:   "firewatch-cli",
	Short: "firewatch-cli scrapes the general assembly site and reports on firefighter-related bills.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

var (
	configPath *string
	dbPath     *string
	verbose    *bool
	capture    *bool
)

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The service config to load.")
	dbPath = rootCmd.PersistentFlags().String("db", "firewatch.db", "The database to record build history to.")
	verbose = rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging.")
	capture = rootCmd.PersistentFlags().Bool("capture", false, "Dump raw page fetches to .dev/resty/ncleg for debugging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupService builds the whole stack from the config and db flags.
// The caller owns closing the returned database.
func setupService() (*legislature.Service, *sql.DB) {
	cfg, err := configutil.ReadConfig[legislature.Config](*configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	cfg = cfg.WithDefaults()

	if *capture {
		ncleg.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/ncleg"))
	}

	client, err := ncleg.NewClient(ncleg.ClientOptions{
		BaseURL:   cfg.BaseURL,
		Chamber:   cfg.Chamber,
		Session:   cfg.Session,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout(),
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize scrape client", err)
	}

	database, err := sqliteutil.OpenDB(db.Schema, *dbPath)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}

	service, err := legislature.NewService(client, cfg, database)
	if err != nil {
		database.Close()
		serviceutil.Fatal("failed to initialize service", err)
	}
	return service, database
}
