// Command medidash runs the dashboard reports from the command line over the
// same datasets the server loads.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/dataset"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/report"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/config"
	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/platform/logging"
)

var (
	logger  *zap.Logger
	cfg     config.Config
	verbose bool
	timeout time.Duration

	homeHealthPath string
	hospicePath    string
	hospitalPath   string
)

var rootCmd = &cobra.Command{
	Use:   "medidash",
	Short: "Medicare provider dashboard reports",
	Long: `medidash loads the CMS home health, hospice and hospital files and prints
the dashboard reports: the per-state home health summary, hospice rankings,
hospital category breakdowns and recent health news.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env.local", ".env")

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config load: %w", err)
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, true)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")
	rootCmd.PersistentFlags().StringVar(&homeHealthPath, "home-health", "", "Home health file or URL (default: HOME_HEALTH_DATA)")
	rootCmd.PersistentFlags().StringVar(&hospicePath, "hospice", "", "Hospice file or URL (default: HOSPICE_DATA)")
	rootCmd.PersistentFlags().StringVar(&hospitalPath, "hospital", "", "Hospital file or URL (default: HOSPITAL_DATA)")

	rootCmd.AddCommand(summaryCmd, rankingsCmd, breakdownCmd, exportCmd, newsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sources() dataset.Sources {
	src := dataset.Sources{
		HomeHealth: cfg.HomeHealthData,
		Hospice:    cfg.HospiceData,
		Hospital:   cfg.HospitalData,
	}
	if homeHealthPath != "" {
		src.HomeHealth = homeHealthPath
	}
	if hospicePath != "" {
		src.Hospice = hospicePath
	}
	if hospitalPath != "" {
		src.Hospital = hospitalPath
	}
	return src
}

// loadDashboard loads every dataset; reports only need the snapshot once.
func loadDashboard(ctx context.Context) (*report.Dashboard, error) {
	loader := dataset.NewLoader(dataset.NewHTTPFetcher(cfg.DatasetFetchTimeout), logger)
	snap, err := loader.Load(ctx, sources())
	if err != nil {
		return nil, err
	}
	return report.NewDashboard(snap), nil
}
