package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edooconnect/studycost/internal/calculation"
	"github.com/edooconnect/studycost/internal/config"
	"github.com/edooconnect/studycost/internal/domain"
	"github.com/edooconnect/studycost/internal/output"
	"github.com/edooconnect/studycost/internal/refdata"
	"github.com/edooconnect/studycost/internal/server"
	"github.com/edooconnect/studycost/internal/store"
	"github.com/edooconnect/studycost/internal/wizard"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studycost",
	Short: "Study abroad budget planner",
	Long:  "Deterministic cost, cash flow and risk analysis for studying abroad",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [profile-file]",
	Short: "Analyze a profile file and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile(args[0])
		if err != nil {
			return err
		}

		tablesPath, _ := cmd.Flags().GetString("tables")
		tables, err := refdata.LoadOrDefault(tablesPath)
		if err != nil {
			return err
		}

		months, _ := cmd.Flags().GetInt("months")
		engine := calculation.NewEngine(tables)
		analysis, err := engine.AnalyzeWithDuration(*profile, months)
		if err != nil {
			return err
		}

		report := calculation.BuildPremiumReport(analysis, *profile, true, time.Now().UTC())
		format, _ := cmd.Flags().GetString("format")
		return output.NewReportGenerator().GenerateReport(report, format)
	},
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Run the interactive budget wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		tablesPath, _ := cmd.Flags().GetString("tables")
		tables, err := refdata.LoadOrDefault(tablesPath)
		if err != nil {
			return err
		}

		report, err := wizard.Run(tables)
		if err != nil {
			return err
		}
		if report == nil {
			// Aborted before the last step.
			return nil
		}

		format, _ := cmd.Flags().GetString("format")
		return output.NewReportGenerator().GenerateReport(report, format)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		tables, err := refdata.LoadOrDefault(cfg.CostTablePath)
		if err != nil {
			return err
		}

		var st store.Store
		if cfg.DatabaseURL != "" {
			pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pg.Close()
			if err := pg.Migrate(context.Background()); err != nil {
				return err
			}
			st = pg
		} else {
			log.Println("DATABASE_URL not set, using in-memory store")
			st = store.NewMemory()
		}

		var cache store.ReportCache
		if cfg.RedisAddr != "" {
			cache = store.NewRedisCache(cfg.RedisAddr)
		} else {
			log.Println("REDIS_ADDR not set, using in-memory report cache")
			cache = store.NewMemoryCache()
		}

		return server.New(cfg, st, cache, tables).Start()
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "studycost %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func loadProfile(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}

func init() {
	analyzeCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	analyzeCmd.Flags().String("tables", "", "Path to a YAML cost table override")
	analyzeCmd.Flags().Int("months", calculation.DefaultProjectionMonths, "Projection duration in months")

	wizardCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	wizardCmd.Flags().String("tables", "", "Path to a YAML cost table override")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
