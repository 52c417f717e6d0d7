package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/studymatch/internal/config"
	"github.com/jordan/studymatch/internal/matching"
	"github.com/jordan/studymatch/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for accounts, study profiles and compatibility matching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Config{
		Port:     servePort,
		Limit:    matching.DefaultLimit,
		MinScore: matching.DefaultMinScore,
	})
	if err := merged.Validate(); err != nil {
		return err
	}

	databaseURL := merged.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:        merged.Port,
		DatabaseURL: databaseURL,
		Limit:       merged.Limit,
		MinScore:    merged.MinScore,
		Weights:     weightsFromOverrides(merged.Weights),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// weightsFromOverrides converts a validated override block into a weight
// profile. Callers must run Config.Validate first, which guarantees all
// five factors are set.
func weightsFromOverrides(w *config.WeightOverrides) *matching.Weights {
	if w == nil {
		return nil
	}
	return &matching.Weights{
		Subjects:     *w.Subjects,
		Timezone:     *w.Timezone,
		SkillLevel:   *w.SkillLevel,
		Availability: *w.Availability,
		StudyStyle:   *w.StudyStyle,
	}
}
