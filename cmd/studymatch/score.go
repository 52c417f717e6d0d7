package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/studymatch/internal/matching"
	"github.com/jordan/studymatch/internal/observability"
	"github.com/jordan/studymatch/internal/schemas"
	"github.com/jordan/studymatch/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score compatibility between two study profiles",
	Long:  "Deterministically scores two study profile JSON files against each other, producing a MatchScore JSON with the total, per-factor breakdown and match details.",
	RunE:  runScore,
}

var (
	scoreProfileA string
	scoreProfileB string
	scoreOutput   string
	scoreVerbose  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfileA, "profile-a", "a", "", "Path to first study profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreProfileB, "profile-b", "b", "", "Path to second study profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output MatchScore JSON file (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print formatted score summary to stderr")

	if err := scoreCmd.MarkFlagRequired("profile-a"); err != nil {
		panic(fmt.Sprintf("failed to mark profile-a flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("profile-b"); err != nil {
		panic(fmt.Sprintf("failed to mark profile-b flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	profileA, err := loadProfile(scoreProfileA)
	if err != nil {
		return err
	}
	profileB, err := loadProfile(scoreProfileB)
	if err != nil {
		return err
	}

	score := matching.ScoreCompatibility(profileA, profileB)

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile("PROFILE A", profileA)
		printer.PrintProfile("PROFILE B", profileB)
		printer.PrintMatchScore(score)
	}

	result := struct {
		types.MatchScore
		Label string `json:"label"`
		Color string `json:"color"`
	}{
		MatchScore: score,
		Label:      matching.ScoreLabel(score.TotalScore),
		Color:      matching.ScoreColor(score.TotalScore),
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match score to JSON: %w", err)
	}

	return writeOutput(scoreOutput, jsonOutput)
}

// loadProfile reads and decodes one study profile JSON file, validating it
// against the bundled schema when the schema is reachable.
func loadProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("profile %s failed schema validation: %w", path, err)
		}
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON from %s: %w", path, err)
	}

	return &profile, nil
}

// writeOutput writes JSON to the given path, or stdout when the path is empty.
func writeOutput(path string, jsonOutput []byte) error {
	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := os.WriteFile(path, append(jsonOutput, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
