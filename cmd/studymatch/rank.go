package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/studymatch/internal/config"
	"github.com/jordan/studymatch/internal/matching"
	"github.com/jordan/studymatch/internal/observability"
	"github.com/jordan/studymatch/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate profiles against a reference profile",
	Long:  "Scores every candidate profile against the reference profile, filters out weak matches and outputs the best candidates sorted by total score.",
	RunE:  runRank,
}

var (
	rankReference  string
	rankCandidates string
	rankOutput     string
	rankConfigPath string
	rankLimit      int
	rankMinScore   int
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankReference, "profile", "p", "", "Path to reference study profile JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to JSON file with an array of candidate profiles (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to JSON config file")
	rankCmd.Flags().IntVar(&rankLimit, "limit", matching.DefaultLimit, "Maximum number of candidates to return")
	rankCmd.Flags().IntVar(&rankMinScore, "min-score", matching.DefaultMinScore, "Minimum total score to include a candidate")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print formatted ranking summary to stderr")

	if err := rankCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	reference, err := loadProfile(rankReference)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(rankCandidates)
	if err != nil {
		return fmt.Errorf("failed to read candidates file %s: %w", rankCandidates, err)
	}
	var candidates []types.Profile
	if err := json.Unmarshal(content, &candidates); err != nil {
		return fmt.Errorf("failed to unmarshal candidates JSON from %s: %w", rankCandidates, err)
	}

	scorer := matching.NewScorer(matching.DefaultWeights())
	opts := matching.RankOptions{Limit: rankLimit, MinScore: rankMinScore}

	if rankConfigPath != "" {
		cfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if w := weightsFromOverrides(cfg.Weights); w != nil {
			scorer = matching.NewScorer(*w)
		}
		// Explicit flags beat config file values.
		if cfg.Limit != 0 && !cmd.Flags().Changed("limit") {
			opts.Limit = cfg.Limit
		}
		if cfg.MinScore != 0 && !cmd.Flags().Changed("min-score") {
			opts.MinScore = cfg.MinScore
		}
	}

	ranked := scorer.RankCandidates(reference, candidates, opts)

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile("REFERENCE PROFILE", reference)
		printer.PrintRankedCandidates(ranked)
	}

	type rankedEntry struct {
		Profile types.Profile    `json:"profile"`
		Score   types.MatchScore `json:"score"`
		Label   string           `json:"label"`
		Color   string           `json:"color"`
	}
	entries := make([]rankedEntry, 0, len(ranked))
	for _, rc := range ranked {
		entries = append(entries, rankedEntry{
			Profile: rc.Profile,
			Score:   rc.Score,
			Label:   matching.ScoreLabel(rc.Score.TotalScore),
			Color:   matching.ScoreColor(rc.Score.TotalScore),
		})
	}

	jsonOutput, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked candidates to JSON: %w", err)
	}

	if err := writeOutput(rankOutput, jsonOutput); err != nil {
		return err
	}

	if rankOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d candidates to %s\n", len(entries), len(candidates), rankOutput)
	}
	return nil
}
