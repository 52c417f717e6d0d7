package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jordan/studymatch/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate study profile JSON files against the schema",
	Long:  "Validates one or more study profile JSON files against the bundled profile schema and reports per-field errors.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	failures := 0
	for _, path := range args {
		if err := schemas.ValidateProfileFile(path); err != nil {
			failures++
			_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "%s: ok\n", path)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed validation", failures, len(args))
	}
	return nil
}
