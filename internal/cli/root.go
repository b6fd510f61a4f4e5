package cli

import (
	"github.com/spf13/cobra"

	"garden-planner-backend/internal/companion"
)

var (
	// Global flags
	jsonOutput  bool
	datasetPath string
)

// rootCmd is the root command for gardenplan.
var rootCmd = &cobra.Command{
	Use:     "gardenplan",
	Version: "dev",
	Short:   "Plan a companion-planted square garden",
	Long: `gardenplan builds a planting list for a square garden from a companion
dataset and lays the plants out on a grid, without running the HTTP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", companion.DefaultDatasetPath, "Companion dataset file (.json, .csv, .yaml)")

	rootCmd.AddGroup(&cobra.Group{ID: "planning", Title: "Planning:"})
	rootCmd.AddGroup(&cobra.Group{ID: "dataset", Title: "Dataset:"})

	rootCmd.AddCommand(listCmd, layoutCmd, plantsCmd, companionsCmd, checkCmd, tokenCmd)
}
