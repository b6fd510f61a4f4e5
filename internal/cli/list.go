package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "Build a companion planting list",
	Long:    `Fill the garden capacity with the selected plants and compatible companions.`,
	Args:    cobra.NoArgs,
	GroupID: "planning",
	Example: "  gardenplan list --plants tomato,carrot --area 6",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newPlanningService(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := svc.GenerateCompanionList(cmd.Context(), planningRequest())
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		printAllocations(cmd.OutOrStdout(), resp)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&plantsFlag, "plants", "", "Comma-separated plant ids")
	listCmd.Flags().Float64Var(&areaFlag, "area", 0, "Garden area in square meters")
	_ = listCmd.MarkFlagRequired("plants")
	_ = listCmd.MarkFlagRequired("area")
}
