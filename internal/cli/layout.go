package cli

import (
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:     "layout",
	Short:   "Build a planting list and lay it out on a grid",
	Args:    cobra.NoArgs,
	GroupID: "planning",
	Example: "  gardenplan layout --plants tomato --area 4",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newPlanningService(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := svc.GenerateGardenPlan(cmd.Context(), planningRequest())
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		printAllocations(cmd.OutOrStdout(), &resp.CompanionListResponse)
		printGrid(cmd.OutOrStdout(), resp)
		return nil
	},
}

func init() {
	layoutCmd.Flags().StringVar(&plantsFlag, "plants", "", "Comma-separated plant ids")
	layoutCmd.Flags().Float64Var(&areaFlag, "area", 0, "Garden area in square meters")
	_ = layoutCmd.MarkFlagRequired("plants")
	_ = layoutCmd.MarkFlagRequired("area")
}
