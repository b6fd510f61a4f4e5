package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var plantsCmd = &cobra.Command{
	Use:     "plants",
	Short:   "List the plants in the dataset",
	Args:    cobra.NoArgs,
	GroupID: "dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCompanionService(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := svc.ListPlants(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		for _, plant := range resp.Plants {
			fmt.Fprintln(cmd.OutOrStdout(), plant)
		}
		return nil
	},
}

var companionsCmd = &cobra.Command{
	Use:     "companions <plant>",
	Short:   "Show what a plant helps, is helped by and must avoid",
	Args:    cobra.ExactArgs(1),
	GroupID: "dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCompanionService(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := svc.GetPlantCompanions(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		out := cmd.OutOrStdout()
		_, _ = headerColor.Fprintln(out, resp.PlantID)
		fmt.Fprintf(out, "  helps:     %s\n", joinOrDash(resp.Helps))
		fmt.Fprintf(out, "  helped by: %s\n", joinOrDash(resp.HelpedBy))
		fmt.Fprint(out, "  avoid:     ")
		_, _ = forbiddenColor.Fprintln(out, joinOrDash(resp.Forbidden))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:     "check <plant> <plant>",
	Short:   "Score how well two plants go together",
	Args:    cobra.ExactArgs(2),
	GroupID: "dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newCompanionService(cmd.Context())
		if err != nil {
			return err
		}

		resp, err := svc.CheckCompatibility(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), resp)
		}
		out := cmd.OutOrStdout()
		if resp.Forbidden {
			_, _ = forbiddenColor.Fprintf(out, "%s and %s must not be planted together\n", resp.A, resp.B)
			return nil
		}
		fmt.Fprintf(out, "%s and %s: score %d\n", resp.A, resp.B, resp.Score)
		return nil
	},
}

func joinOrDash(ids []string) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(ids, ", ")
}
