package cmd

import (
	"fmt"
	"os"

	"prigorodctl/pkg/exporter"
	"prigorodctl/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <dispatch> <arrival>",
	Short: "Export the schedule between two stations to an ICS file",
	Long:  `Fetch the schedule between two stations and write today's trips to an .ics calendar file.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		output, _ := cmd.Flags().GetString("output")
		showAll, _ := cmd.Flags().GetBool("all")

		client, today, err := newScheduleClient()
		if err != nil {
			return err
		}

		var trips []schedule.Trip

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting schedule %s → %s to %s...", args[0], args[1], output)).
			Action(func() {
				trips, err = client.Lookup(cmd.Context(), args[0], args[1], showAll, today)
			}).
			Run()

		if err != nil {
			return err
		}

		if len(trips) == 0 {
			return fmt.Errorf("no trips found between %s and %s", args[0], args[1])
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(trips, today, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully exported %d trips to %s\n", len(trips), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().BoolP("all", "a", false, "Include trips that already departed")
}
