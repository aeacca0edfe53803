package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"prigorodctl/pkg/config"
	"prigorodctl/pkg/render"
	"prigorodctl/pkg/schedule"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// now is swapped out in tests
var now = time.Now

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

var rootCmd = &cobra.Command{
	Use:   "prigorodctl <dispatch> <arrival>",
	Short: "Suburban train schedule between two stations",
	Long: `prigorodctl fetches the suburban train schedule between two stations
from express-prigorod.ru and prints the trips that have not departed yet.`,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Past this point errors are runtime failures, not usage mistakes
		cmd.SilenceUsage = true

		showAll, _ := cmd.Flags().GetBool("all")

		client, today, err := newScheduleClient()
		if err != nil {
			return err
		}

		trips, err := client.Lookup(cmd.Context(), args[0], args[1], showAll, today)
		if err != nil {
			return err
		}

		return render.Table(cmd.OutOrStdout(), trips)
	},
}

// newScheduleClient builds a client from the resolved configuration and
// returns the current time in the configured timezone.
func newScheduleClient() (*schedule.Client, time.Time, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, time.Time{}, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, time.Time{}, err
	}

	client, err := schedule.NewClient(cfg.ClientOptions())
	if err != nil {
		return nil, time.Time{}, err
	}

	return client, now().In(loc), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("all", "a", false, "Show every trip of the day, including those already departed")
}
