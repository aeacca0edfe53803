package cmd

import (
	"fmt"

	"prigorodctl/pkg/config"
	"prigorodctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage prigorodctl configuration",
	Long: `View or edit your local configuration settings (schedule URL, encoding, timeout, timezone, saved routes).
Without flags the interactive settings form is opened.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		saveRoute, _ := flags.GetBool("save-route")
		list, _ := flags.GetBool("list")

		if saveRoute && len(args) != 2 {
			return fmt.Errorf("--save-route needs exactly two stations, e.g. prigorodctl config --save-route Москва Подольск")
		}
		if !saveRoute && len(args) > 0 {
			return fmt.Errorf("unexpected arguments %v", args)
		}

		cmd.SilenceUsage = true
		changed := false

		if flags.Changed("set-url") {
			cfg.BaseURL, _ = flags.GetString("set-url")
			changed = true
		}
		if flags.Changed("set-encoding") {
			cfg.Encoding, _ = flags.GetString("set-encoding")
			changed = true
		}
		if flags.Changed("set-timeout") {
			cfg.TimeoutSeconds, _ = flags.GetInt("set-timeout")
			changed = true
		}
		if flags.Changed("set-timezone") {
			cfg.Timezone, _ = flags.GetString("set-timezone")
			changed = true
		}
		if saveRoute {
			route := config.Route{Dispatch: args[0], Arrival: args[1]}
			if !cfg.AddRoute(route) {
				fmt.Fprintf(cmd.OutOrStdout(), "Route %s → %s is already saved\n", route.Dispatch, route.Arrival)
			}
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Configuration saved")
		}

		if list {
			printConfig(cmd, cfg)
		}

		if changed || list {
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func printConfig(cmd *cobra.Command, cfg *config.AppConfig) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Schedule URL: %s\n", orDefault(cfg.BaseURL, "default"))
	fmt.Fprintf(out, "Encoding: %s\n", orDefault(cfg.Encoding, "default"))
	if cfg.TimeoutSeconds > 0 {
		fmt.Fprintf(out, "Timeout: %ds\n", cfg.TimeoutSeconds)
	} else {
		fmt.Fprintln(out, "Timeout: default")
	}
	fmt.Fprintf(out, "Timezone: %s\n", orDefault(cfg.Timezone, "local"))
	fmt.Fprintf(out, "Saved routes: %d\n", len(cfg.SavedRoutes))
	for _, r := range cfg.SavedRoutes {
		fmt.Fprintf(out, "  • %s → %s\n", r.Dispatch, r.Arrival)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-url", "", "Set the schedule endpoint URL")
	configCmd.Flags().String("set-encoding", "", "Set the text encoding used by the site (e.g. windows-1251)")
	configCmd.Flags().Int("set-timeout", 0, "Set the request timeout in seconds")
	configCmd.Flags().String("set-timezone", "", "Set the timezone used to decide which trips already departed (e.g. Europe/Moscow)")
	configCmd.Flags().Bool("save-route", false, "Save the two given stations as a route for interactive mode")
	configCmd.Flags().BoolP("list", "l", false, "Print the current configuration")
}
