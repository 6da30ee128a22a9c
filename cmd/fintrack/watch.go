package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fintrackapp/fintrack/internal/cli"
	"github.com/fintrackapp/fintrack/internal/notify"
	"github.com/fintrackapp/fintrack/internal/store"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the periodic budget and debt evaluator",
		Long: `Keep the evaluator running in the foreground: budgets are re-checked
against their alert thresholds, debts due within 24 hours get a reminder,
and the daily summary fires on day rollover when enabled. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("interval") {
				if configured := viper.GetDuration("watch.interval"); configured > 0 {
					interval = configured
				}
			}

			fmt.Println(cli.FormatInfo(fmt.Sprintf("Watching (every %s); press Ctrl-C to stop", interval)))

			ev := store.NewEvaluator(s, notify.NewLogNotifier(), interval)
			ev.Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Hour, "check interval")
	return cmd
}
