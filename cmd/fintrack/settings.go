package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintrackapp/fintrack/internal/cli"
	"github.com/fintrackapp/fintrack/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change preferences",
	}
	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsClearDataCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			settings := s.NotificationSettings()
			currency := s.Currency()

			fmt.Println(cli.FormatTitle("Settings"))
			fmt.Printf("  Theme:          %s\n", s.Theme())
			fmt.Printf("  Currency:       %s (%s)\n", currency.Code, currency.Symbol)
			fmt.Printf("  Budget alerts:  %v\n", settings.BudgetAlerts)
			fmt.Printf("  Daily summary:  %v\n", settings.DailySummary)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	var (
		theme          string
		currencyCode   string
		currencySymbol string
		budgetAlerts   bool
		dailySummary   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()
			ctx := cmd.Context()

			if cmd.Flags().Changed("theme") {
				if err := s.SetTheme(ctx, model.Theme(theme)); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("currency") {
				c := model.Currency{Code: strings.ToUpper(currencyCode), Symbol: currencySymbol}
				if c.Symbol == "" {
					c.Symbol = c.Code + " "
				}
				if err := s.SetCurrency(ctx, c); err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("budget-alerts") || cmd.Flags().Changed("daily-summary") {
				settings := s.NotificationSettings()
				if cmd.Flags().Changed("budget-alerts") {
					settings.BudgetAlerts = budgetAlerts
				}
				if cmd.Flags().Changed("daily-summary") {
					settings.DailySummary = dailySummary
				}
				if err := s.SetNotificationSettings(ctx, settings); err != nil {
					return err
				}
			}

			fmt.Println(cli.FormatSuccess("Settings saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "display theme (light, dark, system)")
	cmd.Flags().StringVar(&currencyCode, "currency", "", "display currency code (e.g. USD)")
	cmd.Flags().StringVar(&currencySymbol, "symbol", "", "display currency symbol (e.g. $)")
	cmd.Flags().BoolVar(&budgetAlerts, "budget-alerts", false, "enable or disable budget threshold alerts")
	cmd.Flags().BoolVar(&dailySummary, "daily-summary", false, "enable or disable the daily summary notification")
	return cmd
}

func settingsClearDataCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-data",
		Short: "Delete all transactions, debts, and budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				fmt.Print(cli.FormatWarning("This deletes every transaction, debt, and budget. Continue? [y/N] "))
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if strings.TrimSpace(strings.ToLower(answer)) != "y" {
					fmt.Println(cli.FormatInfo("Aborted."))
					return nil
				}
			}

			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.ClearData(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("All data cleared; default categories restored"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
