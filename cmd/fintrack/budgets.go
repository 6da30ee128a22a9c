package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrackapp/fintrack/internal/cli"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/store"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage category budgets",
	}
	cmd.AddCommand(budgetsAddCmd())
	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsUpdateCmd())
	cmd.AddCommand(budgetsDeleteCmd())
	cmd.AddCommand(budgetsStatusCmd())
	return cmd
}

func budgetsAddCmd() *cobra.Command {
	var (
		period   string
		startStr string
		endStr   string
	)

	cmd := &cobra.Command{
		Use:   "add <category-id> <amount>",
		Short: "Create a budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			var start time.Time
			if startStr != "" {
				start, err = time.Parse("2006-01-02", startStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", startStr, err)
				}
			}
			var end *time.Time
			if endStr != "" {
				e, err := time.Parse("2006-01-02", endStr)
				if err != nil {
					return fmt.Errorf("invalid end date %q (want YYYY-MM-DD): %w", endStr, err)
				}
				end = &e
			}

			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := s.CategoryByID(args[0]); !ok {
				return fmt.Errorf("category %q not found", args[0])
			}

			b, err := s.AddBudget(cmd.Context(), store.BudgetInput{
				CategoryID: args[0],
				Amount:     amount,
				Period:     model.BudgetPeriod(period),
				StartDate:  start,
				EndDate:    end,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s budget of %s (%s)",
				period, cli.FormatMoney(b.Amount, s.Currency()), b.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "monthly", "budget period (monthly, yearly)")
	cmd.Flags().StringVar(&startStr, "start", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&endStr, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := s.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets configured."))
				return nil
			}

			currency := s.Currency()
			var rows [][]string
			for _, b := range budgets {
				name := "Unknown Category"
				if c, ok := s.CategoryByID(b.CategoryID); ok {
					name = c.Name
				}
				rows = append(rows, []string{
					name,
					string(b.Period),
					cli.FormatMoney(b.Amount, currency),
					b.StartDate.Format("2006-01-02"),
					b.ID,
				})
			}

			fmt.Println(cli.FormatTitle("Budgets"))
			cli.WriteTable(os.Stdout, []string{"Category", "Period", "Amount", "Start", "ID"}, rows)
			return nil
		},
	}
}

func budgetsUpdateCmd() *cobra.Command {
	var (
		amount float64
		period string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var target model.Budget
			found := false
			for _, b := range s.Budgets() {
				if b.ID == args[0] {
					target = b
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("budget %q not found", args[0])
			}

			if cmd.Flags().Changed("amount") {
				target.Amount = amount
			}
			if cmd.Flags().Changed("period") {
				target.Period = model.BudgetPeriod(period)
			}

			if err := s.UpdateBudget(cmd.Context(), target); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Budget updated"))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "new amount")
	cmd.Flags().StringVarP(&period, "period", "p", "", "new period (monthly, yearly)")
	return cmd
}

func budgetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.DeleteBudget(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Budget deleted"))
			return nil
		},
	}
}

func budgetsStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current spending against each budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := s.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets configured."))
				return nil
			}

			currency := s.Currency()
			var rows [][]string
			for _, b := range budgets {
				name := "Unknown Category"
				if c, ok := s.CategoryByID(b.CategoryID); ok {
					name = c.Name
				}
				spent := s.SpentForBudget(b)
				pct := spent / b.Amount * 100
				pctText := fmt.Sprintf("%.0f%%", pct)
				switch {
				case pct >= 100:
					pctText = cli.ErrorStyle.Render(pctText)
				case pct >= 70:
					pctText = cli.WarningStyle.Render(pctText)
				default:
					pctText = cli.SuccessStyle.Render(pctText)
				}
				rows = append(rows, []string{
					name,
					cli.FormatMoney(spent, currency),
					cli.FormatMoney(b.Amount, currency),
					pctText,
					string(b.Period),
				})
			}

			fmt.Println(cli.FormatTitle("Budget Status"))
			cli.WriteTable(os.Stdout, []string{"Category", "Spent", "Budget", "Used", "Period"}, rows)
			return nil
		},
	}
}
