package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrackapp/fintrack/internal/cli"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses, and balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			summary := s.Summary()
			currency := s.Currency()

			fmt.Println(cli.FormatTitle("Summary"))
			fmt.Printf("  Income:   %s\n", cli.IncomeStyle.Render(cli.FormatMoney(summary.TotalIncome, currency)))
			fmt.Printf("  Expenses: %s\n", cli.ExpenseStyle.Render(cli.FormatMoney(summary.TotalExpenses, currency)))

			balance := cli.FormatMoney(summary.Balance, currency)
			if summary.Balance < 0 {
				balance = cli.ErrorStyle.Render(balance)
			}
			fmt.Printf("  Balance:  %s\n", balance)
			return nil
		},
	}
}
