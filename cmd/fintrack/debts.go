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

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track money lent and borrowed",
	}
	cmd.AddCommand(debtsAddCmd())
	cmd.AddCommand(debtsListCmd())
	cmd.AddCommand(debtsUpdateCmd())
	cmd.AddCommand(debtsDeleteCmd())
	cmd.AddCommand(debtsPayCmd())
	cmd.AddCommand(debtsUnpayCmd())
	return cmd
}

func debtsAddCmd() *cobra.Command {
	var (
		debtType    string
		description string
		dueStr      string
	)

	cmd := &cobra.Command{
		Use:   "add <person> <amount>",
		Short: "Record a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			var dueDate *time.Time
			if dueStr != "" {
				due, err := time.Parse("2006-01-02", dueStr)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD): %w", dueStr, err)
				}
				dueDate = &due
			}

			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := s.AddDebt(cmd.Context(), store.DebtInput{
				PersonName:  args[0],
				Amount:      amount,
				Type:        model.DebtType(debtType),
				Description: description,
				DueDate:     dueDate,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s debt of %s with %s (%s)",
				debtType, cli.FormatMoney(d.Amount, s.Currency()), d.PersonName, d.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&debtType, "type", "t", "lent", "debt type (lent, borrowed)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVar(&dueStr, "due", "", "due date (YYYY-MM-DD)")
	return cmd
}

func debtsListCmd() *cobra.Command {
	var showPayments bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List debts and their payment status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			debts := s.Debts()
			if len(debts) == 0 {
				fmt.Println(cli.FormatInfo("No debts recorded."))
				return nil
			}

			currency := s.Currency()
			var rows [][]string
			for _, d := range debts {
				due := "-"
				if d.DueDate != nil {
					due = d.DueDate.Format("2006-01-02")
				}
				rows = append(rows, []string{
					d.PersonName,
					string(d.Type),
					cli.FormatMoney(d.Amount, currency),
					cli.FormatMoney(d.TotalPaid(), currency),
					formatDebtStatus(d.Status),
					due,
					d.ID,
				})
			}

			fmt.Println(cli.FormatTitle("Debts"))
			cli.WriteTable(os.Stdout,
				[]string{"Person", "Type", "Amount", "Paid", "Status", "Due", "ID"}, rows)

			if showPayments {
				for _, d := range debts {
					if len(d.Payments) == 0 {
						continue
					}
					fmt.Printf("\n%s\n", cli.FormatInfo("Payments for "+d.PersonName))
					var prows [][]string
					for _, p := range d.Payments {
						prows = append(prows, []string{
							p.Date.Format("2006-01-02"),
							cli.FormatMoney(p.Amount, currency),
							p.Note,
							p.ID,
						})
					}
					cli.WriteTable(os.Stdout, []string{"Date", "Amount", "Note", "ID"}, prows)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showPayments, "payments", "p", false, "show payment history")
	return cmd
}

func debtsUpdateCmd() *cobra.Command {
	var (
		amount      float64
		description string
		dueStr      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			d, ok := s.DebtByID(args[0])
			if !ok {
				return fmt.Errorf("debt %q not found", args[0])
			}
			if cmd.Flags().Changed("amount") {
				d.Amount = amount
			}
			if cmd.Flags().Changed("description") {
				d.Description = description
			}
			if cmd.Flags().Changed("due") {
				due, err := time.Parse("2006-01-02", dueStr)
				if err != nil {
					return fmt.Errorf("invalid due date %q (want YYYY-MM-DD): %w", dueStr, err)
				}
				d.DueDate = &due
			}

			if err := s.UpdateDebt(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Debt updated"))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "new amount")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVar(&dueStr, "due", "", "new due date (YYYY-MM-DD)")
	return cmd
}

func debtsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt and its payment history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.DeleteDebt(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Debt deleted"))
			return nil
		},
	}
}

func debtsPayCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "pay <debt-id> <amount>",
		Short: "Record a payment against a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := s.DebtByID(args[0]); !ok {
				return fmt.Errorf("debt %q not found", args[0])
			}
			if err := s.AddPayment(cmd.Context(), args[0], store.PaymentInput{
				Amount: amount,
				Note:   note,
			}); err != nil {
				return err
			}

			d, _ := s.DebtByID(args[0])
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Payment recorded; debt is now %s",
				formatDebtStatus(d.Status))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "payment note")
	return cmd
}

func debtsUnpayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpay <debt-id> <payment-id>",
		Short: "Remove a payment from a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.DeletePayment(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Payment removed"))
			return nil
		},
	}
}

func formatDebtStatus(status model.DebtStatus) string {
	switch status {
	case model.DebtPaid:
		return cli.SuccessStyle.Render(string(status))
	case model.DebtPartiallyPaid:
		return cli.WarningStyle.Render(string(status))
	default:
		return cli.SubtleStyle.Render(string(status))
	}
}
