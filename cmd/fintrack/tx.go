package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrackapp/fintrack/internal/cli"
	"github.com/fintrackapp/fintrack/internal/model"
	"github.com/fintrackapp/fintrack/internal/store"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txUpdateCmd())
	cmd.AddCommand(txDeleteCmd())
	return cmd
}

func txAddCmd() *cobra.Command {
	var (
		txType      string
		description string
		category    string
		subCategory string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			var date time.Time
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
			}

			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := s.AddTransaction(cmd.Context(), store.TransactionInput{
				Amount:        amount,
				Type:          model.TransactionType(txType),
				Description:   description,
				CategoryID:    category,
				SubCategoryID: subCategory,
				Date:          date,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s)",
				txType, cli.FormatMoney(t.Amount, s.Currency()), t.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id")
	cmd.Flags().StringVar(&subCategory, "subcategory", "", "subcategory id")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date (YYYY-MM-DD, default today)")
	return cmd
}

func txListCmd() *cobra.Command {
	var filterType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			currency := s.Currency()
			var rows [][]string
			for _, t := range s.Transactions() {
				if filterType != "" && string(t.Type) != filterType {
					continue
				}
				name := "Unknown Category"
				if c, ok := s.CategoryByID(t.CategoryID); ok {
					name = c.Name
				}
				rows = append(rows, []string{
					t.Date.Format("2006-01-02"),
					cli.FormatAmount(t.Amount, currency, t.Type),
					name,
					t.Description,
					t.ID,
				})
			}

			if len(rows) == 0 {
				fmt.Println(cli.FormatInfo("No transactions yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Transactions"))
			cli.WriteTable(os.Stdout, []string{"Date", "Amount", "Category", "Description", "ID"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterType, "type", "t", "", "filter by type (income, expense)")
	return cmd
}

func txUpdateCmd() *cobra.Command {
	var (
		amount      float64
		description string
		category    string
		subCategory string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var target model.Transaction
			found := false
			for _, t := range s.Transactions() {
				if t.ID == args[0] {
					target = t
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("transaction %q not found", args[0])
			}

			if cmd.Flags().Changed("amount") {
				target.Amount = amount
			}
			if cmd.Flags().Changed("description") {
				target.Description = description
			}
			if cmd.Flags().Changed("category") {
				target.CategoryID = category
			}
			if cmd.Flags().Changed("subcategory") {
				target.SubCategoryID = subCategory
			}

			if err := s.UpdateTransaction(cmd.Context(), target); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Transaction updated"))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "new amount")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category id")
	cmd.Flags().StringVar(&subCategory, "subcategory", "", "new subcategory id")
	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Transaction deleted"))
			return nil
		},
	}
}

func parseAmount(arg string) (float64, error) {
	amount, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", arg, err)
	}
	return amount, nil
}
