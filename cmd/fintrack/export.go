package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrackapp/fintrack/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions, debts, and budgets as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			data, err := s.ExportData()
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Println(cli.FormatSuccess("Exported to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
