package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrackapp/fintrack/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
	}
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesUpdateCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	cmd.AddCommand(categoriesAddSubCmd())
	cmd.AddCommand(categoriesDeleteSubCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their subcategories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			var rows [][]string
			for _, c := range s.Categories() {
				rows = append(rows, []string{c.ID, c.Name, c.Color, ""})
				for _, sc := range c.SubCategories {
					rows = append(rows, []string{sc.ID, "  " + sc.Name, "", c.Name})
				}
			}

			fmt.Println(cli.FormatTitle("Categories"))
			cli.WriteTable(os.Stdout, []string{"ID", "Name", "Color", "Parent"}, rows)
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := s.AddCategory(cmd.Context(), args[0], color)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added category %s (%s)", c.Name, c.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#6b7280", "display color (hex)")
	return cmd
}

func categoriesUpdateCmd() *cobra.Command {
	var (
		name  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			c, ok := s.CategoryByID(args[0])
			if !ok {
				return fmt.Errorf("category %q not found", args[0])
			}
			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}

			if err := s.UpdateCategory(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Category updated"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVar(&color, "color", "", "new display color (hex)")
	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category and everything scoped to it",
		Long: `Delete a category. Transactions recorded against the category and
budgets scoped to it are removed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Category deleted"))
			return nil
		},
	}
}

func categoriesAddSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-sub <parent-id> <name>",
		Short: "Add a subcategory to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			sc, err := s.AddSubCategory(cmd.Context(), args[1], args[0])
			if err != nil {
				return err
			}
			if sc.ID == "" {
				return fmt.Errorf("category %q not found", args[0])
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added subcategory %s (%s)", sc.Name, sc.ID)))
			return nil
		},
	}
}

func categoriesDeleteSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-sub <id>",
		Short: "Delete a subcategory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := s.DeleteSubCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Subcategory deleted"))
			return nil
		},
	}
}
