package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/output"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		categories, err := apiClient.FetchCategories()
		if err != nil {
			toasts.ShowError("Could not load categories")
			return fmt.Errorf("listing categories: %w", err)
		}
		if flagJSON {
			output.JSON(categories)
			return nil
		}
		output.CategoryTable(categories)
		return nil
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		created, err := apiClient.CreateCategory(args[0])
		if err != nil {
			toasts.ShowError("Could not add category")
			return fmt.Errorf("adding category: %w", err)
		}

		feed.LogActivity(activity.CategoryAdded,
			map[string]string{"name": created.Name, "id": created.ID}, sessionUserID())
		toasts.ShowSuccess(fmt.Sprintf("Added category %q", created.Name))
		return nil
	},
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd, categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}
