package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/output"
)

var (
	flagSupplierName    string
	flagSupplierPhone   string
	flagSupplierEmail   string
	flagSupplierAddress string
)

var suppliersCmd = &cobra.Command{
	Use:   "suppliers",
	Short: "Manage suppliers",
}

var suppliersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		suppliers, err := apiClient.FetchSuppliers(api.ListParams{Page: flagPage, Limit: flagLimit})
		if err != nil {
			toasts.ShowError("Could not load suppliers")
			return fmt.Errorf("listing suppliers: %w", err)
		}
		if flagJSON {
			output.JSON(suppliers)
			return nil
		}
		output.SupplierTable(suppliers)
		return nil
	},
}

var suppliersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if flagSupplierName == "" {
			return fmt.Errorf("--name is required")
		}

		created, err := apiClient.CreateSupplier(api.Supplier{
			Name:    flagSupplierName,
			Phone:   flagSupplierPhone,
			Email:   flagSupplierEmail,
			Address: flagSupplierAddress,
		})
		if err != nil {
			toasts.ShowError("Could not add supplier")
			return fmt.Errorf("adding supplier: %w", err)
		}

		feed.LogActivity(activity.SupplierAdded,
			map[string]string{"name": created.Name, "id": created.ID}, sessionUserID())
		toasts.ShowSuccess(fmt.Sprintf("Added supplier %q", created.Name))
		return nil
	},
}

var suppliersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		updated, err := apiClient.UpdateSupplier(args[0], api.Supplier{
			Name:    flagSupplierName,
			Phone:   flagSupplierPhone,
			Email:   flagSupplierEmail,
			Address: flagSupplierAddress,
		})
		if err != nil {
			toasts.ShowError("Could not update supplier")
			return fmt.Errorf("updating supplier: %w", err)
		}

		feed.LogActivity(activity.SupplierUpdated,
			map[string]string{"name": updated.Name, "id": updated.ID}, sessionUserID())
		toasts.ShowSuccess(fmt.Sprintf("Updated supplier %q", updated.Name))
		return nil
	},
}

var suppliersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		if err := apiClient.DeleteSupplier(args[0]); err != nil {
			toasts.ShowError("Could not delete supplier")
			return fmt.Errorf("deleting supplier: %w", err)
		}

		feed.LogActivity(activity.SupplierDeleted,
			map[string]string{"id": args[0], "name": args[0]}, sessionUserID())
		toasts.ShowSuccess("Deleted supplier")
		return nil
	},
}

func init() {
	suppliersListCmd.Flags().IntVar(&flagPage, "page", 0, "Page number")
	suppliersListCmd.Flags().IntVar(&flagLimit, "limit", 0, "Page size")

	for _, c := range []*cobra.Command{suppliersAddCmd, suppliersUpdateCmd} {
		c.Flags().StringVar(&flagSupplierName, "name", "", "Supplier name")
		c.Flags().StringVar(&flagSupplierPhone, "phone", "", "Phone number")
		c.Flags().StringVar(&flagSupplierEmail, "email", "", "Email address")
		c.Flags().StringVar(&flagSupplierAddress, "address", "", "Street address")
	}

	suppliersCmd.AddCommand(suppliersListCmd, suppliersAddCmd, suppliersUpdateCmd, suppliersDeleteCmd)
	rootCmd.AddCommand(suppliersCmd)
}
