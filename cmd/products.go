package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/output"
)

var (
	flagProductName     string
	flagProductPrice    float64
	flagProductStock    int
	flagProductCategory string
	flagProductSupplier string

	flagListCategory string
	flagPage         int
	flagLimit        int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		var (
			products []api.Product
			err      error
		)
		if flagListCategory != "" {
			products, err = apiClient.ProductsByCategory(flagListCategory)
		} else {
			products, err = apiClient.FetchProducts(api.ListParams{Page: flagPage, Limit: flagLimit})
		}
		if err != nil {
			toasts.ShowError("Could not load products")
			return fmt.Errorf("listing products: %w", err)
		}

		if flagJSON {
			output.JSON(products)
			return nil
		}
		output.ProductTable(products)
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		product, err := apiClient.FetchProduct(args[0])
		if err != nil {
			return fmt.Errorf("fetching product: %w", err)
		}
		if flagJSON {
			output.JSON(product)
			return nil
		}
		output.ProductDetail(*product)
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if flagProductName == "" {
			return fmt.Errorf("--name is required")
		}

		created, err := apiClient.CreateProduct(api.Product{
			Name:       flagProductName,
			Price:      flagProductPrice,
			Stock:      flagProductStock,
			CategoryID: flagProductCategory,
			SupplierID: flagProductSupplier,
		})
		if err != nil {
			toasts.ShowError("Could not add product")
			return fmt.Errorf("adding product: %w", err)
		}

		feed.LogActivity(activity.ProductAdded,
			map[string]string{"name": created.Name, "id": created.ID}, sessionUserID())
		toasts.ShowSuccess(fmt.Sprintf("Added product %q", created.Name))
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		updated, err := apiClient.UpdateProduct(args[0], api.Product{
			Name:       flagProductName,
			Price:      flagProductPrice,
			Stock:      flagProductStock,
			CategoryID: flagProductCategory,
			SupplierID: flagProductSupplier,
		})
		if err != nil {
			toasts.ShowError("Could not update product")
			return fmt.Errorf("updating product: %w", err)
		}

		feed.LogActivity(activity.ProductUpdated,
			map[string]string{"name": updated.Name, "id": updated.ID}, sessionUserID())
		toasts.ShowSuccess(fmt.Sprintf("Updated product %q", updated.Name))
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		// Fetch first so the activity message can name the product.
		name := args[0]
		if product, err := apiClient.FetchProduct(args[0]); err == nil {
			name = product.Name
		}

		if err := apiClient.DeleteProduct(args[0]); err != nil {
			toasts.ShowError("Could not delete product")
			return fmt.Errorf("deleting product: %w", err)
		}

		feed.LogActivity(activity.ProductDeleted,
			map[string]string{"name": name, "id": args[0]}, sessionUserID())
		toasts.ShowSuccess(fmt.Sprintf("Deleted product %q", name))
		return nil
	},
}

func init() {
	productsListCmd.Flags().StringVar(&flagListCategory, "category", "", "Filter by category id")
	productsListCmd.Flags().IntVar(&flagPage, "page", 0, "Page number")
	productsListCmd.Flags().IntVar(&flagLimit, "limit", 0, "Page size")

	for _, c := range []*cobra.Command{productsAddCmd, productsUpdateCmd} {
		c.Flags().StringVar(&flagProductName, "name", "", "Product name")
		c.Flags().Float64Var(&flagProductPrice, "price", 0, "Unit price")
		c.Flags().IntVar(&flagProductStock, "stock", 0, "Stock count")
		c.Flags().StringVar(&flagProductCategory, "category", "", "Category id")
		c.Flags().StringVar(&flagProductSupplier, "supplier", "", "Supplier id")
	}

	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsAddCmd, productsUpdateCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
