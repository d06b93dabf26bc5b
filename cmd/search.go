package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search products, suppliers, and transactions",
	Long: `Search runs the query against all three entity endpoints and shows
whatever matched. Endpoints that fail are skipped, so results may be
partial.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		result, err := apiClient.Search(args[0])
		if err != nil {
			return err
		}

		if flagJSON {
			output.JSON(result)
			return nil
		}

		total := len(result.Products) + len(result.Suppliers) + len(result.Transactions)
		if total == 0 {
			fmt.Printf("No matches for %q.\n", args[0])
			return nil
		}

		if len(result.Products) > 0 {
			fmt.Printf("Products (%d)\n", len(result.Products))
			output.ProductTable(result.Products)
			fmt.Println()
		}
		if len(result.Suppliers) > 0 {
			fmt.Printf("Suppliers (%d)\n", len(result.Suppliers))
			output.SupplierTable(result.Suppliers)
			fmt.Println()
		}
		if len(result.Transactions) > 0 {
			fmt.Printf("Transactions (%d)\n", len(result.Transactions))
			output.TransactionTable(result.Transactions)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
