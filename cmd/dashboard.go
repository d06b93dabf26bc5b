package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/output"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show entity counts and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		// Counts are best-effort: a failing endpoint shows as a dash
		// rather than failing the whole dashboard.
		products, productsErr := apiClient.FetchProducts(api.ListParams{})
		suppliers, suppliersErr := apiClient.FetchSuppliers(api.ListParams{})
		txs, txsErr := apiClient.FetchTransactions(api.ListParams{})
		stats := feed.Stats()

		if flagJSON {
			out := map[string]interface{}{
				"products":     countOrNil(len(products), productsErr),
				"suppliers":    countOrNil(len(suppliers), suppliersErr),
				"transactions": countOrNil(len(txs), txsErr),
				"activity":     stats,
				"unread":       feed.UnreadCount(),
			}
			output.JSON(out)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Products:\t%s\n", countOrDash(len(products), productsErr))
		fmt.Fprintf(w, "Suppliers:\t%s\n", countOrDash(len(suppliers), suppliersErr))
		fmt.Fprintf(w, "Transactions:\t%s\n", countOrDash(len(txs), txsErr))
		fmt.Fprintf(w, "Activity today:\t%d\n", stats.Today)
		w.Flush()

		recent := feed.Recent()
		if len(recent) > 0 {
			fmt.Println("\nRecent activity")
			output.ActivityTable(recent)
		}
		return nil
	},
}

func countOrDash(n int, err error) string {
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

func countOrNil(n int, err error) interface{} {
	if err != nil {
		return nil
	}
	return n
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
