package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/output"
)

var (
	flagTxType    string
	flagTxProduct string
	flagTxQty     int
	flagTxNote    string
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Manage stock transactions",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		txs, err := apiClient.FetchTransactions(api.ListParams{Page: flagPage, Limit: flagLimit})
		if err != nil {
			toasts.ShowError("Could not load transactions")
			return fmt.Errorf("listing transactions: %w", err)
		}
		if flagJSON {
			output.JSON(txs)
			return nil
		}
		output.TransactionTable(txs)
		return nil
	},
}

var transactionsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a stock movement",
	Long: `Record a stock movement.

  gudangku tx add --type masuk --product <id> --qty 10
  gudangku tx add --type keluar --product <id> --qty 3 --note "damaged"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if flagTxType != "masuk" && flagTxType != "keluar" {
			return fmt.Errorf("--type must be \"masuk\" or \"keluar\"")
		}
		if flagTxProduct == "" || flagTxQty <= 0 {
			return fmt.Errorf("--product and a positive --qty are required")
		}

		created, err := apiClient.CreateTransaction(api.Transaction{
			Type:      flagTxType,
			ProductID: flagTxProduct,
			Quantity:  flagTxQty,
			Note:      flagTxNote,
		})
		if err != nil {
			toasts.ShowError("Could not record transaction")
			return fmt.Errorf("recording transaction: %w", err)
		}

		name := created.Product
		if name == "" {
			name = created.ProductID
		}
		feed.LogActivity(activity.TransactionCreated,
			map[string]string{"name": name, "id": created.ID}, sessionUserID())
		toasts.ShowSuccess("Transaction recorded")
		return nil
	},
}

var transactionsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		updated, err := apiClient.UpdateTransaction(args[0], api.Transaction{
			Type:      flagTxType,
			ProductID: flagTxProduct,
			Quantity:  flagTxQty,
			Note:      flagTxNote,
		})
		if err != nil {
			toasts.ShowError("Could not update transaction")
			return fmt.Errorf("updating transaction: %w", err)
		}

		name := updated.Product
		if name == "" {
			name = updated.ProductID
		}
		feed.LogActivity(activity.TransactionUpdated,
			map[string]string{"name": name, "id": updated.ID}, sessionUserID())
		toasts.ShowSuccess("Transaction updated")
		return nil
	},
}

var transactionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}

		if err := apiClient.DeleteTransaction(args[0]); err != nil {
			toasts.ShowError("Could not delete transaction")
			return fmt.Errorf("deleting transaction: %w", err)
		}

		feed.LogActivity(activity.TransactionDeleted,
			map[string]string{"id": args[0], "name": args[0]}, sessionUserID())
		toasts.ShowSuccess("Transaction deleted")
		return nil
	},
}

func init() {
	transactionsListCmd.Flags().IntVar(&flagPage, "page", 0, "Page number")
	transactionsListCmd.Flags().IntVar(&flagLimit, "limit", 0, "Page size")

	for _, c := range []*cobra.Command{transactionsAddCmd, transactionsUpdateCmd} {
		c.Flags().StringVar(&flagTxType, "type", "", "Movement type: masuk (in) or keluar (out)")
		c.Flags().StringVar(&flagTxProduct, "product", "", "Product id")
		c.Flags().IntVar(&flagTxQty, "qty", 0, "Quantity")
		c.Flags().StringVar(&flagTxNote, "note", "", "Optional note")
	}

	transactionsCmd.AddCommand(transactionsListCmd, transactionsAddCmd, transactionsUpdateCmd, transactionsDeleteCmd)
	rootCmd.AddCommand(transactionsCmd)
}
