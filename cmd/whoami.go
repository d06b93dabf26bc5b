package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if flagJSON {
			output.JSON(sess.User)
			return nil
		}
		output.UserInfo(*sess.User)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
