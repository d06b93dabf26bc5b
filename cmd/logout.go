package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.HasToken() {
			feed.LogActivity(activity.UserLogout, nil, "")
		}
		if err := config.ClearToken(cfg); err != nil {
			return fmt.Errorf("clearing token: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
