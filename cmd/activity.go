package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/output"
)

var flagActivityType string

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Inspect the local activity log",
	Long: `The activity log is a local, capped audit trail of actions taken from
this console. It lives alongside the CLI config and never leaves the
machine.`,
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all logged activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := store.All()
		if flagActivityType != "" {
			records = store.ByType(activity.Type(flagActivityType))
		}
		if flagJSON {
			output.JSON(records)
			return nil
		}
		output.ActivityTable(records)
		return nil
	},
}

var activityRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := store.Recent(activity.RecentLimit)
		if flagJSON {
			output.JSON(records)
			return nil
		}
		output.ActivityTable(records)
		return nil
	},
}

var activityTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := store.Today()
		if flagJSON {
			output.JSON(records)
			return nil
		}
		output.ActivityTable(records)
		return nil
	},
}

var activityStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := store.Stats()
		if flagJSON {
			output.JSON(stats)
			return nil
		}
		output.ActivityStats(stats)
		return nil
	},
}

var activityReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark all activity as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		feed.MarkAsRead()
		fmt.Println("Marked as read.")
		return nil
	},
}

var activityClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all logged activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		store.Clear()
		fmt.Println("Activity log cleared.")
		return nil
	},
}

func init() {
	activityListCmd.Flags().StringVar(&flagActivityType, "type", "", "Filter by activity type (e.g. product_added)")

	activityCmd.AddCommand(activityListCmd, activityRecentCmd, activityTodayCmd,
		activityStatsCmd, activityReadCmd, activityClearCmd)
	rootCmd.AddCommand(activityCmd)
}
