package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, injected at build time:
//
//	go build -ldflags "-X github.com/gudangku/cli/cmd.Version=1.2.3"
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gudangku", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
