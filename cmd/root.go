package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/config"
	"github.com/gudangku/cli/internal/logger"
	"github.com/gudangku/cli/internal/output"
	"github.com/gudangku/cli/internal/session"
	"github.com/gudangku/cli/internal/toast"
)

var (
	flagJSON      bool
	flagServerURL string

	cfg       *config.Config
	apiClient *api.Client
	diag      *zap.SugaredLogger
	store     *activity.Store
	feed      *activity.Feed
	toasts    *toast.Queue

	// sess is resolved lazily by requireSession and cached for the run.
	sess *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "gudangku",
	Short: "Gudangku CLI — manage your inventory from the terminal",
	Long: `Gudangku CLI is an admin console for your inventory server: products,
categories, suppliers, and stock transactions, plus a local activity log.

Get started:
  gudangku login -u admin        Sign in
  gudangku products list         List products
  gudangku dashboard             Counts and recent activity`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagServerURL != "" {
			cfg.ServerURL = flagServerURL
		}
		apiClient = api.NewClient(cfg.ServerURL, cfg.Token)

		dir, err := config.Dir()
		if err != nil {
			dir = os.TempDir()
		}
		diag = logger.New(filepath.Join(dir, "gudangku.log"))

		store = activity.NewStore(filepath.Join(dir, activity.FileName), diag)
		feed = activity.NewFeed(store)

		toasts = toast.NewQueue()
		toasts.OnShow = output.Toast
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if feed != nil {
			feed.Close()
		}
		if toasts != nil {
			toasts.Close()
		}
		if diag != nil {
			_ = diag.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from config or "+config.DefaultURL+")")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// requireSession bootstraps the session once per run and fails the command
// when it ends unauthenticated.
func requireSession() error {
	if sess == nil {
		b := &session.Bootstrapper{
			Client: apiClient,
			Log:    diag,
			ClearToken: func() {
				if err := config.ClearToken(cfg); err != nil {
					diag.Warnw("clearing rejected token failed", "error", err)
				}
				apiClient.Token = ""
			},
		}
		sess = b.Run()
	}
	if !sess.Authenticated {
		return api.ErrUnauthenticated
	}
	return nil
}

// sessionUserID is the actor recorded on activity entries.
func sessionUserID() string {
	if sess != nil && sess.User != nil {
		return sess.User.ID
	}
	return ""
}
