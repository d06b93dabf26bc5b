package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/config"
	"github.com/gudangku/cli/internal/session"
)

var (
	flagUsername string
	flagPassword string
	flagToken    string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with your inventory server",
	Long: `Authenticate with credentials or an existing API token.

Credentials:
  gudangku login -u admin -p secret

Token:
  gudangku login --token eyJhbGciOi...`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&flagUsername, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&flagPassword, "password", "p", "", "Password")
	loginCmd.Flags().StringVar(&flagToken, "token", "", "Bearer token for direct authentication")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if flagToken != "" {
		return loginWithToken(flagToken)
	}
	if flagUsername == "" || flagPassword == "" {
		return fmt.Errorf("provide --username and --password, or --token")
	}

	resp, err := apiClient.Login(flagUsername, flagPassword)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			toasts.ShowError("Invalid username or password")
			return fmt.Errorf("invalid credentials")
		}
		toasts.ShowError("Login failed")
		return fmt.Errorf("logging in: %w", err)
	}

	cfg.Token = resp.Token
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	apiClient.Token = resp.Token

	user := resp.User
	if user == nil {
		// The server didn't echo a profile; resolve one the usual way.
		b := &session.Bootstrapper{Client: apiClient, Log: diag}
		if s := b.Run(); s.Authenticated {
			user = s.User
		}
	}

	username := flagUsername
	userID := ""
	if user != nil {
		username = user.Username
		userID = user.ID
	}
	feed.LogActivity(activity.UserLogin, map[string]string{"name": username}, userID)
	toasts.ShowSuccess(fmt.Sprintf("Logged in as %s", username))
	return nil
}

func loginWithToken(token string) error {
	client := api.NewClient(cfg.ServerURL, token)
	b := &session.Bootstrapper{Client: client, Log: diag}
	s := b.Run()
	if !s.Authenticated {
		toasts.ShowError("Token rejected")
		return fmt.Errorf("token rejected — could not validate or decode it")
	}

	cfg.Token = token
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	feed.LogActivity(activity.UserLogin, map[string]string{"name": s.User.Username}, s.User.ID)
	toasts.ShowSuccess(fmt.Sprintf("Logged in as %s", s.User.Username))
	return nil
}
