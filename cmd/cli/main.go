package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/config"
	"github.com/Yathish26/GrojetDPartner/internal/models"
	"github.com/Yathish26/GrojetDPartner/internal/secure"
	"github.com/Yathish26/GrojetDPartner/internal/session"
)

// Global configuration instance
var cfg *config.Config
var sessionStore *session.Store
var apiClient *api.Client

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")

	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunClientE(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cmd)

	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Get the server override from the flag
	server, err := cmd.Flags().GetString("server")
	if err == nil && len(server) > 0 {
		if err := cfg.SetBaseURL(server); err != nil {
			return fmt.Errorf("failed to set server: %w", err)
		}
	}

	secrets, err := secure.NewStore(cfg.GetCredentialsPath())
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}

	sessionStore = session.NewStore(secrets)
	apiClient = api.NewClient(cfg.GetBaseURL(), cfg.GetTimeout(), sessionStore)
	apiClient.SetOnUnauthorized(func() {
		fmt.Println(warningStyle.Render("Session expired. Please login again."))
	})

	return nil
}

// requireAgentAuthE gates delivery-partner commands on an active session,
// offering to login interactively when there is none.
func requireAgentAuthE(cmd *cobra.Command, args []string) error {
	return requireAuthE(cmd, args, models.RoleAgent)
}

// requireAdminAuthE gates admin commands the same way.
func requireAdminAuthE(cmd *cobra.Command, args []string) error {
	return requireAuthE(cmd, args, models.RoleAdmin)
}

func requireAuthE(cmd *cobra.Command, args []string, role models.Role) error {

	if sessionStore.IsAuthenticated() {
		if current := sessionStore.Role(); current != role {
			return fmt.Errorf("signed in as %s; this command needs a %s session. Run logout first", current, role)
		}
		return nil
	}

	return promptAndLogin(cmd, role)
}

// promptAndLogin prompts the user if they want to login and handles the login process
func promptAndLogin(cmd *cobra.Command, role models.Role) error {
	fmt.Println()
	fmt.Println(titleStyle.Render("Authentication Required"))
	fmt.Println("No active session found.")
	fmt.Println()

	var shouldLogin bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Would you like to login now?").
				Description(fmt.Sprintf("Your credentials will be sent to %s", cfg.GetServerHostname())).
				Value(&shouldLogin),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("login prompt cancelled: %w", err)
	}

	if !shouldLogin {
		return api.ErrNotAuthenticated
	}

	fmt.Println()

	switch role {
	case models.RoleAdmin:
		return runAdminLogin(cmd, nil)
	default:
		return runLogin(cmd, nil)
	}
}

// callServer wraps a request with the shared failure rendering: transport
// errors and unsuccessful responses are printed and returned as errors, so
// commands only handle the happy path.
func callServer(endpoint string, opts *api.Options, failMsg string) (*api.Response, error) {

	resp, err := apiClient.Request(context.Background(), endpoint, opts)

	if err != nil {
		printRequestError(err)
		return nil, err
	}

	if !resp.OK || !resp.Success() {
		printFailure(resp, failMsg)
		return nil, fmt.Errorf("request failed with status %d", resp.Status)
	}

	return resp, nil
}

// printRequestError renders the two true error kinds a request can produce.
func printRequestError(err error) {
	switch {
	case errors.Is(err, api.ErrNetworkUnavailable):
		fmt.Println(errorStyle.Render("Unable to connect to server. Please check your internet connection and try again."))
	case errors.Is(err, api.ErrMalformedResponse):
		fmt.Println(errorStyle.Render("The server returned an unreadable response. Please try again."))
	default:
		fmt.Println(errorStyle.Render(err.Error()))
	}
}

// printFailure renders a parsed-but-unsuccessful response.
func printFailure(resp *api.Response, fallback string) {
	message := resp.Message()
	if len(message) == 0 {
		message = fallback
	}
	fmt.Println(errorStyle.Render(message))
}

var rootCmd = &cobra.Command{
	Use:   "grojet",
	Short: "Grojet delivery partner and admin portal client",
	Long: `Command-line client for the Grojet delivery platform.

Delivery partners login, manage their online status and watch for incoming
orders. Admins manage users, delivery agents, orders, merchants, categories,
products and inventory through the same backend.`,
	PersistentPreRunE: preRunClientE,
	RunE: func(cmd *cobra.Command, args []string) error {

		if sessionStore.IsAuthenticated() {
			return showProfile()
		}

		return promptAndLogin(cmd, models.RoleAgent)
	},
}

func init() {

	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ~/.config/grojet/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "Override the configured Grojet server URL (e.g., http://localhost:5000)")

}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}
