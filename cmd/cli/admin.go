package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin portal commands",
	Long:  "Management surfaces for the Grojet platform: users, delivery agents, orders, merchants, categories, products and the dashboard.",
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login as an admin",
	RunE:  runAdminLogin,
}

type adminLoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Platform string `json:"platform"`
}

func runAdminLogin(cmd *cobra.Command, _ []string) error {

	var name, email, password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Validate(validateName).
				Value(&name),
			huh.NewInput().
				Title("Email").
				Validate(validateEmail).
				Value(&email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(validatePassword).
				Value(&password),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("login cancelled: %w", err)
	}

	body, err := json.Marshal(adminLoginRequest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Platform: "cli",
	})
	if err != nil {
		return err
	}

	resp, err := apiClient.Request(cmd.Context(), api.EndpointAdminLogin, &api.Options{
		Method: http.MethodPost,
		Body:   string(body),
	})

	if err != nil {
		printRequestError(err)
		return err
	}

	if !resp.OK {
		switch {
		case resp.Status == http.StatusUnauthorized:
			fmt.Println(errorStyle.Render("Invalid credentials. Please check your information and try again."))
		case resp.Status >= http.StatusInternalServerError:
			fmt.Println(errorStyle.Render("Server is temporarily unavailable. Please try again in a few moments."))
		default:
			printFailure(resp, fmt.Sprintf("Authentication failed (%d)", resp.Status))
		}
		return fmt.Errorf("admin login failed with status %d", resp.Status)
	}

	if !resp.Success() {
		printFailure(resp, "Login failed. Please try again.")
		return fmt.Errorf("admin login rejected by server")
	}

	token, _ := resp.Body["token"].(string)
	if len(token) == 0 {
		fmt.Println(errorStyle.Render("Invalid response from server. Please try again."))
		return fmt.Errorf("admin login response missing token")
	}

	// The admin endpoint does not return a profile document; synthesize
	// one so the session satisfies the token-and-profile check.
	profile, _ := resp.Body["admin"].(map[string]any)
	if profile == nil {
		profile = map[string]any{
			"name":  strings.TrimSpace(name),
			"email": strings.TrimSpace(email),
		}
	}

	if !sessionStore.Establish(token, profile, models.RoleAdmin) {
		fmt.Println(warningStyle.Render("Signed in, but the session could not be saved on this device."))
	}

	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf("Welcome %s! You're now signed in.", strings.TrimSpace(name))))
	fmt.Println()

	return nil
}

func validateName(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return fmt.Errorf("name is required")
	}
	return nil
}

// confirmDestructive asks before an irreversible admin action.
func confirmDestructive(title string, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

func init() {
	adminCmd.AddCommand(adminLoginCmd)
	rootCmd.AddCommand(adminCmd)
}
