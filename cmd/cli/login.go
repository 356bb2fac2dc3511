package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login as a delivery partner",
	Long:  "Authenticates against the Grojet server and stores the session on this device",
	RunE:  runLogin,
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Platform string `json:"platform"`
}

func runLogin(cmd *cobra.Command, _ []string) error {

	var email, password string

	form := huh.NewForm(
		huh.NewGroup(
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

	body, err := json.Marshal(loginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
		Platform: "cli",
	})
	if err != nil {
		return err
	}

	resp, err := apiClient.Request(context.Background(), api.EndpointDeliveryLogin, &api.Options{
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
		return fmt.Errorf("login failed with status %d", resp.Status)
	}

	if !resp.Success() {
		printFailure(resp, "Login failed. Please try again.")
		return fmt.Errorf("login rejected by server")
	}

	token, _ := resp.Body["token"].(string)
	if len(token) == 0 {
		fmt.Println(errorStyle.Render("Invalid response from server. Please try again."))
		return fmt.Errorf("login response missing token")
	}

	profile, _ := resp.Body["agent"].(map[string]any)
	if profile == nil {
		fmt.Println(errorStyle.Render("Invalid response from server. Please try again."))
		return fmt.Errorf("login response missing agent profile")
	}

	if !sessionStore.Establish(token, profile, models.RoleAgent) {
		fmt.Println(warningStyle.Render("Signed in, but the session could not be saved on this device."))
	}

	fmt.Println()
	fmt.Println(successStyle.Render("Login successful!"))

	if info := sessionStore.AgentInfo(); info != nil && len(info.Name) > 0 {
		fmt.Printf("Welcome back, %s!\n", info.Name)
	}
	fmt.Println()

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

func init() {
	// Add the command to the root
	rootCmd.AddCommand(loginCmd)
}
