package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
}

var usersListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List users",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminUsers, nil, "Could not fetch users.")
		if err != nil {
			return err
		}

		var users []models.User
		if err := resp.Decode("users", &users); err != nil {
			return fmt.Errorf("failed to decode users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println(infoStyle.Render("No users found."))
			return nil
		}

		fmt.Println(headerStyle.Render("Users"))
		fmt.Println()
		for _, u := range users {
			state := onlineStyle.Render("active")
			if !u.IsActive {
				state = offlineStyle.Render("inactive")
			}
			fmt.Printf("  %s  %s <%s>  %s\n", u.ID, u.Name, u.Email, state)
		}
		fmt.Println()

		return nil
	},
}

var usersActivateCmd = &cobra.Command{
	Use:     "activate <id>",
	Short:   "Activate a user",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserActive(args[0], true)
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:     "deactivate <id>",
	Short:   "Deactivate a user",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserActive(args[0], false)
	},
}

func setUserActive(id string, active bool) error {

	endpoint, err := api.Expand(api.EndpointAdminUserStatus, map[string]string{"id": id})
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]bool{"isActive": active})
	if err != nil {
		return err
	}

	resp, err := callServer(endpoint, &api.Options{
		Method: http.MethodPut,
		Body:   string(body),
	}, "Could not update user status.")
	if err != nil {
		return err
	}

	message := resp.Message()
	if len(message) == 0 {
		message = "User status updated."
	}
	fmt.Println(successStyle.Render(message))

	return nil
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a user",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		confirmed, err := confirmDestructive(
			"Delete this user?",
			"This removes the user permanently and cannot be undone.",
		)
		if err != nil || !confirmed {
			return err
		}

		endpoint, err := api.Expand(api.EndpointAdminUserDelete, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		if _, err := callServer(endpoint, &api.Options{Method: http.MethodDelete}, "Could not delete user."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("User deleted."))
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd, usersActivateCmd, usersDeactivateCmd, usersDeleteCmd)
	adminCmd.AddCommand(usersCmd)
}
