package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Show the signed-in delivery partner profile",
	PreRunE: requireAgentAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showProfile()
	},
}

// showProfile fetches the profile from the server and refreshes the local
// copy; if the server is unreachable it falls back to the stored one.
func showProfile() error {

	resp, err := apiClient.Request(context.Background(), api.EndpointDeliveryProfile, nil)

	if err == nil && resp.OK && resp.Success() {
		if profile, ok := resp.Body["agent"].(map[string]any); ok {
			sessionStore.SetProfile(profile)
		}
	}

	info := sessionStore.AgentInfo()
	if info == nil {
		fmt.Println(infoStyle.Render("No profile stored. Login first."))
		return api.ErrNotAuthenticated
	}

	fmt.Println(headerStyle.Render("Delivery Partner"))
	fmt.Println()
	printProfileField("Name", info.Name)
	printProfileField("Email", info.Email)
	printProfileField("Phone", info.Phone)
	printProfileField("Zone", info.Zone)
	printProfileField("ID", info.ID)
	fmt.Println()

	return nil
}

func printProfileField(label string, value string) {
	if len(value) == 0 {
		value = dimStyle.Render("-")
	}
	fmt.Printf("  %-7s %s\n", label+":", value)
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
