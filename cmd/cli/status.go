package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
)

var statusToggle bool

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show or toggle your online status",
	Long:    "Shows whether you are online for deliveries. With --toggle, flips the status on the server.",
	PreRunE: requireAgentAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		if statusToggle {
			return toggleStatus()
		}

		return showStatus()
	},
}

func showStatus() error {

	resp, err := apiClient.Request(context.Background(), api.EndpointDeliveryProfile, nil)

	if err != nil {
		printRequestError(err)
		return err
	}

	if !resp.OK || !resp.Success() {
		printFailure(resp, "Could not fetch your status.")
		return fmt.Errorf("profile fetch failed with status %d", resp.Status)
	}

	agent, _ := resp.Body["agent"].(map[string]any)
	isOnline, _ := agent["isOnline"].(bool)

	printOnlineState(isOnline)
	return nil
}

func toggleStatus() error {

	resp, err := apiClient.Request(context.Background(), api.EndpointDeliveryStatusToggle, &api.Options{
		Method: http.MethodPost,
	})

	if err != nil {
		printRequestError(err)
		return err
	}

	// The local notion of being online only moves when the server confirms
	// the flip; a failed toggle leaves the previous state standing.
	if !resp.OK || !resp.Success() {
		printFailure(resp, "Could not change your status.")
		return fmt.Errorf("status toggle failed with status %d", resp.Status)
	}

	isOnline, _ := resp.Body["isOnline"].(bool)
	printOnlineState(isOnline)

	if isOnline {
		fmt.Println(dimStyle.Render("Run 'grojet watch' to wait for delivery requests."))
	}

	return nil
}

func printOnlineState(isOnline bool) {
	if isOnline {
		fmt.Println("You are " + onlineStyle.Render("ONLINE") + " and can receive delivery requests.")
	} else {
		fmt.Println("You are " + offlineStyle.Render("OFFLINE") + ".")
	}
}

func init() {
	statusCmd.Flags().BoolVar(&statusToggle, "toggle", false, "Flip your online status")
	rootCmd.AddCommand(statusCmd)
}
