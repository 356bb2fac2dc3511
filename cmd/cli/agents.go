package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage delivery agents",
}

var agentsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List delivery agents",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminDeliveryAgents, nil, "Could not fetch delivery agents.")
		if err != nil {
			return err
		}

		var agents []models.DeliveryAgent
		if err := resp.Decode("agents", &agents); err != nil {
			return fmt.Errorf("failed to decode delivery agents: %w", err)
		}

		if len(agents) == 0 {
			fmt.Println(infoStyle.Render("No delivery agents found."))
			return nil
		}

		fmt.Println(headerStyle.Render("Delivery Agents"))
		fmt.Println()
		for _, a := range agents {
			presence := offlineStyle.Render("offline")
			if a.IsOnline {
				presence = onlineStyle.Render("online")
			}
			fmt.Printf("  %s  %s  zone=%s  %s  %s\n", a.ID, a.Name, a.Zone, a.Status, presence)
		}
		fmt.Println()

		return nil
	},
}

var agentsApproveCmd = &cobra.Command{
	Use:     "approve <id>",
	Short:   "Approve a delivery agent application",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return agentAction(api.EndpointAdminDeliveryAgentApprove, args[0], "Delivery agent approved.")
	},
}

var agentsRejectCmd = &cobra.Command{
	Use:     "reject <id>",
	Short:   "Reject a delivery agent application",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return agentAction(api.EndpointAdminDeliveryAgentReject, args[0], "Delivery agent rejected.")
	},
}

var agentsToggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Short:   "Flip a delivery agent's active status",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return agentAction(api.EndpointAdminDeliveryAgentStatus, args[0], "Delivery agent status updated.")
	},
}

func agentAction(template string, id string, successMsg string) error {

	endpoint, err := api.Expand(template, map[string]string{"id": id})
	if err != nil {
		return err
	}

	resp, err := callServer(endpoint, &api.Options{Method: http.MethodPut}, "Could not update delivery agent.")
	if err != nil {
		return err
	}

	if message := resp.Message(); len(message) > 0 {
		successMsg = message
	}
	fmt.Println(successStyle.Render(successMsg))

	return nil
}

var agentsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a delivery agent",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		confirmed, err := confirmDestructive(
			"Delete this delivery agent?",
			"This removes the agent permanently and cannot be undone.",
		)
		if err != nil || !confirmed {
			return err
		}

		endpoint, err := api.Expand(api.EndpointAdminDeliveryAgentDelete, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		if _, err := callServer(endpoint, &api.Options{Method: http.MethodDelete}, "Could not delete delivery agent."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Delivery agent deleted."))
		return nil
	},
}

func init() {
	agentsCmd.AddCommand(agentsListCmd, agentsApproveCmd, agentsRejectCmd, agentsToggleCmd, agentsDeleteCmd)
	adminCmd.AddCommand(agentsCmd)
}
