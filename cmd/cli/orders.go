package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List orders",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminOrders, nil, "Could not fetch orders.")
		if err != nil {
			return err
		}

		var orders []models.Order
		if err := resp.Decode("orders", &orders); err != nil {
			return fmt.Errorf("failed to decode orders: %w", err)
		}

		if len(orders) == 0 {
			fmt.Println(infoStyle.Render("No orders found."))
			return nil
		}

		fmt.Println(headerStyle.Render("Orders"))
		fmt.Println()
		for _, o := range orders {
			assigned := o.AssignedTo
			if len(assigned) == 0 {
				assigned = dimStyle.Render("unassigned")
			}
			fmt.Printf("  %s  %s  %-12s  %.2f  %s\n", o.ID, o.Customer, o.Status, o.Total, assigned)
		}
		fmt.Println()

		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:     "status <id> <status>",
	Short:   "Update an order's status",
	Long:    "Moves an order through its lifecycle, e.g. pending, preparing, out-for-delivery, delivered, cancelled.",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		endpoint, err := api.Expand(api.EndpointAdminOrderStatus, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		body, err := json.Marshal(map[string]string{"status": args[1]})
		if err != nil {
			return err
		}

		resp, err := callServer(endpoint, &api.Options{
			Method: http.MethodPut,
			Body:   string(body),
		}, "Could not update order status.")
		if err != nil {
			return err
		}

		message := resp.Message()
		if len(message) == 0 {
			message = fmt.Sprintf("Order marked %s.", args[1])
		}
		fmt.Println(successStyle.Render(message))

		return nil
	},
}

var ordersAssignCmd = &cobra.Command{
	Use:     "assign <order-id> <agent-id>",
	Short:   "Assign an order to a delivery agent",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		endpoint, err := api.Expand(api.EndpointAdminOrderAssign, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		body, err := json.Marshal(map[string]string{"agentId": args[1]})
		if err != nil {
			return err
		}

		resp, err := callServer(endpoint, &api.Options{
			Method: http.MethodPost,
			Body:   string(body),
		}, "Could not assign order.")
		if err != nil {
			return err
		}

		message := resp.Message()
		if len(message) == 0 {
			message = "Order assigned."
		}
		fmt.Println(successStyle.Render(message))

		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersListCmd, ordersStatusCmd, ordersAssignCmd)
	adminCmd.AddCommand(ordersCmd)
}
