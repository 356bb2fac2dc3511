package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Show platform dashboard stats",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminDashboardStats, nil, "Could not fetch dashboard stats.")
		if err != nil {
			return err
		}

		var stats models.DashboardStats
		key := ""
		if _, ok := resp.Body["stats"]; ok {
			key = "stats"
		}
		if err := resp.Decode(key, &stats); err != nil {
			return fmt.Errorf("failed to decode dashboard stats: %w", err)
		}

		fmt.Println(headerStyle.Render("Grojet Dashboard"))
		fmt.Println()
		fmt.Printf("  Users:          %d\n", stats.TotalUsers)
		fmt.Printf("  Orders:         %d\n", stats.TotalOrders)
		fmt.Printf("  Pending orders: %d\n", stats.PendingOrders)
		fmt.Printf("  Merchants:      %d\n", stats.TotalMerchants)
		fmt.Printf("  Active agents:  %d\n", stats.ActiveAgents)
		fmt.Println()

		return nil
	},
}

func init() {
	adminCmd.AddCommand(dashboardCmd)
}
