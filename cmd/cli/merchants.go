package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var merchantsCmd = &cobra.Command{
	Use:   "merchants",
	Short: "Manage merchants",
}

var merchantsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List merchants",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminMerchants, nil, "Could not fetch merchants.")
		if err != nil {
			return err
		}

		var merchants []models.Merchant
		if err := resp.Decode("merchants", &merchants); err != nil {
			return fmt.Errorf("failed to decode merchants: %w", err)
		}

		if len(merchants) == 0 {
			fmt.Println(infoStyle.Render("No merchants found."))
			return nil
		}

		fmt.Println(headerStyle.Render("Merchants"))
		fmt.Println()
		for _, m := range merchants {
			fmt.Printf("  %s  %s <%s>  %s\n", m.ID, m.Name, m.Email, m.Status)
		}
		fmt.Println()

		return nil
	},
}

var merchantsApproveCmd = &cobra.Command{
	Use:     "approve <id>",
	Short:   "Approve a merchant application",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return merchantAction(api.EndpointAdminMerchantApprove, args[0], "Merchant approved.")
	},
}

var merchantsRejectCmd = &cobra.Command{
	Use:     "reject <id>",
	Short:   "Reject a merchant application",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return merchantAction(api.EndpointAdminMerchantReject, args[0], "Merchant rejected.")
	},
}

var merchantsToggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Short:   "Flip a merchant's active status",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return merchantAction(api.EndpointAdminMerchantStatus, args[0], "Merchant status updated.")
	},
}

func merchantAction(template string, id string, successMsg string) error {

	endpoint, err := api.Expand(template, map[string]string{"id": id})
	if err != nil {
		return err
	}

	resp, err := callServer(endpoint, &api.Options{Method: http.MethodPut}, "Could not update merchant.")
	if err != nil {
		return err
	}

	if message := resp.Message(); len(message) > 0 {
		successMsg = message
	}
	fmt.Println(successStyle.Render(successMsg))

	return nil
}

var merchantsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a merchant",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		confirmed, err := confirmDestructive(
			"Delete this merchant?",
			"This removes the merchant permanently and cannot be undone.",
		)
		if err != nil || !confirmed {
			return err
		}

		endpoint, err := api.Expand(api.EndpointAdminMerchantDelete, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		if _, err := callServer(endpoint, &api.Options{Method: http.MethodDelete}, "Could not delete merchant."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Merchant deleted."))
		return nil
	},
}

func init() {
	merchantsCmd.AddCommand(merchantsListCmd, merchantsApproveCmd, merchantsRejectCmd, merchantsToggleCmd, merchantsDeleteCmd)
	adminCmd.AddCommand(merchantsCmd)
}
