package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {

		if !sessionStore.IsAuthenticated() {
			fmt.Println(infoStyle.Render("No active session."))
			return nil
		}

		// Tell the server first, best effort. The local session is cleared
		// no matter what the server says.
		if sessionStore.Role() == models.RoleAgent {
			_, err := apiClient.Request(context.Background(), api.EndpointDeliveryLogout, &api.Options{
				Method: http.MethodPost,
			})
			if err != nil {
				logrus.WithError(err).Debugln("Logout request failed, clearing session anyway")
			}
		}

		if !sessionStore.Clear() {
			fmt.Println(warningStyle.Render("Some session data could not be removed."))
			return nil
		}

		fmt.Println(successStyle.Render("Logged out."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
