package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Grojet Partner " + common.GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
