package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage products",
}

var productsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List products",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminProducts, nil, "Could not fetch products.")
		if err != nil {
			return err
		}

		var products []models.Product
		if err := resp.Decode("products", &products); err != nil {
			return fmt.Errorf("failed to decode products: %w", err)
		}

		if len(products) == 0 {
			fmt.Println(infoStyle.Render("No products found."))
			return nil
		}

		fmt.Println(headerStyle.Render("Products"))
		fmt.Println()
		for _, p := range products {
			availability := onlineStyle.Render("available")
			if !p.IsAvailable {
				availability = offlineStyle.Render("unavailable")
			}
			fmt.Printf("  %s  %-24s  %8.2f  %s\n", p.ID, p.Name, p.Price, availability)
		}
		fmt.Println()

		return nil
	},
}

var productsEnableCmd = &cobra.Command{
	Use:     "enable <id>",
	Short:   "Mark a product available",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProductAvailable(args[0], true)
	},
}

var productsDisableCmd = &cobra.Command{
	Use:     "disable <id>",
	Short:   "Mark a product unavailable",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProductAvailable(args[0], false)
	},
}

func setProductAvailable(id string, available bool) error {

	endpoint, err := api.Expand(api.EndpointAdminProductStatus, map[string]string{"id": id})
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]bool{"isAvailable": available})
	if err != nil {
		return err
	}

	resp, err := callServer(endpoint, &api.Options{
		Method: http.MethodPut,
		Body:   string(body),
	}, "Could not update product.")
	if err != nil {
		return err
	}

	message := resp.Message()
	if len(message) == 0 {
		message = "Product updated."
	}
	fmt.Println(successStyle.Render(message))

	return nil
}

var productsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a product",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		confirmed, err := confirmDestructive(
			"Delete this product?",
			"This removes the product permanently and cannot be undone.",
		)
		if err != nil || !confirmed {
			return err
		}

		endpoint, err := api.Expand(api.EndpointAdminProductDelete, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		if _, err := callServer(endpoint, &api.Options{Method: http.MethodDelete}, "Could not delete product."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Product deleted."))
		return nil
	},
}

func init() {
	productsCmd.AddCommand(productsListCmd, productsEnableCmd, productsDisableCmd, productsDeleteCmd)
	adminCmd.AddCommand(productsCmd)
}
