package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage stock",
}

var (
	inventoryItemName string
	inventoryCategory string
	inventoryQuantity float64
	inventoryPrice    float64
)

var inventoryListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List stock items",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointInventoryAll, nil, "Failed to load inventory.")
		if err != nil {
			return err
		}

		var items []models.InventoryItem
		if err := resp.Decode("inventory", &items); err != nil {
			return fmt.Errorf("failed to decode inventory: %w", err)
		}

		if len(items) == 0 {
			fmt.Println(infoStyle.Render("Inventory is empty."))
			return nil
		}

		fmt.Println(headerStyle.Render("Inventory"))
		fmt.Println()
		for _, item := range items {
			low := ""
			if item.StockQuantity <= 5 {
				low = "  " + warningStyle.Render("LOW STOCK")
			}
			fmt.Printf("  %s  %-24s  %-12s  qty=%.0f  %8.2f%s\n",
				item.ID, item.ItemName, item.Category, item.StockQuantity, item.Price, low)
		}
		fmt.Println()

		return nil
	},
}

var inventoryAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a stock item",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		if len(inventoryItemName) == 0 || len(inventoryCategory) == 0 || inventoryQuantity <= 0 || inventoryPrice <= 0 {
			return fmt.Errorf("please fill in all fields: --name, --category, --quantity, --price")
		}

		body, err := json.Marshal(map[string]any{
			"itemName":      inventoryItemName,
			"stockquantity": inventoryQuantity,
			"price":         inventoryPrice,
			"category":      inventoryCategory,
		})
		if err != nil {
			return err
		}

		if _, err := callServer(api.EndpointInventoryAdd, &api.Options{
			Method: http.MethodPost,
			Body:   string(body),
		}, "Failed to add item."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Item added successfully!"))
		return nil
	},
}

var inventoryEditCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit a stock item",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		updates := map[string]any{"id": args[0]}
		if len(inventoryItemName) > 0 {
			updates["itemName"] = inventoryItemName
		}
		if len(inventoryCategory) > 0 {
			updates["category"] = inventoryCategory
		}
		if inventoryQuantity > 0 {
			updates["stockquantity"] = inventoryQuantity
		}
		if inventoryPrice > 0 {
			updates["price"] = inventoryPrice
		}
		if len(updates) == 1 {
			return fmt.Errorf("nothing to update; pass --name, --category, --quantity or --price")
		}

		body, err := json.Marshal(updates)
		if err != nil {
			return err
		}

		if _, err := callServer(api.EndpointInventoryEdit, &api.Options{
			Method: http.MethodPut,
			Body:   string(body),
		}, "Failed to update item."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Item updated."))
		return nil
	},
}

var inventoryDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a stock item",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		confirmed, err := confirmDestructive(
			"Delete this item?",
			"This removes the stock item permanently.",
		)
		if err != nil || !confirmed {
			return err
		}

		body, err := json.Marshal(map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		if _, err := callServer(api.EndpointInventoryDelete, &api.Options{
			Method: http.MethodDelete,
			Body:   string(body),
		}, "Failed to delete item."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Item deleted."))
		return nil
	},
}

var inventoryStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show inventory summary",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointInventoryStats, nil, "Failed to load inventory stats.")
		if err != nil {
			return err
		}

		var stats models.InventoryStats
		key := ""
		if _, ok := resp.Body["stats"]; ok {
			key = "stats"
		}
		if err := resp.Decode(key, &stats); err != nil {
			return fmt.Errorf("failed to decode inventory stats: %w", err)
		}

		fmt.Println(headerStyle.Render("Inventory Summary"))
		fmt.Println()
		fmt.Printf("  Items:     %d\n", stats.TotalItems)
		fmt.Printf("  Value:     %.2f\n", stats.TotalValue)
		fmt.Printf("  Low stock: %d\n", stats.LowStockCount)
		fmt.Println()

		return nil
	},
}

var inventoryLowStockCmd = &cobra.Command{
	Use:     "low-stock",
	Short:   "List items running low",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointInventoryLowStock, nil, "Failed to load low-stock alerts.")
		if err != nil {
			return err
		}

		var items []models.InventoryItem
		if err := resp.Decode("inventory", &items); err != nil {
			return fmt.Errorf("failed to decode inventory: %w", err)
		}

		if len(items) == 0 {
			fmt.Println(successStyle.Render("Nothing is running low."))
			return nil
		}

		fmt.Println(warningStyle.Render("Low Stock"))
		fmt.Println()
		for _, item := range items {
			fmt.Printf("  %s  %-24s  qty=%.0f\n", item.ID, item.ItemName, item.StockQuantity)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{inventoryAddCmd, inventoryEditCmd} {
		cmd.Flags().StringVar(&inventoryItemName, "name", "", "Item name")
		cmd.Flags().StringVar(&inventoryCategory, "category", "", "Item category")
		cmd.Flags().Float64Var(&inventoryQuantity, "quantity", 0, "Stock quantity")
		cmd.Flags().Float64Var(&inventoryPrice, "price", 0, "Unit price")
	}

	inventoryCmd.AddCommand(
		inventoryListCmd,
		inventoryAddCmd,
		inventoryEditCmd,
		inventoryDeleteCmd,
		inventoryStatsCmd,
		inventoryLowStockCmd,
	)
	rootCmd.AddCommand(inventoryCmd)
}
