package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Yathish26/GrojetDPartner/internal/api"
	"github.com/Yathish26/GrojetDPartner/internal/models"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoryName string
var categoryDescription string

var categoriesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List categories",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		resp, err := callServer(api.EndpointAdminCategories, nil, "Could not fetch categories.")
		if err != nil {
			return err
		}

		var categories []models.Category
		if err := resp.Decode("categories", &categories); err != nil {
			return fmt.Errorf("failed to decode categories: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println(infoStyle.Render("No categories found."))
			return nil
		}

		fmt.Println(headerStyle.Render("Categories"))
		fmt.Println()
		for _, c := range categories {
			fmt.Printf("  %s  %s", c.ID, c.Name)
			if len(c.Description) > 0 {
				fmt.Printf("  %s", dimStyle.Render(c.Description))
			}
			fmt.Println()
		}
		fmt.Println()

		return nil
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Create a category",
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		if len(categoryName) == 0 {
			return fmt.Errorf("--name is required")
		}

		body, err := json.Marshal(map[string]string{
			"name":        categoryName,
			"description": categoryDescription,
		})
		if err != nil {
			return err
		}

		resp, err := callServer(api.EndpointAdminCategories, &api.Options{
			Method: http.MethodPost,
			Body:   string(body),
		}, "Could not create category.")
		if err != nil {
			return err
		}

		message := resp.Message()
		if len(message) == 0 {
			message = "Category created."
		}
		fmt.Println(successStyle.Render(message))

		return nil
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:     "update <id>",
	Short:   "Update a category",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		updates := map[string]string{}
		if len(categoryName) > 0 {
			updates["name"] = categoryName
		}
		if len(categoryDescription) > 0 {
			updates["description"] = categoryDescription
		}
		if len(updates) == 0 {
			return fmt.Errorf("nothing to update; pass --name or --description")
		}

		endpoint, err := api.Expand(api.EndpointAdminCategoryUpdate, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		body, err := json.Marshal(updates)
		if err != nil {
			return err
		}

		resp, err := callServer(endpoint, &api.Options{
			Method: http.MethodPut,
			Body:   string(body),
		}, "Could not update category.")
		if err != nil {
			return err
		}

		message := resp.Message()
		if len(message) == 0 {
			message = "Category updated."
		}
		fmt.Println(successStyle.Render(message))

		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a category",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAdminAuthE,
	RunE: func(cmd *cobra.Command, args []string) error {

		confirmed, err := confirmDestructive(
			"Delete this category?",
			"Products in this category keep working but lose their grouping.",
		)
		if err != nil || !confirmed {
			return err
		}

		endpoint, err := api.Expand(api.EndpointAdminCategoryDelete, map[string]string{"id": args[0]})
		if err != nil {
			return err
		}

		if _, err := callServer(endpoint, &api.Options{Method: http.MethodDelete}, "Could not delete category."); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Category deleted."))
		return nil
	},
}

func init() {
	categoriesCreateCmd.Flags().StringVar(&categoryName, "name", "", "Category name")
	categoriesCreateCmd.Flags().StringVar(&categoryDescription, "description", "", "Category description")
	categoriesUpdateCmd.Flags().StringVar(&categoryName, "name", "", "New category name")
	categoriesUpdateCmd.Flags().StringVar(&categoryDescription, "description", "", "New category description")

	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd)
	adminCmd.AddCommand(categoriesCmd)
}
