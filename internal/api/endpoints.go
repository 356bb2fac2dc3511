package api

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoint catalog for the Grojet backend. Paths with ":name" placeholders
// are templates; resolve them with Expand before passing to Request.
const (
	// Delivery agent auth
	EndpointDeliveryLogin          = "/delivery/auth/login"
	EndpointDeliveryLogout         = "/delivery/auth/logout"
	EndpointDeliveryProfile        = "/delivery/auth/profile"
	EndpointDeliveryStatusToggle   = "/delivery/auth/status/toggle"
	EndpointDeliveryLocation       = "/delivery/auth/location"
	EndpointDeliveryEarningsUpdate = "/delivery/auth/earnings/update"

	// Admin auth
	EndpointAdminLogin = "/admin/auth/login"

	// Admin dashboard
	EndpointAdminDashboardStats = "/admin/dashboard/stats"

	// Admin user management
	EndpointAdminUsers      = "/admin/users"
	EndpointAdminUserStatus = "/admin/users/:id/status"
	EndpointAdminUserDelete = "/admin/users/:id"

	// Admin delivery agent management
	EndpointAdminDeliveryAgents       = "/admin/delivery-agents"
	EndpointAdminDeliveryAgentApprove = "/admin/delivery-agents/:id/approve"
	EndpointAdminDeliveryAgentReject  = "/admin/delivery-agents/:id/reject"
	EndpointAdminDeliveryAgentStatus  = "/admin/delivery-agents/:id/status"
	EndpointAdminDeliveryAgentDelete  = "/admin/delivery-agents/:id"

	// Admin order management
	EndpointAdminOrders      = "/admin/orders"
	EndpointAdminOrderStatus = "/admin/orders/:id/status"
	EndpointAdminOrderAssign = "/admin/orders/:id/assign"

	// Admin merchant management
	EndpointAdminMerchants       = "/admin/merchants"
	EndpointAdminMerchantApprove = "/admin/merchants/:id/approve"
	EndpointAdminMerchantReject  = "/admin/merchants/:id/reject"
	EndpointAdminMerchantStatus  = "/admin/merchants/:id/status"
	EndpointAdminMerchantDelete  = "/admin/merchants/:id"

	// Admin category management
	EndpointAdminCategories     = "/admin/categories"
	EndpointAdminCategoryUpdate = "/admin/categories/:id"
	EndpointAdminCategoryDelete = "/admin/categories/:id"

	// Admin product management
	EndpointAdminProducts      = "/admin/products"
	EndpointAdminProductStatus = "/admin/products/:id/status"
	EndpointAdminProductDelete = "/admin/products/:id"

	// Inventory management
	EndpointInventoryAll      = "/inventory/all"
	EndpointInventoryAdd      = "/inventory/add"
	EndpointInventoryDelete   = "/inventory/delete"
	EndpointInventoryEdit     = "/inventory/edit"
	EndpointInventoryStats    = "/inventory/stats/summary"
	EndpointInventoryLowStock = "/inventory/alerts/low-stock"
)

// Expand resolves the ":name" placeholders in an endpoint template. Every
// placeholder must have a value in params; a template with an unresolved
// placeholder never reaches the wire.
func Expand(template string, params map[string]string) (string, error) {

	segments := strings.Split(template, "/")

	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}

		name := strings.TrimPrefix(segment, ":")
		value, ok := params[name]
		if !ok || len(value) == 0 {
			return "", fmt.Errorf("missing value for path parameter %q in %s", name, template)
		}

		segments[i] = url.PathEscape(value)
	}

	return strings.Join(segments, "/"), nil
}
