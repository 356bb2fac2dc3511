package models

// Server-side entities as the admin endpoints return them. All fields are
// optional; the client renders what it gets and never validates.

type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"isActive"`
}

type DeliveryAgent struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Zone     string `json:"zone"`
	Status   string `json:"status"`
	IsOnline bool   `json:"isOnline"`
}

type Order struct {
	ID         string  `json:"_id"`
	Customer   string  `json:"customerName"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
	AssignedTo string  `json:"assignedTo"`
	CreatedAt  string  `json:"createdAt"`
}

type Merchant struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	IsActive bool   `json:"isActive"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

type InventoryItem struct {
	ID            string  `json:"_id"`
	ItemName      string  `json:"itemName"`
	Category      string  `json:"category"`
	StockQuantity float64 `json:"stockquantity"`
	Price         float64 `json:"price"`
}

type InventoryStats struct {
	TotalItems    int     `json:"totalItems"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int     `json:"lowStockCount"`
}

type DashboardStats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalOrders    int `json:"totalOrders"`
	TotalMerchants int `json:"totalMerchants"`
	PendingOrders  int `json:"pendingOrders"`
	ActiveAgents   int `json:"activeAgents"`
}
