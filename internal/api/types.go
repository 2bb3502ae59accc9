// internal/api/types.go
package api

import "time"

// Product represents a catalog product as served by the backend
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand"`
	Rating      float64   `json:"rating"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Category represents a product category
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CartLine represents one cart line item on the wire
type CartLine struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
}

// CartPayload represents the authoritative cart resource
type CartPayload struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// AddToCartResult carries the server-confirmed item fields after an add
type AddToCartResult struct {
	Price float64 `json:"price"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
}

// ProductQuery represents product list query parameters
type ProductQuery struct {
	Page      int
	Limit     int
	SortBy    string
	Category  string
	PriceMin  float64
	PriceMax  float64
	Brand     string
	MinRating float64
	Search    string
}

// ProductPage represents a page of products with pagination metadata
type ProductPage struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	TotalPages int       `json:"totalPages"`
}

// Order represents an order in admin views
type Order struct {
	ID        string     `json:"_id"`
	User      string     `json:"user"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// OrderPage represents a page of orders with pagination metadata
type OrderPage struct {
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalPages int     `json:"totalPages"`
}

// User represents a storefront user in admin views
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPage represents a page of users with pagination metadata
type UserPage struct {
	Users      []User `json:"users"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// DashboardSummary represents admin dashboard metrics
type DashboardSummary struct {
	TotalProducts int       `json:"totalProducts"`
	TotalOrders   int       `json:"totalOrders"`
	TotalUsers    int       `json:"totalUsers"`
	TotalRevenue  float64   `json:"totalRevenue"`
	RecentOrders  []Order   `json:"recentOrders"`
	TopProducts   []Product `json:"topProducts"`
}

// ProductInput represents product create/update data sent to admin endpoints
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Stock       int     `json:"stock"`
}

// AuthResponse represents a successful login/register response
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Order status values understood by the backend
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)
