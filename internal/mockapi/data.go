// internal/mockapi/data.go
package mockapi

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/api"
	"golang.org/x/crypto/bcrypt"
)

// userRecord pairs a user with their password hash
type userRecord struct {
	api.User
	PasswordHash string
}

// dataset is the in-memory backing store for the development backend
type dataset struct {
	mu         sync.Mutex
	products   []api.Product
	categories []api.Category
	orders     []api.Order
	users      []userRecord
	carts      map[string][]api.CartLine
}

// newDataset builds a seeded dataset. Passwords are bcrypt-hashed with the
// given cost.
func newDataset(bcryptCost int) (*dataset, error) {
	d := &dataset{
		carts: make(map[string][]api.CartLine),
	}

	categoryNames := []string{
		"Electronics", "Clothing", "Books", "Home & Garden", "Sports & Outdoors",
	}
	for _, name := range categoryNames {
		d.categories = append(d.categories, api.Category{ID: uuid.New().String(), Name: name})
	}

	now := time.Now().UTC()
	seedProducts := []struct {
		name        string
		description string
		price       float64
		category    string
		brand       string
		rating      float64
		stock       int
	}{
		{"Wireless Headphones", "Over-ear headphones with active noise cancellation", 129.99, "Electronics", "Soundline", 4.6, 42},
		{"Smartphone X200", "6.5 inch display, 128GB storage, dual camera", 699.00, "Electronics", "Nexacell", 4.3, 15},
		{"4K Action Camera", "Waterproof action camera with image stabilization", 249.50, "Electronics", "Trailcam", 4.1, 27},
		{"Mechanical Keyboard", "Tenkeyless mechanical keyboard with hot-swap switches", 89.90, "Electronics", "Keyforge", 4.8, 60},
		{"Cotton T-Shirt", "Classic fit crew neck tee, pre-shrunk cotton", 19.99, "Clothing", "Plainwear", 4.0, 200},
		{"Denim Jacket", "Medium-wash denim jacket with button front", 64.00, "Clothing", "Bluegrain", 4.4, 35},
		{"Running Shoes", "Lightweight road running shoes with cushioned sole", 109.95, "Sports & Outdoors", "Stridex", 4.5, 80},
		{"Yoga Mat", "Non-slip 6mm yoga mat with carry strap", 29.99, "Sports & Outdoors", "Stridex", 4.2, 150},
		{"The Silent Harbor", "Hardcover mystery novel, 412 pages", 24.00, "Books", "Inkhouse", 4.7, 55},
		{"Practical Gardening", "Illustrated guide to year-round vegetable gardening", 32.50, "Books", "Inkhouse", 4.1, 40},
		{"Ceramic Planter Set", "Set of three glazed ceramic planters with drainage", 44.99, "Home & Garden", "Terrovia", 4.3, 70},
		{"LED Desk Lamp", "Dimmable desk lamp with adjustable color temperature", 39.99, "Home & Garden", "Lumora", 4.0, 90},
	}
	for i, p := range seedProducts {
		d.products = append(d.products, api.Product{
			ID:          uuid.New().String(),
			Name:        p.name,
			Description: p.description,
			Price:       p.price,
			Image:       fmt.Sprintf("/images/%s.jpg", slugify(p.name)),
			Category:    p.category,
			Brand:       p.brand,
			Rating:      p.rating,
			Stock:       p.stock,
			CreatedAt:   now.Add(-time.Duration(len(seedProducts)-i) * 24 * time.Hour),
		})
	}

	seedUsers := []struct {
		name     string
		email    string
		password string
		isAdmin  bool
	}{
		{"Admin", "admin@example.com", "admin-password", true},
		{"Jordan Lee", "jordan@example.com", "customer-password", false},
	}
	for i, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		d.users = append(d.users, userRecord{
			User: api.User{
				ID:        uuid.New().String(),
				Name:      u.name,
				Email:     u.email,
				IsAdmin:   u.isAdmin,
				CreatedAt: now.Add(-time.Duration(30-i) * 24 * time.Hour),
			},
			PasswordHash: string(hash),
		})
	}

	// A few historical orders so the dashboard has data
	customer := d.users[1].User
	for i, status := range []string{api.OrderStatusDelivered, api.OrderStatusShipped, api.OrderStatusPending} {
		product := d.products[i]
		d.orders = append(d.orders, api.Order{
			ID:        uuid.New().String(),
			User:      customer.ID,
			Items:     []api.CartLine{{Product: product.ID, Quantity: 1, Price: product.Price, Name: product.Name, Image: product.Image}},
			Total:     product.Price,
			Status:    status,
			CreatedAt: now.Add(-time.Duration(7-i) * 24 * time.Hour),
		})
	}

	return d, nil
}

func (d *dataset) findUserByEmail(email string) (*userRecord, bool) {
	for i := range d.users {
		if strings.EqualFold(d.users[i].Email, email) {
			return &d.users[i], true
		}
	}
	return nil, false
}

func (d *dataset) findUserByID(id string) (*userRecord, bool) {
	for i := range d.users {
		if d.users[i].ID == id {
			return &d.users[i], true
		}
	}
	return nil, false
}

func (d *dataset) findProduct(id string) (*api.Product, bool) {
	for i := range d.products {
		if d.products[i].ID == id {
			return &d.products[i], true
		}
	}
	return nil, false
}

func (d *dataset) findOrder(id string) (*api.Order, bool) {
	for i := range d.orders {
		if d.orders[i].ID == id {
			return &d.orders[i], true
		}
	}
	return nil, false
}

func (d *dataset) findCategory(id string) (*api.Category, bool) {
	for i := range d.categories {
		if d.categories[i].ID == id {
			return &d.categories[i], true
		}
	}
	return nil, false
}

// cartPayload assembles the authoritative cart view for a user
func (d *dataset) cartPayload(userID string) api.CartPayload {
	lines := d.carts[userID]

	payload := api.CartPayload{Items: []api.CartLine{}}
	for _, line := range lines {
		payload.Items = append(payload.Items, line)
		payload.Total += line.Price * float64(line.Quantity)
		payload.ItemCount += line.Quantity
	}
	return payload
}

// sortedByNewest returns products ordered by creation time, newest first
func sortedByNewest(products []api.Product) []api.Product {
	dup := make([]api.Product, len(products))
	copy(dup, products)
	sort.SliceStable(dup, func(i, j int) bool {
		return dup[i].CreatedAt.After(dup[j].CreatedAt)
	})
	return dup
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "&", "and")
	return slug
}
