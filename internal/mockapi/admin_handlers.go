// internal/mockapi/admin_handlers.go
package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/api"
)

// adminDashboard handles GET /admin/dashboard
func (s *Server) adminDashboard(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	var revenue float64
	for _, order := range s.data.orders {
		if order.Status != api.OrderStatusCancelled {
			revenue += order.Total
		}
	}

	recent := make([]api.Order, len(s.data.orders))
	copy(recent, s.data.orders)
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	top := make([]api.Product, len(s.data.products))
	copy(top, s.data.products)
	sortProducts(top, "rating")
	if len(top) > 5 {
		top = top[:5]
	}

	c.JSON(http.StatusOK, api.DashboardSummary{
		TotalProducts: len(s.data.products),
		TotalOrders:   len(s.data.orders),
		TotalUsers:    len(s.data.users),
		TotalRevenue:  revenue,
		RecentOrders:  recent,
		TopProducts:   top,
	})
}

// adminListProducts handles GET /admin/products
func (s *Server) adminListProducts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	products := sortedByNewest(s.data.products)
	total := len(products)
	start, end := pageBounds(page, limit, total)

	c.JSON(http.StatusOK, api.ProductPage{
		Products:   products[start:end],
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	})
}

// adminCreateProduct handles POST /admin/products
func (s *Server) adminCreateProduct(c *gin.Context) {
	var input api.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}
	if input.Name == "" || input.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product name and a positive price are required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	product := api.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Brand:       input.Brand,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	s.data.products = append(s.data.products, product)

	c.JSON(http.StatusCreated, product)
}

// adminUpdateProduct handles PUT /admin/products/:id
func (s *Server) adminUpdateProduct(c *gin.Context) {
	var input api.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	product, ok := s.data.findProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.Brand != "" {
		product.Brand = input.Brand
	}
	if input.Stock > 0 {
		product.Stock = input.Stock
	}

	c.JSON(http.StatusOK, product)
}

// adminDeleteProduct handles DELETE /admin/products/:id
func (s *Server) adminDeleteProduct(c *gin.Context) {
	id := c.Param("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for i := range s.data.products {
		if s.data.products[i].ID == id {
			s.data.products = append(s.data.products[:i], s.data.products[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
}

// adminListOrders handles GET /admin/orders
func (s *Server) adminListOrders(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	total := len(s.data.orders)
	start, end := pageBounds(page, limit, total)

	c.JSON(http.StatusOK, api.OrderPage{
		Orders:     s.data.orders[start:end],
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	})
}

// orderStatusRequest represents an order status change
type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var validOrderStatuses = map[string]bool{
	api.OrderStatusPending:    true,
	api.OrderStatusConfirmed:  true,
	api.OrderStatusProcessing: true,
	api.OrderStatusShipped:    true,
	api.OrderStatusDelivered:  true,
	api.OrderStatusCancelled:  true,
}

// adminSetOrderStatus handles PUT /admin/orders/:id/status
func (s *Server) adminSetOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validOrderStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid order status is required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	order, ok := s.data.findOrder(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	order.Status = req.Status
	c.JSON(http.StatusOK, order)
}

// adminListUsers handles GET /admin/users
func (s *Server) adminListUsers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	users := make([]api.User, len(s.data.users))
	for i, record := range s.data.users {
		users[i] = record.User
	}

	total := len(users)
	start, end := pageBounds(page, limit, total)

	c.JSON(http.StatusOK, api.UserPage{
		Users:      users[start:end],
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	})
}

// userStatusRequest represents a user blocked-flag change
type userStatusRequest struct {
	IsBlocked bool `json:"isBlocked"`
}

// adminSetUserBlocked handles PUT /admin/users/:id/status
func (s *Server) adminSetUserBlocked(c *gin.Context) {
	var req userStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user status data"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUserByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	user.IsBlocked = req.IsBlocked
	c.JSON(http.StatusOK, user.User)
}

// adminListCategories handles GET /admin/categories
func (s *Server) adminListCategories(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c.JSON(http.StatusOK, s.data.categories)
}

// categoryRequest represents category create/update data
type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// adminCreateCategory handles POST /admin/categories
func (s *Server) adminCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	category := api.Category{ID: uuid.New().String(), Name: req.Name}
	s.data.categories = append(s.data.categories, category)

	c.JSON(http.StatusCreated, category)
}

// adminUpdateCategory handles PUT /admin/categories/:id
func (s *Server) adminUpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name is required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	category, ok := s.data.findCategory(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	category.Name = req.Name
	c.JSON(http.StatusOK, category)
}

// adminDeleteCategory handles DELETE /admin/categories/:id
func (s *Server) adminDeleteCategory(c *gin.Context) {
	id := c.Param("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for i := range s.data.categories {
		if s.data.categories[i].ID == id {
			s.data.categories = append(s.data.categories[:i], s.data.categories[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
}

// pageBounds clamps a page window to the collection size
func pageBounds(page, limit, total int) (int, int) {
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
