// internal/mockapi/handlers.go
package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/api"
	"golang.org/x/crypto/bcrypt"
)

// loginRequest represents login credentials
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// registerRequest represents account creation data
type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// login handles POST /auth/login
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUserByEmail(req.Email)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if user.IsBlocked {
		c.JSON(http.StatusForbidden, gin.H{"message": "Your account has been blocked"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := issueToken(s.config, user.ID, user.Email, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, api.AuthResponse{Token: token, User: user.User})
}

// register handles POST /auth/register
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email and a password of at least 8 characters are required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, exists := s.data.findUserByEmail(req.Email); exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.MockAPI.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create account"})
		return
	}

	record := userRecord{
		User: api.User{
			ID:        uuid.New().String(),
			Name:      req.Name,
			Email:     req.Email,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: string(hash),
	}
	s.data.users = append(s.data.users, record)

	token, err := issueToken(s.config, record.ID, record.Email, record.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, api.AuthResponse{Token: token, User: record.User})
}

// addToCartRequest represents add to cart data
type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// updateCartRequest represents quantity update data
type updateCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0"`
}

// getCart handles GET /cart
func (s *Server) getCart(c *gin.Context) {
	userID := c.GetString("user_id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c.JSON(http.StatusOK, s.data.cartPayload(userID))
}

// addToCart handles POST /cart/add
func (s *Server) addToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product and a positive quantity are required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	product, ok := s.data.findProduct(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	lines := s.data.carts[userID]
	existing := 0
	for _, line := range lines {
		if line.Product == req.ProductID {
			existing = line.Quantity
			break
		}
	}
	if existing+req.Quantity > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Insufficient stock for this product",
		})
		return
	}

	merged := false
	for i := range lines {
		if lines[i].Product == req.ProductID {
			lines[i].Quantity += req.Quantity
			lines[i].Price = product.Price
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, api.CartLine{
			Product:  product.ID,
			Quantity: req.Quantity,
			Price:    product.Price,
			Name:     product.Name,
			Image:    product.Image,
		})
	}
	s.data.carts[userID] = lines

	c.JSON(http.StatusOK, api.AddToCartResult{
		Price: product.Price,
		Name:  product.Name,
		Image: product.Image,
	})
}

// updateCartItem handles PUT /cart/update
func (s *Server) updateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product and a non-negative quantity are required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	lines := s.data.carts[userID]
	for i := range lines {
		if lines[i].Product != req.ProductID {
			continue
		}

		if req.Quantity == 0 {
			s.data.carts[userID] = append(lines[:i], lines[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
			return
		}

		if product, ok := s.data.findProduct(req.ProductID); ok && req.Quantity > product.Stock {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock for this product"})
			return
		}

		lines[i].Quantity = req.Quantity
		c.JSON(http.StatusOK, gin.H{"message": "Quantity updated"})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
}

// removeCartItem handles DELETE /cart/remove/:id
func (s *Server) removeCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	lines := s.data.carts[userID]
	for i := range lines {
		if lines[i].Product == productID {
			s.data.carts[userID] = append(lines[:i], lines[i+1:]...)
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// clearCart handles DELETE /cart/clear
func (s *Server) clearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	delete(s.data.carts, userID)
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
