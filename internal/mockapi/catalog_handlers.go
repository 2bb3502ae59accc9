// internal/mockapi/catalog_handlers.go
package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-client/internal/api"
)

// listProducts handles GET /products
func (s *Server) listProducts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 12)
	sortBy := c.DefaultQuery("sortBy", "popularity")
	category := c.Query("category")
	brand := c.Query("brand")
	search := strings.ToLower(c.Query("search"))
	minRating, _ := strconv.ParseFloat(c.Query("rating"), 64)
	priceMin, priceMax := parsePriceRange(c.Query("priceRange"))

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	matched := make([]api.Product, 0, len(s.data.products))
	for _, p := range s.data.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if brand != "" && !strings.EqualFold(p.Brand, brand) {
			continue
		}
		if minRating > 0 && p.Rating < minRating {
			continue
		}
		if priceMin > 0 && p.Price < priceMin {
			continue
		}
		if priceMax > 0 && p.Price > priceMax {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, p)
	}

	sortProducts(matched, sortBy)

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, api.ProductPage{
		Products:   matched[start:end],
		Total:      total,
		TotalPages: totalPages,
	})
}

// searchProducts handles GET /products/search
func (s *Server) searchProducts(c *gin.Context) {
	term := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Search term is required"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	matched := make([]api.Product, 0)
	for _, p := range s.data.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matched = append(matched, p)
		}
	}

	totalPages := 0
	if len(matched) > 0 {
		totalPages = 1
	}
	c.JSON(http.StatusOK, api.ProductPage{
		Products:   matched,
		Total:      len(matched),
		TotalPages: totalPages,
	})
}

// listCategories handles GET /products/categories
func (s *Server) listCategories(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	c.JSON(http.StatusOK, s.data.categories)
}

// getProduct handles GET /products/:id
func (s *Server) getProduct(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	product, ok := s.data.findProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// relatedProducts handles GET /products/related/:categoryId
func (s *Server) relatedProducts(c *gin.Context) {
	exclude := c.Query("exclude")
	limit := queryInt(c, "limit", 4)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	category, ok := s.data.findCategory(c.Param("categoryId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	related := make([]api.Product, 0, limit)
	for _, p := range s.data.products {
		if len(related) >= limit {
			break
		}
		if p.ID == exclude || !strings.EqualFold(p.Category, category.Name) {
			continue
		}
		related = append(related, p)
	}

	c.JSON(http.StatusOK, related)
}

// sortProducts orders products in place by the given sort key
func sortProducts(products []api.Product, sortBy string) {
	switch sortBy {
	case "price_low_high":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price_high_low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "newest":
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	case "rating", "popularity":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}
}

// parsePriceRange parses a "min-max" price range parameter
func parsePriceRange(value string) (float64, float64) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	min, err1 := strconv.ParseFloat(parts[0], 64)
	max, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return min, max
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
