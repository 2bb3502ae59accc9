// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/storefront-client/internal/config"
)

// Client talks to the storefront backend API. It is safe for concurrent
// use; the only mutable field is the bearer token installed after login.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	mu    sync.RWMutex
	token string
}

// NewClient creates a new API client from config
func NewClient(cfg *config.Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.API.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse API base URL %q: %w", cfg.API.BaseURL, err)
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: cfg.API.RequestTimeout,
		},
		userAgent: cfg.API.UserAgent,
	}, nil
}

// SetToken installs the bearer token used for authenticated endpoints
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Auth endpoints

// Login authenticates a user and returns the issued token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var payload AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates a new user account and returns the issued token
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var payload AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Cart endpoints

// GetCart retrieves the authoritative cart for the authenticated user
func (c *Client) GetCart(ctx context.Context) (*CartPayload, error) {
	var payload CartPayload
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AddToCart adds a product to the cart and returns the server-confirmed
// price, name and image for the line item
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*AddToCartResult, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	var payload AddToCartResult
	if err := c.do(ctx, http.MethodPost, "/cart/add", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpdateCartItem updates the quantity of a cart line item
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	body := map[string]any{"productId": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPut, "/cart/update", nil, body, nil)
}

// RemoveCartItem removes a line item from the cart
func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/remove/"+url.PathEscape(productID), nil, nil, nil)
}

// ClearCart removes all items from the cart
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil, nil)
}

// Catalog endpoints

// ListProducts retrieves a filtered, sorted, paginated product listing
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) (*ProductPage, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.SortBy != "" {
		values.Set("sortBy", query.SortBy)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.PriceMin > 0 || query.PriceMax > 0 {
		values.Set("priceRange", fmt.Sprintf("%g-%g", query.PriceMin, query.PriceMax))
	}
	if query.Brand != "" {
		values.Set("brand", query.Brand)
	}
	if query.MinRating > 0 {
		values.Set("rating", strconv.FormatFloat(query.MinRating, 'g', -1, 64))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	var payload ProductPage
	if err := c.do(ctx, http.MethodGet, "/products", values, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchProducts performs a full-text product search
func (c *Client) SearchProducts(ctx context.Context, term string) (*ProductPage, error) {
	values := url.Values{}
	values.Set("q", term)

	var payload ProductPage
	if err := c.do(ctx, http.MethodGet, "/products/search", values, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ListCategories retrieves all product categories
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var payload []Category
	if err := c.do(ctx, http.MethodGet, "/products/categories", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetProduct retrieves a single product by ID
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var payload Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// RelatedProducts retrieves products in the same category, excluding one
func (c *Client) RelatedProducts(ctx context.Context, categoryID, excludeID string, limit int) ([]Product, error) {
	values := url.Values{}
	if excludeID != "" {
		values.Set("exclude", excludeID)
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	var payload []Product
	if err := c.do(ctx, http.MethodGet, "/products/related/"+url.PathEscape(categoryID), values, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Admin endpoints

// AdminDashboard retrieves dashboard summary metrics
func (c *Client) AdminDashboard(ctx context.Context) (*DashboardSummary, error) {
	var payload DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminListProducts retrieves one page of products for admin views
func (c *Client) AdminListProducts(ctx context.Context, page, limit int) (*ProductPage, error) {
	var payload ProductPage
	if err := c.do(ctx, http.MethodGet, "/admin/products", pageQuery(page, limit), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminListOrders retrieves one page of orders for admin views
func (c *Client) AdminListOrders(ctx context.Context, page, limit int) (*OrderPage, error) {
	var payload OrderPage
	if err := c.do(ctx, http.MethodGet, "/admin/orders", pageQuery(page, limit), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminListUsers retrieves one page of users for admin views
func (c *Client) AdminListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	var payload UserPage
	if err := c.do(ctx, http.MethodGet, "/admin/users", pageQuery(page, limit), nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminListCategories retrieves all categories for admin views
func (c *Client) AdminListCategories(ctx context.Context) ([]Category, error) {
	var payload []Category
	if err := c.do(ctx, http.MethodGet, "/admin/categories", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AdminCreateProduct creates a product and returns the created record
func (c *Client) AdminCreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var payload Product
	if err := c.do(ctx, http.MethodPost, "/admin/products", nil, input, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminUpdateProduct updates a product and returns the updated record
func (c *Client) AdminUpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error) {
	var payload Product
	if err := c.do(ctx, http.MethodPut, "/admin/products/"+url.PathEscape(id), nil, input, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminDeleteProduct deletes a product
func (c *Client) AdminDeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/products/"+url.PathEscape(id), nil, nil, nil)
}

// AdminSetOrderStatus updates an order's status and returns the updated record
func (c *Client) AdminSetOrderStatus(ctx context.Context, id, status string) (*Order, error) {
	body := map[string]string{"status": status}
	var payload Order
	if err := c.do(ctx, http.MethodPut, "/admin/orders/"+url.PathEscape(id)+"/status", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminSetUserBlocked updates a user's blocked flag and returns the updated record
func (c *Client) AdminSetUserBlocked(ctx context.Context, id string, isBlocked bool) (*User, error) {
	body := map[string]bool{"isBlocked": isBlocked}
	var payload User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id)+"/status", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminCreateCategory creates a category
func (c *Client) AdminCreateCategory(ctx context.Context, name string) (*Category, error) {
	body := map[string]string{"name": name}
	var payload Category
	if err := c.do(ctx, http.MethodPost, "/admin/categories", nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminUpdateCategory renames a category
func (c *Client) AdminUpdateCategory(ctx context.Context, id, name string) (*Category, error) {
	body := map[string]string{"name": name}
	var payload Category
	if err := c.do(ctx, http.MethodPut, "/admin/categories/"+url.PathEscape(id), nil, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AdminDeleteCategory deletes a category
func (c *Client) AdminDeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+url.PathEscape(id), nil, nil, nil)
}

func pageQuery(page, limit int) url.Values {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	return values
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	reqURL := *c.baseURL
	reqURL.Path = c.baseURL.Path + path
	if query != nil {
		reqURL.RawQuery = query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures never leak detail to the UI layer
		return &RemoteError{Message: "service unavailable"}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		message := body.text()
		if message == "" {
			message = "request failed"
		}
		return &RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &RemoteError{StatusCode: resp.StatusCode, Message: "invalid server response"}
	}
	return nil
}
