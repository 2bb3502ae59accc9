// internal/mockapi/server_test.go
package mockapi

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
	adminstore "github.com/your-org/storefront-client/internal/store/admin"
	cartstore "github.com/your-org/storefront-client/internal/store/cart"
	catalogstore "github.com/your-org/storefront-client/internal/store/catalog"
	sessionstore "github.com/your-org/storefront-client/internal/store/session"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// harness wires real stores against a real backend over HTTP
type harness struct {
	cfg     *config.Config
	client  *api.Client
	session *sessionstore.Store
	cart    *cartstore.Store
	catalog *catalogstore.Store
	admin   *adminstore.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		App: config.AppConfig{Environment: "test", Version: "test"},
		Catalog: config.CatalogConfig{
			PageSize:       12,
			SearchDebounce: 40 * time.Millisecond,
			PriceRangeMax:  10000,
		},
		Admin: config.AdminConfig{PageSize: 10},
		MockAPI: config.MockAPIConfig{
			Port:              "0",
			JWTSecret:         "integration-test-secret",
			AccessTokenExpiry: time.Hour,
			BcryptCost:        bcrypt.MinCost,
		},
	}

	server, err := NewServer(cfg, logger)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	cfg.API = config.APIConfig{
		BaseURL:        ts.URL + "/api",
		RequestTimeout: 5 * time.Second,
		UserAgent:      "storefront-client/test",
	}

	client, err := api.NewClient(cfg)
	require.NoError(t, err)

	return &harness{
		cfg:     cfg,
		client:  client,
		session: sessionstore.NewStore(client, client, logger),
		cart:    cartstore.NewStore(client, logger),
		catalog: catalogstore.NewStore(client, cfg, logger),
		admin:   adminstore.NewStore(client, cfg, logger),
	}
}

func (h *harness) loginCustomer(t *testing.T) {
	t.Helper()
	result := h.session.Login(context.Background(), "jordan@example.com", "customer-password")
	require.True(t, result.Success, result.Message)
}

func (h *harness) loginAdmin(t *testing.T) {
	t.Helper()
	result := h.session.Login(context.Background(), "admin@example.com", "admin-password")
	require.True(t, result.Success, result.Message)
}

func TestCartFlowEndToEnd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginCustomer(t)

	require.NoError(t, h.catalog.Refresh(ctx))
	products := h.catalog.State().Products
	require.NotEmpty(t, products)
	product := products[0]

	require.True(t, h.cart.AddItem(ctx, product.ID, 2).Success)
	state := h.cart.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, product.Price*2, state.Total)
	assert.Equal(t, 2, state.ItemCount)

	require.True(t, h.cart.UpdateQuantity(ctx, product.ID, 1).Success)
	assert.Equal(t, product.Price, h.cart.State().Total)

	// The backend cart survives a rehydration
	h.cart.Reset()
	h.cart.Hydrate(ctx)
	state = h.cart.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, product.Price, state.Total)
	assert.Equal(t, product.Name, state.Items[0].Name)

	require.True(t, h.cart.RemoveItem(ctx, product.ID).Success)
	assert.Empty(t, h.cart.State().Items)
}

func TestCartRequiresAuthentication(t *testing.T) {
	h := newHarness(t)

	h.cart.Hydrate(context.Background())

	state := h.cart.State()
	assert.Empty(t, state.Items)
	assert.NotEmpty(t, state.LastError)
}

func TestInsufficientStockRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginCustomer(t)

	require.NoError(t, h.catalog.Refresh(ctx))
	products := h.catalog.State().Products
	require.NotEmpty(t, products)
	product := products[0]

	before := h.cart.State()
	result := h.cart.AddItem(ctx, product.ID, product.Stock+1)

	require.False(t, result.Success)
	assert.Equal(t, "Insufficient stock for this product", result.Message)
	assert.Equal(t, before, h.cart.State())
}

func TestSearchEndToEnd(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.catalog.Search(context.Background(), "headphones"))

	state := h.catalog.State()
	require.Len(t, state.Products, 1)
	assert.Equal(t, "Wireless Headphones", state.Products[0].Name)
	assert.Equal(t, 1, state.Pagination.Page)
}

func TestCategoryFilterEndToEnd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	category := "Books"
	require.NoError(t, h.catalog.SetFilters(ctx, catalogstore.FilterUpdate{Category: &category}))

	state := h.catalog.State()
	require.Len(t, state.Products, 2)
	for _, p := range state.Products {
		assert.Equal(t, "Books", p.Category)
	}

	require.NoError(t, h.catalog.ClearFilters(ctx))
	assert.Len(t, h.catalog.State().Products, 12)
}

func TestAdminFlowEndToEnd(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginAdmin(t)

	require.NoError(t, h.admin.LoadDashboard(ctx))
	state := h.admin.State()
	assert.True(t, state.DashboardLoaded)
	assert.Equal(t, 12, state.Dashboard.TotalProducts)
	assert.Equal(t, 2, state.Dashboard.TotalUsers)
	assert.Positive(t, state.Dashboard.TotalRevenue)

	require.NoError(t, h.admin.LoadProducts(ctx, 1))
	state = h.admin.State()
	assert.Len(t, state.Products.Items, 10)
	assert.Equal(t, 2, state.Products.Pagination.TotalPages)

	result := h.admin.CreateProduct(ctx, api.ProductInput{
		Name:     "Standing Desk",
		Price:    349.00,
		Category: "Home & Garden",
		Stock:    12,
	})
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "Standing Desk", h.admin.State().Products.Items[0].Name)
}

func TestAdminBlockedUserCannotLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginAdmin(t)

	require.NoError(t, h.admin.LoadUsers(ctx, 1))
	var customerID string
	for _, user := range h.admin.State().Users.Items {
		if user.Email == "jordan@example.com" {
			customerID = user.ID
		}
	}
	require.NotEmpty(t, customerID)

	require.True(t, h.admin.SetUserBlocked(ctx, customerID, true).Success)

	other := newHarnessSession(t, h)
	result := other.Login(ctx, "jordan@example.com", "customer-password")
	require.False(t, result.Success)
	assert.Equal(t, "Your account has been blocked", result.Message)
}

// newHarnessSession builds a second session store over the same backend
func newHarnessSession(t *testing.T, h *harness) *sessionstore.Store {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := api.NewClient(h.cfg)
	require.NoError(t, err)
	return sessionstore.NewStore(client, client, logger)
}

func TestProductDetailAndRelated(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.catalog.Refresh(ctx))
	h.catalog.LoadCategories(ctx)
	state := h.catalog.State()
	require.NotEmpty(t, state.Products)
	require.NotEmpty(t, state.Categories)

	product := state.Products[0]
	detail, err := h.client.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, detail.Name)

	var categoryID string
	for _, c := range state.Categories {
		if c.Name == product.Category {
			categoryID = c.ID
		}
	}
	require.NotEmpty(t, categoryID)

	related, err := h.client.RelatedProducts(ctx, categoryID, product.ID, 4)
	require.NoError(t, err)
	for _, p := range related {
		assert.Equal(t, product.Category, p.Category)
		assert.NotEqual(t, product.ID, p.ID)
	}
}

func TestAdminEndpointsForbiddenForCustomer(t *testing.T) {
	h := newHarness(t)

	h.loginCustomer(t)

	require.Error(t, h.admin.LoadDashboard(context.Background()))
	assert.NotEmpty(t, h.admin.State().DashboardError)
}
