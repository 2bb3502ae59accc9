// internal/store/admin/store.go
package admin

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
)

// API is the remote admin contract the store depends on
type API interface {
	AdminDashboard(ctx context.Context) (*api.DashboardSummary, error)
	AdminListProducts(ctx context.Context, page, limit int) (*api.ProductPage, error)
	AdminListOrders(ctx context.Context, page, limit int) (*api.OrderPage, error)
	AdminListUsers(ctx context.Context, page, limit int) (*api.UserPage, error)
	AdminListCategories(ctx context.Context) ([]api.Category, error)
	AdminCreateProduct(ctx context.Context, input api.ProductInput) (*api.Product, error)
	AdminUpdateProduct(ctx context.Context, id string, input api.ProductInput) (*api.Product, error)
	AdminDeleteProduct(ctx context.Context, id string) error
	AdminSetOrderStatus(ctx context.Context, id, status string) (*api.Order, error)
	AdminSetUserBlocked(ctx context.Context, id string, isBlocked bool) (*api.User, error)
	AdminCreateCategory(ctx context.Context, name string) (*api.Category, error)
	AdminUpdateCategory(ctx context.Context, id, name string) (*api.Category, error)
	AdminDeleteCategory(ctx context.Context, id string) error
}

// Ensure the HTTP client satisfies the contract at compile time
var _ API = (*api.Client)(nil)

// Result reports the outcome of a mutating admin operation
type Result struct {
	Success bool
	Message string
}

// Store holds paginated administrative views. Loaders replace a resource's
// collection wholesale; mutations call the backend first and on success
// apply the minimal local patch (prepend created, replace updated by id,
// remove deleted by id) instead of refetching the page.
type Store struct {
	mu       sync.Mutex
	api      API
	log      *logrus.Entry
	state    State
	pageSize int
}

// NewStore creates an admin store backed by the given remote API
func NewStore(remote API, cfg *config.Config, logger *logrus.Logger) *Store {
	pageSize := cfg.Admin.PageSize

	return &Store{
		api: remote,
		log: logger.WithField("store", "admin"),
		state: State{
			Products: Collection[api.Product]{Pagination: Pagination{Page: 1, PageSize: pageSize}},
			Orders:   Collection[api.Order]{Pagination: Pagination{Page: 1, PageSize: pageSize}},
			Users:    Collection[api.User]{Pagination: Pagination{Page: 1, PageSize: pageSize}},
		},
		pageSize: pageSize,
	}
}

// State returns a snapshot of the current admin state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Products.Items = cloneSlice(s.state.Products.Items)
	snap.Orders.Items = cloneSlice(s.state.Orders.Items)
	snap.Users.Items = cloneSlice(s.state.Users.Items)
	snap.Categories = cloneSlice(s.state.Categories)
	return snap
}

// LoadDashboard fetches the dashboard summary metrics
func (s *Store) LoadDashboard(ctx context.Context) error {
	s.dispatch(setLoading{target: resourceDashboard, loading: true})

	summary, err := s.api.AdminDashboard(ctx)
	if err != nil {
		s.dispatch(
			setError{target: resourceDashboard, message: api.UserMessage(err, "Failed to load dashboard")},
			setLoading{target: resourceDashboard, loading: false},
		)
		return err
	}

	s.dispatch(setDashboard{summary: *summary}, setLoading{target: resourceDashboard, loading: false})
	return nil
}

// LoadProducts fetches one page of products and replaces the collection
func (s *Store) LoadProducts(ctx context.Context, page int) error {
	s.dispatch(setLoading{target: resourceProducts, loading: true})

	result, err := s.api.AdminListProducts(ctx, page, s.pageSize)
	if err != nil {
		s.dispatch(
			setError{target: resourceProducts, message: api.UserMessage(err, "Failed to load products")},
			setLoading{target: resourceProducts, loading: false},
		)
		return err
	}

	s.dispatch(
		setProductPage{products: result.Products, page: page, total: result.Total, totalPages: result.TotalPages},
		setLoading{target: resourceProducts, loading: false},
	)
	return nil
}

// LoadOrders fetches one page of orders and replaces the collection
func (s *Store) LoadOrders(ctx context.Context, page int) error {
	s.dispatch(setLoading{target: resourceOrders, loading: true})

	result, err := s.api.AdminListOrders(ctx, page, s.pageSize)
	if err != nil {
		s.dispatch(
			setError{target: resourceOrders, message: api.UserMessage(err, "Failed to load orders")},
			setLoading{target: resourceOrders, loading: false},
		)
		return err
	}

	s.dispatch(
		setOrderPage{orders: result.Orders, page: page, total: result.Total, totalPages: result.TotalPages},
		setLoading{target: resourceOrders, loading: false},
	)
	return nil
}

// LoadUsers fetches one page of users and replaces the collection
func (s *Store) LoadUsers(ctx context.Context, page int) error {
	s.dispatch(setLoading{target: resourceUsers, loading: true})

	result, err := s.api.AdminListUsers(ctx, page, s.pageSize)
	if err != nil {
		s.dispatch(
			setError{target: resourceUsers, message: api.UserMessage(err, "Failed to load users")},
			setLoading{target: resourceUsers, loading: false},
		)
		return err
	}

	s.dispatch(
		setUserPage{users: result.Users, page: page, total: result.Total, totalPages: result.TotalPages},
		setLoading{target: resourceUsers, loading: false},
	)
	return nil
}

// LoadCategories fetches the category list. Best-effort: failures are
// logged and the prior list kept.
func (s *Store) LoadCategories(ctx context.Context) {
	categories, err := s.api.AdminListCategories(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Failed to load categories")
		return
	}
	s.dispatch(setCategories{categories: categories})
}

// CreateProduct creates a product remotely, then prepends the created
// record to the local collection
func (s *Store) CreateProduct(ctx context.Context, input api.ProductInput) Result {
	created, err := s.api.AdminCreateProduct(ctx, input)
	if err != nil {
		return Result{Message: api.UserMessage(err, "Failed to create product")}
	}

	s.dispatch(addProduct{product: *created})
	return Result{Success: true}
}

// UpdateProduct updates a product remotely, then replaces the matching
// record by id
func (s *Store) UpdateProduct(ctx context.Context, id string, input api.ProductInput) Result {
	updated, err := s.api.AdminUpdateProduct(ctx, id, input)
	if err != nil {
		return Result{Message: api.UserMessage(err, "Failed to update product")}
	}

	s.dispatch(replaceProduct{product: *updated})
	return Result{Success: true}
}

// DeleteProduct deletes a product remotely, then removes the matching
// record by id
func (s *Store) DeleteProduct(ctx context.Context, id string) Result {
	if err := s.api.AdminDeleteProduct(ctx, id); err != nil {
		return Result{Message: api.UserMessage(err, "Failed to delete product")}
	}

	s.dispatch(deleteProduct{id: id})
	return Result{Success: true}
}

// SetOrderStatus updates an order's status remotely, then replaces the
// matching record by id
func (s *Store) SetOrderStatus(ctx context.Context, id, status string) Result {
	updated, err := s.api.AdminSetOrderStatus(ctx, id, status)
	if err != nil {
		return Result{Message: api.UserMessage(err, "Failed to update order status")}
	}

	s.dispatch(replaceOrder{order: *updated})
	return Result{Success: true}
}

// SetUserBlocked updates a user's blocked flag remotely, then replaces the
// matching record by id
func (s *Store) SetUserBlocked(ctx context.Context, id string, isBlocked bool) Result {
	updated, err := s.api.AdminSetUserBlocked(ctx, id, isBlocked)
	if err != nil {
		return Result{Message: api.UserMessage(err, "Failed to update user status")}
	}

	s.dispatch(replaceUser{user: *updated})
	return Result{Success: true}
}

// CreateCategory creates a category remotely, then reloads the category
// list
func (s *Store) CreateCategory(ctx context.Context, name string) Result {
	if _, err := s.api.AdminCreateCategory(ctx, name); err != nil {
		return Result{Message: api.UserMessage(err, "Failed to create category")}
	}

	s.LoadCategories(ctx)
	return Result{Success: true}
}

// UpdateCategory renames a category remotely, then reloads the category
// list
func (s *Store) UpdateCategory(ctx context.Context, id, name string) Result {
	if _, err := s.api.AdminUpdateCategory(ctx, id, name); err != nil {
		return Result{Message: api.UserMessage(err, "Failed to update category")}
	}

	s.LoadCategories(ctx)
	return Result{Success: true}
}

// DeleteCategory deletes a category remotely, then reloads the category
// list
func (s *Store) DeleteCategory(ctx context.Context, id string) Result {
	if err := s.api.AdminDeleteCategory(ctx, id); err != nil {
		return Result{Message: api.UserMessage(err, "Failed to delete category")}
	}

	s.LoadCategories(ctx)
	return Result{Success: true}
}

func (s *Store) dispatch(actions ...action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range actions {
		s.state = reduce(s.state, a)
	}
}
