// internal/store/admin/reducer.go
package admin

import "github.com/your-org/storefront-client/internal/api"

// Pagination holds paging state for one admin collection
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Collection holds one paginated admin resource view
type Collection[T any] struct {
	Items      []T
	Pagination Pagination
	Loading    bool
	LastError  string
}

// State represents the admin views as known locally. Each resource keeps
// its own pagination, loading flag and error.
type State struct {
	Dashboard        api.DashboardSummary
	DashboardLoaded  bool
	DashboardLoading bool
	DashboardError   string

	Products   Collection[api.Product]
	Orders     Collection[api.Order]
	Users      Collection[api.User]
	Categories []api.Category
}

// resource identifies which admin collection an action targets
type resource int

const (
	resourceDashboard resource = iota
	resourceProducts
	resourceOrders
	resourceUsers
)

// action is the closed set of admin state transitions
type action interface {
	isAdminAction()
}

type setLoading struct {
	target  resource
	loading bool
}
type setError struct {
	target  resource
	message string
}
type setDashboard struct{ summary api.DashboardSummary }
type setProductPage struct {
	products               []api.Product
	page, total, totalPages int
}
type setOrderPage struct {
	orders                 []api.Order
	page, total, totalPages int
}
type setUserPage struct {
	users                  []api.User
	page, total, totalPages int
}
type setCategories struct{ categories []api.Category }
type addProduct struct{ product api.Product }
type replaceProduct struct{ product api.Product }
type deleteProduct struct{ id string }
type replaceOrder struct{ order api.Order }
type replaceUser struct{ user api.User }

func (setLoading) isAdminAction()     {}
func (setError) isAdminAction()       {}
func (setDashboard) isAdminAction()   {}
func (setProductPage) isAdminAction() {}
func (setOrderPage) isAdminAction()   {}
func (setUserPage) isAdminAction()    {}
func (setCategories) isAdminAction()  {}
func (addProduct) isAdminAction()     {}
func (replaceProduct) isAdminAction() {}
func (deleteProduct) isAdminAction()  {}
func (replaceOrder) isAdminAction()   {}
func (replaceUser) isAdminAction()    {}

// reduce is the pure state-transition function over (state, action)
func reduce(state State, a action) State {
	switch a := a.(type) {
	case setLoading:
		switch a.target {
		case resourceDashboard:
			state.DashboardLoading = a.loading
		case resourceProducts:
			state.Products.Loading = a.loading
		case resourceOrders:
			state.Orders.Loading = a.loading
		case resourceUsers:
			state.Users.Loading = a.loading
		}
		return state

	case setError:
		switch a.target {
		case resourceDashboard:
			state.DashboardError = a.message
		case resourceProducts:
			state.Products.LastError = a.message
		case resourceOrders:
			state.Orders.LastError = a.message
		case resourceUsers:
			state.Users.LastError = a.message
		}
		return state

	case setDashboard:
		state.Dashboard = a.summary
		state.DashboardLoaded = true
		return state

	case setProductPage:
		state.Products.Items = cloneSlice(a.products)
		state.Products.Pagination.Page = a.page
		state.Products.Pagination.TotalItems = a.total
		state.Products.Pagination.TotalPages = a.totalPages
		return state

	case setOrderPage:
		state.Orders.Items = cloneSlice(a.orders)
		state.Orders.Pagination.Page = a.page
		state.Orders.Pagination.TotalItems = a.total
		state.Orders.Pagination.TotalPages = a.totalPages
		return state

	case setUserPage:
		state.Users.Items = cloneSlice(a.users)
		state.Users.Pagination.Page = a.page
		state.Users.Pagination.TotalItems = a.total
		state.Users.Pagination.TotalPages = a.totalPages
		return state

	case setCategories:
		state.Categories = cloneSlice(a.categories)
		return state

	case addProduct:
		// Created records are prepended, matching list order (newest first)
		items := make([]api.Product, 0, len(state.Products.Items)+1)
		items = append(items, a.product)
		items = append(items, state.Products.Items...)
		state.Products.Items = items
		return state

	case replaceProduct:
		items := cloneSlice(state.Products.Items)
		for i := range items {
			if items[i].ID == a.product.ID {
				items[i] = a.product
				break
			}
		}
		state.Products.Items = items
		return state

	case deleteProduct:
		items := make([]api.Product, 0, len(state.Products.Items))
		for _, p := range state.Products.Items {
			if p.ID != a.id {
				items = append(items, p)
			}
		}
		if len(items) == 0 {
			items = nil
		}
		state.Products.Items = items
		return state

	case replaceOrder:
		items := cloneSlice(state.Orders.Items)
		for i := range items {
			if items[i].ID == a.order.ID {
				items[i] = a.order
				break
			}
		}
		state.Orders.Items = items
		return state

	case replaceUser:
		items := cloneSlice(state.Users.Items)
		for i := range items {
			if items[i].ID == a.user.ID {
				items[i] = a.user
				break
			}
		}
		state.Users.Items = items
		return state
	}

	return state
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
