// internal/store/catalog/reducer.go
package catalog

import "github.com/your-org/storefront-client/internal/api"

// Filters holds the active product filters
type Filters struct {
	Category  string
	PriceMin  float64
	PriceMax  float64
	Brand     string
	MinRating float64
	Search    string
}

// FilterUpdate is a partial filter change; nil fields are left untouched
type FilterUpdate struct {
	Category  *string
	PriceMin  *float64
	PriceMax  *float64
	Brand     *string
	MinRating *float64
	Search    *string
}

// Pagination holds the catalog paging state
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// State represents the catalog as known locally. Products keep the server's
// ordering; they are never re-sorted client-side.
type State struct {
	Products   []api.Product
	Categories []api.Category
	Filters    Filters
	SortBy     string
	Pagination Pagination
	Loading    bool
	LastError  string
}

// Sort keys understood by the backend
const (
	SortPopularity   = "popularity"
	SortPriceLowHigh = "price_low_high"
	SortPriceHighLow = "price_high_low"
	SortNewest       = "newest"
	SortRating       = "rating"
)

// action is the closed set of catalog state transitions
type action interface {
	isCatalogAction()
}

type setLoading struct{ loading bool }
type setError struct{ message string }
type setProducts struct{ products []api.Product }
type setCategories struct{ categories []api.Category }
type mergeFilters struct{ update FilterUpdate }
type resetFilters struct{ defaults Filters }
type setSort struct{ key string }
type setPage struct{ page int }
type setPageMeta struct{ totalItems, totalPages int }

func (setLoading) isCatalogAction()    {}
func (setError) isCatalogAction()      {}
func (setProducts) isCatalogAction()   {}
func (setCategories) isCatalogAction() {}
func (mergeFilters) isCatalogAction()  {}
func (resetFilters) isCatalogAction()  {}
func (setSort) isCatalogAction()       {}
func (setPage) isCatalogAction()       {}
func (setPageMeta) isCatalogAction()   {}

// reduce is the pure state-transition function over (state, action)
func reduce(state State, a action) State {
	switch a := a.(type) {
	case setLoading:
		state.Loading = a.loading
		return state

	case setError:
		state.LastError = a.message
		return state

	case setProducts:
		state.Products = cloneProducts(a.products)
		return state

	case setCategories:
		state.Categories = cloneCategories(a.categories)
		return state

	case mergeFilters:
		filters := state.Filters
		if a.update.Category != nil {
			filters.Category = *a.update.Category
		}
		if a.update.PriceMin != nil {
			filters.PriceMin = *a.update.PriceMin
		}
		if a.update.PriceMax != nil {
			filters.PriceMax = *a.update.PriceMax
		}
		if a.update.Brand != nil {
			filters.Brand = *a.update.Brand
		}
		if a.update.MinRating != nil {
			filters.MinRating = *a.update.MinRating
		}
		if a.update.Search != nil {
			filters.Search = *a.update.Search
		}
		state.Filters = filters
		return state

	case resetFilters:
		state.Filters = a.defaults
		return state

	case setSort:
		state.SortBy = a.key
		return state

	case setPage:
		state.Pagination.Page = a.page
		return state

	case setPageMeta:
		state.Pagination.TotalItems = a.totalItems
		state.Pagination.TotalPages = a.totalPages
		return state
	}

	return state
}

func cloneProducts(products []api.Product) []api.Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]api.Product, len(products))
	copy(dup, products)
	return dup
}

func cloneCategories(categories []api.Category) []api.Category {
	if len(categories) == 0 {
		return nil
	}
	dup := make([]api.Category, len(categories))
	copy(dup, categories)
	return dup
}
