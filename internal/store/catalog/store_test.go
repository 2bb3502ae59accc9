// internal/store/catalog/store_test.go
package catalog

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
)

type listResult struct {
	page *api.ProductPage
	err  error
}

type listCall struct {
	query api.ProductQuery
	reply chan listResult
}

// fakeCatalogAPI hands every listing request to the test through a channel
// so the test controls when, and in which order, responses resolve.
type fakeCatalogAPI struct {
	mu       sync.Mutex
	queries  []api.ProductQuery
	searches []string

	calls      chan listCall
	searchPage *api.ProductPage
	searchErr  error
	categories []api.Category
	catErr     error
}

func newFakeCatalogAPI() *fakeCatalogAPI {
	return &fakeCatalogAPI{calls: make(chan listCall, 8)}
}

func (f *fakeCatalogAPI) ListProducts(ctx context.Context, query api.ProductQuery) (*api.ProductPage, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	call := listCall{query: query, reply: make(chan listResult, 1)}
	f.calls <- call
	result := <-call.reply
	return result.page, result.err
}

func (f *fakeCatalogAPI) SearchProducts(ctx context.Context, term string) (*api.ProductPage, error) {
	f.mu.Lock()
	f.searches = append(f.searches, term)
	f.mu.Unlock()

	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchPage, nil
}

func (f *fakeCatalogAPI) ListCategories(ctx context.Context) ([]api.Category, error) {
	if f.catErr != nil {
		return nil, f.catErr
	}
	return f.categories, nil
}

// serve answers every listing call with the same result until stopped
func (f *fakeCatalogAPI) serve(result listResult) func() {
	done := make(chan struct{})
	go func() {
		for {
			select {
			case call := <-f.calls:
				call.reply <- result
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func (f *fakeCatalogAPI) recordedQueries() []api.ProductQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]api.ProductQuery, len(f.queries))
	copy(dup, f.queries)
	return dup
}

func (f *fakeCatalogAPI) recordedSearches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]string, len(f.searches))
	copy(dup, f.searches)
	return dup
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testConfig() *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{
			PageSize:       12,
			SearchDebounce: 40 * time.Millisecond,
			PriceRangeMax:  10000,
		},
	}
}

func somePage(ids ...string) *api.ProductPage {
	products := make([]api.Product, len(ids))
	for i, id := range ids {
		products[i] = api.Product{ID: id, Name: "Product " + id}
	}
	return &api.ProductPage{Products: products, Total: len(products), TotalPages: 5}
}

func TestFilterChangeResetsPageAndFetchesOnce(t *testing.T) {
	remote := newFakeCatalogAPI()
	stop := remote.serve(listResult{page: somePage("a", "b")})
	defer stop()

	store := NewStore(remote, testConfig(), testLogger())
	ctx := context.Background()

	require.NoError(t, store.SetPage(ctx, 3))
	assert.Equal(t, 3, store.State().Pagination.Page)

	category := "Audio"
	require.NoError(t, store.SetFilters(ctx, FilterUpdate{Category: &category}))

	state := store.State()
	assert.Equal(t, 1, state.Pagination.Page)
	assert.Equal(t, "Audio", state.Filters.Category)
	assert.False(t, state.Loading)

	queries := remote.recordedQueries()
	require.Len(t, queries, 2)
	assert.Equal(t, 1, queries[1].Page)
	assert.Equal(t, "Audio", queries[1].Category)
}

func TestSetSortResetsPage(t *testing.T) {
	remote := newFakeCatalogAPI()
	stop := remote.serve(listResult{page: somePage("a")})
	defer stop()

	store := NewStore(remote, testConfig(), testLogger())
	ctx := context.Background()

	require.NoError(t, store.SetPage(ctx, 4))
	require.NoError(t, store.SetSort(ctx, SortPriceLowHigh))

	state := store.State()
	assert.Equal(t, SortPriceLowHigh, state.SortBy)
	assert.Equal(t, 1, state.Pagination.Page)
}

func TestClearFiltersRestoresDefaults(t *testing.T) {
	remote := newFakeCatalogAPI()
	stop := remote.serve(listResult{page: somePage("a")})
	defer stop()

	store := NewStore(remote, testConfig(), testLogger())
	ctx := context.Background()

	category, brand := "Audio", "Acme"
	rating := 4.0
	require.NoError(t, store.SetFilters(ctx, FilterUpdate{Category: &category, Brand: &brand, MinRating: &rating}))
	require.NoError(t, store.SetPage(ctx, 2))

	require.NoError(t, store.ClearFilters(ctx))

	state := store.State()
	assert.Equal(t, Filters{PriceMax: 10000}, state.Filters)
	assert.Equal(t, 1, state.Pagination.Page)
}

func TestStaleListingResponseDiscarded(t *testing.T) {
	remote := newFakeCatalogAPI()
	store := NewStore(remote, testConfig(), testLogger())

	// First fetch goes out and is left hanging.
	errA := make(chan error, 1)
	go func() { errA <- store.SetSort(context.Background(), SortNewest) }()
	callA := <-remote.calls

	// A second fetch supersedes it before it resolves.
	errB := make(chan error, 1)
	go func() { errB <- store.SetPage(context.Background(), 2) }()
	callB := <-remote.calls

	callB.reply <- listResult{page: &api.ProductPage{
		Products:   []api.Product{{ID: "fresh"}},
		Total:      1,
		TotalPages: 5,
	}}
	require.NoError(t, <-errB)

	// Now the superseded fetch resolves with different data.
	callA.reply <- listResult{page: &api.ProductPage{
		Products:   []api.Product{{ID: "stale"}},
		Total:      99,
		TotalPages: 9,
	}}
	require.ErrorIs(t, <-errA, ErrStaleResponse)

	state := store.State()
	require.Len(t, state.Products, 1)
	assert.Equal(t, "fresh", state.Products[0].ID)
	assert.Equal(t, 2, state.Pagination.Page)
	assert.Equal(t, 1, state.Pagination.TotalItems)
	assert.False(t, state.Loading)
}

func TestListingErrorRecorded(t *testing.T) {
	remote := newFakeCatalogAPI()
	stop := remote.serve(listResult{err: &api.RemoteError{StatusCode: 503, Message: "catalog offline"}})
	defer stop()

	store := NewStore(remote, testConfig(), testLogger())

	require.Error(t, store.Refresh(context.Background()))

	state := store.State()
	assert.Equal(t, "catalog offline", state.LastError)
	assert.False(t, state.Loading)
}

func TestShortSearchTermIgnored(t *testing.T) {
	remote := newFakeCatalogAPI()
	store := NewStore(remote, testConfig(), testLogger())

	require.NoError(t, store.Search(context.Background(), "  ab  "))
	assert.Empty(t, remote.recordedSearches())

	store.SearchLive("ab")
	time.Sleep(3 * testConfig().Catalog.SearchDebounce)
	assert.Empty(t, remote.recordedSearches())
}

func TestSearchReplacesListingAndResetsPage(t *testing.T) {
	remote := newFakeCatalogAPI()
	remote.searchPage = &api.ProductPage{
		Products:   []api.Product{{ID: "lamp-1", Name: "Desk Lamp"}},
		Total:      1,
		TotalPages: 1,
	}

	store := NewStore(remote, testConfig(), testLogger())

	require.NoError(t, store.Search(context.Background(), "lamp"))

	state := store.State()
	require.Len(t, state.Products, 1)
	assert.Equal(t, "lamp-1", state.Products[0].ID)
	assert.Equal(t, 1, state.Pagination.Page)
	assert.Equal(t, "lamp", state.Filters.Search)
	assert.False(t, state.Loading)
}

func TestSearchLiveCoalescesBursts(t *testing.T) {
	remote := newFakeCatalogAPI()
	remote.searchPage = &api.ProductPage{Products: []api.Product{{ID: "lamp-1"}}, Total: 1, TotalPages: 1}

	store := NewStore(remote, testConfig(), testLogger())

	// A typing burst: only the final term may reach the backend.
	store.SearchLive("lam")
	store.SearchLive("lamp")
	store.SearchLive("lamps")

	require.Eventually(t, func() bool {
		return len(remote.recordedSearches()) == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(3 * testConfig().Catalog.SearchDebounce)
	searches := remote.recordedSearches()
	require.Len(t, searches, 1)
	assert.Equal(t, "lamps", searches[0])
}

func TestLoadCategories(t *testing.T) {
	remote := newFakeCatalogAPI()
	remote.categories = []api.Category{{ID: "c1", Name: "Audio"}, {ID: "c2", Name: "Lighting"}}

	store := NewStore(remote, testConfig(), testLogger())
	store.LoadCategories(context.Background())

	assert.Len(t, store.State().Categories, 2)
}

func TestLoadCategoriesFailureKeepsPriorList(t *testing.T) {
	remote := newFakeCatalogAPI()
	remote.categories = []api.Category{{ID: "c1", Name: "Audio"}}

	store := NewStore(remote, testConfig(), testLogger())
	store.LoadCategories(context.Background())

	remote.catErr = &api.RemoteError{StatusCode: 500, Message: "boom"}
	store.LoadCategories(context.Background())

	assert.Len(t, store.State().Categories, 1)
}
