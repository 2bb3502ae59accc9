// internal/store/catalog/store.go
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
)

// API is the remote catalog contract the store depends on
type API interface {
	ListProducts(ctx context.Context, query api.ProductQuery) (*api.ProductPage, error)
	SearchProducts(ctx context.Context, term string) (*api.ProductPage, error)
	ListCategories(ctx context.Context) ([]api.Category, error)
}

// Ensure the HTTP client satisfies the contract at compile time
var _ API = (*api.Client)(nil)

// ErrStaleResponse signals that a fetch resolved after a newer one was
// issued and its result was discarded. It is internal bookkeeping, never
// shown to the user.
var ErrStaleResponse = errors.New("stale response discarded")

// minSearchLength is the shortest search term worth sending to the backend;
// shorter terms produce noise when used for live suggestion lookups.
const minSearchLength = 3

// Store holds product listings, the category list and the active
// filter/sort/pagination tuple. That tuple is the single source of truth:
// every mutator that changes it ends by issuing exactly one fetch carrying
// a freshly minted sequence token, and a response presenting a superseded
// token is discarded without mutating state.
type Store struct {
	mu    sync.Mutex
	api   API
	log   *logrus.Entry
	state State
	seq   uint64

	defaults Filters
	pageSize int

	debounceMu    sync.Mutex
	debounce      *time.Timer
	debounceEvery time.Duration
}

// NewStore creates a catalog store backed by the given remote API
func NewStore(remote API, cfg *config.Config, logger *logrus.Logger) *Store {
	defaults := Filters{PriceMax: cfg.Catalog.PriceRangeMax}

	return &Store{
		api: remote,
		log: logger.WithField("store", "catalog"),
		state: State{
			Filters: defaults,
			SortBy:  SortPopularity,
			Pagination: Pagination{
				Page:     1,
				PageSize: cfg.Catalog.PageSize,
			},
		},
		defaults:      defaults,
		pageSize:      cfg.Catalog.PageSize,
		debounceEvery: cfg.Catalog.SearchDebounce,
	}
}

// State returns a snapshot of the current catalog state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Products = cloneProducts(s.state.Products)
	snap.Categories = cloneCategories(s.state.Categories)
	return snap
}

// LoadCategories fetches the category list. Called once at startup;
// failures are best-effort and only logged.
func (s *Store) LoadCategories(ctx context.Context) {
	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Failed to load categories")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, setCategories{categories: categories})
}

// SetFilters merges a partial filter change, resets to the first page and
// refetches. Batched field changes within one update issue one fetch.
func (s *Store) SetFilters(ctx context.Context, update FilterUpdate) error {
	s.mu.Lock()
	s.state = reduce(s.state, mergeFilters{update: update})
	s.state = reduce(s.state, setPage{page: 1})
	seq, query := s.beginFetchLocked()
	s.mu.Unlock()

	return s.fetch(ctx, seq, query)
}

// SetSort replaces the sort key, resets to the first page and refetches
func (s *Store) SetSort(ctx context.Context, key string) error {
	s.mu.Lock()
	s.state = reduce(s.state, setSort{key: key})
	s.state = reduce(s.state, setPage{page: 1})
	seq, query := s.beginFetchLocked()
	s.mu.Unlock()

	return s.fetch(ctx, seq, query)
}

// SetPage moves to the given page and refetches. The page is not clamped
// against TotalPages; that is the caller's responsibility.
func (s *Store) SetPage(ctx context.Context, page int) error {
	s.mu.Lock()
	s.state = reduce(s.state, setPage{page: page})
	seq, query := s.beginFetchLocked()
	s.mu.Unlock()

	return s.fetch(ctx, seq, query)
}

// ClearFilters restores the default filters, resets to the first page and
// refetches
func (s *Store) ClearFilters(ctx context.Context) error {
	s.mu.Lock()
	s.state = reduce(s.state, resetFilters{defaults: s.defaults})
	s.state = reduce(s.state, setPage{page: 1})
	seq, query := s.beginFetchLocked()
	s.mu.Unlock()

	return s.fetch(ctx, seq, query)
}

// Refresh refetches the listing for the current filter/sort/page tuple
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	seq, query := s.beginFetchLocked()
	s.mu.Unlock()

	return s.fetch(ctx, seq, query)
}

// Search runs a full-text product query. Terms shorter than three runes
// are ignored. On success the result replaces the product listing and
// paging resets to the first page.
func (s *Store) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < minSearchLength {
		return nil
	}

	s.mu.Lock()
	s.state = reduce(s.state, mergeFilters{update: FilterUpdate{Search: &term}})
	s.seq++
	seq := s.seq
	s.state = reduce(s.state, setLoading{loading: true})
	s.mu.Unlock()

	page, err := s.api.SearchProducts(ctx, term)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.WithField("seq", seq).Debug("Discarding stale search response")
		return ErrStaleResponse
	}

	if err != nil {
		s.state = reduce(s.state, setError{message: api.UserMessage(err, "Search failed")})
		s.state = reduce(s.state, setLoading{loading: false})
		return err
	}

	s.state = reduce(s.state, setProducts{products: page.Products})
	s.state = reduce(s.state, setPageMeta{totalItems: page.Total, totalPages: page.TotalPages})
	s.state = reduce(s.state, setPage{page: 1})
	s.state = reduce(s.state, setLoading{loading: false})
	return nil
}

// SearchLive coalesces search-as-you-type input: each call cancels any
// scheduled-but-unfired search and reschedules after the quiet interval, so
// one logical search executes per quiet window.
func (s *Store) SearchLive(term string) {
	s.debounceMu.Lock()
	defer s.debounceMu.Unlock()

	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}

	trimmed := strings.TrimSpace(term)
	if utf8.RuneCountInString(trimmed) < minSearchLength {
		return
	}

	s.debounce = time.AfterFunc(s.debounceEvery, func() {
		if err := s.Search(context.Background(), trimmed); err != nil && !errors.Is(err, ErrStaleResponse) {
			s.log.WithError(err).Debug("Live search failed")
		}
	})
}

// beginFetchLocked mints the next sequence token and derives the remote
// query from the current state. Callers must hold s.mu.
func (s *Store) beginFetchLocked() (uint64, api.ProductQuery) {
	s.seq++
	s.state = reduce(s.state, setLoading{loading: true})

	query := api.ProductQuery{
		Page:      s.state.Pagination.Page,
		Limit:     s.state.Pagination.PageSize,
		SortBy:    s.state.SortBy,
		Category:  s.state.Filters.Category,
		PriceMin:  s.state.Filters.PriceMin,
		PriceMax:  s.state.Filters.PriceMax,
		Brand:     s.state.Filters.Brand,
		MinRating: s.state.Filters.MinRating,
		Search:    s.state.Filters.Search,
	}
	return s.seq, query
}

// fetch issues the listing request and applies the response only when it
// still matches the most recently issued sequence token.
func (s *Store) fetch(ctx context.Context, seq uint64, query api.ProductQuery) error {
	page, err := s.api.ListProducts(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.WithField("seq", seq).Debug("Discarding stale listing response")
		return ErrStaleResponse
	}

	if err != nil {
		s.state = reduce(s.state, setError{message: api.UserMessage(err, "Failed to load products")})
		s.state = reduce(s.state, setLoading{loading: false})
		return err
	}

	s.state = reduce(s.state, setProducts{products: page.Products})
	s.state = reduce(s.state, setPageMeta{totalItems: page.Total, totalPages: page.TotalPages})
	s.state = reduce(s.state, setLoading{loading: false})
	return nil
}
