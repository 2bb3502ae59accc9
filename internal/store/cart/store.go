// internal/store/cart/store.go
package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
)

// API is the remote cart contract the store depends on
type API interface {
	GetCart(ctx context.Context) (*api.CartPayload, error)
	AddToCart(ctx context.Context, productID string, quantity int) (*api.AddToCartResult, error)
	UpdateCartItem(ctx context.Context, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
}

// Ensure the HTTP client satisfies the contract at compile time
var _ API = (*api.Client)(nil)

// Result reports the outcome of a mutating cart operation. Message carries
// a user-facing explanation on failure.
type Result struct {
	Success bool
	Message string
}

// Store synchronizes the local cart with the remote cart resource. Every
// mutation is remote-first: the local state is reduced only after the
// backend confirms, so the cart never shows a value the server hasn't
// priced. Continuations resumed after Reset (logout) are discarded via the
// epoch token.
type Store struct {
	mu    sync.Mutex
	api   API
	log   *logrus.Entry
	state State
	epoch uint64
}

// NewStore creates a cart store backed by the given remote API
func NewStore(remote API, logger *logrus.Logger) *Store {
	return &Store{
		api: remote,
		log: logger.WithField("store", "cart"),
	}
}

// State returns a snapshot of the current cart state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Items = cloneItems(s.state.Items)
	return snap
}

// Hydrate replaces local state with the authoritative remote cart. Called
// once per session start. Failures are best-effort: prior local state is
// kept and only a non-blocking error is recorded.
func (s *Store) Hydrate(ctx context.Context) {
	epoch := s.beginOperation()

	payload, err := s.api.GetCart(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Failed to load cart, keeping local state")
		s.endOperation(epoch, setError{api.UserMessage(err, "Failed to load cart")})
		return
	}

	items := make([]LineItem, 0, len(payload.Items))
	for _, line := range payload.Items {
		items = append(items, LineItem{
			ProductID: line.Product,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}
	// Totals are recomputed from the item sequence rather than trusted from
	// the payload, preserving the derivation invariant.
	s.endOperation(epoch, setCart{items: items})
}

// AddItem adds quantity units of a product to the cart. The item's price,
// name and image come from the server's confirmation; on failure local
// state is left unchanged.
func (s *Store) AddItem(ctx context.Context, productID string, quantity int) Result {
	if quantity < 1 {
		return Result{Message: "Quantity must be at least 1"}
	}

	epoch := s.beginOperation()

	confirmed, err := s.api.AddToCart(ctx, productID, quantity)
	if err != nil {
		message := api.UserMessage(err, "Failed to add item to cart")
		s.endOperation(epoch)
		return Result{Message: message}
	}

	s.endOperation(epoch, addItem{item: LineItem{
		ProductID: productID,
		Name:      confirmed.Name,
		Price:     confirmed.Price,
		Image:     confirmed.Image,
		Quantity:  quantity,
	}})
	return Result{Success: true}
}

// UpdateQuantity sets the quantity of an existing line item. Quantity 0 is
// a removal, not an update; callers must use RemoveItem for that.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) Result {
	if quantity < 1 {
		return Result{Message: "Quantity must be at least 1; remove the item instead"}
	}

	epoch := s.beginOperation()

	if err := s.api.UpdateCartItem(ctx, productID, quantity); err != nil {
		message := api.UserMessage(err, "Failed to update quantity")
		s.endOperation(epoch)
		return Result{Message: message}
	}

	s.endOperation(epoch, setQuantity{productID: productID, quantity: quantity})
	return Result{Success: true}
}

// RemoveItem removes a line item from the cart
func (s *Store) RemoveItem(ctx context.Context, productID string) Result {
	epoch := s.beginOperation()

	if err := s.api.RemoveCartItem(ctx, productID); err != nil {
		message := api.UserMessage(err, "Failed to remove item")
		s.endOperation(epoch)
		return Result{Message: message}
	}

	s.endOperation(epoch, removeItem{productID: productID})
	return Result{Success: true}
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) Result {
	epoch := s.beginOperation()

	if err := s.api.ClearCart(ctx); err != nil {
		message := api.UserMessage(err, "Failed to clear cart")
		s.endOperation(epoch)
		return Result{Message: message}
	}

	s.endOperation(epoch, clearCart{})
	return Result{Success: true}
}

// Reset discards all local cart state without a remote call and invalidates
// any in-flight continuations. Used on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.state = State{}
}

// beginOperation marks the store loading and returns the liveness token the
// finishing continuation must present.
func (s *Store) beginOperation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, setLoading{loading: true})
	return s.epoch
}

// endOperation applies the given actions and clears the loading flag,
// unless the store was reset while the remote call was in flight.
func (s *Store) endOperation(epoch uint64, actions ...action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		s.log.Debug("Discarding continuation from a previous session")
		return
	}

	for _, a := range actions {
		s.state = reduce(s.state, a)
	}
	s.state = reduce(s.state, setLoading{loading: false})
}
