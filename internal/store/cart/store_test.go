// internal/store/cart/store_test.go
package cart

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/api"
)

type fakeCartAPI struct {
	payload    *api.CartPayload
	getErr     error
	addResults map[string]*api.AddToCartResult
	addErr     error
	updateErr  error
	removeErr  error
	clearErr   error

	addCalls    int
	updateCalls int
	removeCalls int
	clearCalls  int

	started chan struct{}
	gate    chan struct{}
}

func (f *fakeCartAPI) GetCart(ctx context.Context) (*api.CartPayload, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.payload, nil
}

func (f *fakeCartAPI) AddToCart(ctx context.Context, productID string, quantity int) (*api.AddToCartResult, error) {
	f.addCalls++
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.addErr != nil {
		return nil, f.addErr
	}
	return f.addResults[productID], nil
}

func (f *fakeCartAPI) UpdateCartItem(ctx context.Context, productID string, quantity int) error {
	f.updateCalls++
	return f.updateErr
}

func (f *fakeCartAPI) RemoveCartItem(ctx context.Context, productID string) error {
	f.removeCalls++
	return f.removeErr
}

func (f *fakeCartAPI) ClearCart(ctx context.Context) error {
	f.clearCalls++
	return f.clearErr
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestStore() (*Store, *fakeCartAPI) {
	remote := &fakeCartAPI{
		addResults: map[string]*api.AddToCartResult{
			"p1": {Price: 20, Name: "Desk Lamp", Image: "lamp.jpg"},
			"p2": {Price: 5, Name: "Notebook", Image: "notebook.jpg"},
		},
	}
	return NewStore(remote, testLogger()), remote
}

func TestTotalsDerivedFromItems(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	require.True(t, store.AddItem(ctx, "p1", 1).Success)
	state := store.State()
	assert.Equal(t, 20.0, state.Total)
	assert.Equal(t, 1, state.ItemCount)

	// Adding the same product merges into one line
	require.True(t, store.AddItem(ctx, "p1", 2).Success)
	state = store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 60.0, state.Total)
	assert.Equal(t, 3, state.ItemCount)

	require.True(t, store.UpdateQuantity(ctx, "p1", 1).Success)
	state = store.State()
	assert.Equal(t, 20.0, state.Total)
	assert.Equal(t, 1, state.ItemCount)

	require.True(t, store.AddItem(ctx, "p2", 2).Success)
	state = store.State()
	assert.Equal(t, 30.0, state.Total)
	assert.Equal(t, 3, state.ItemCount)

	require.True(t, store.RemoveItem(ctx, "p1").Success)
	state = store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 10.0, state.Total)
	assert.Equal(t, 2, state.ItemCount)

	require.True(t, store.Clear(ctx).Success)
	state = store.State()
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	assert.Zero(t, state.ItemCount)
}

func TestFailedMutationLeavesStateUnchanged(t *testing.T) {
	store, remote := newTestStore()
	ctx := context.Background()

	require.True(t, store.AddItem(ctx, "p1", 2).Success)
	before := store.State()

	remote.updateErr = &api.RemoteError{StatusCode: 400, Message: "Insufficient stock for this product"}
	result := store.UpdateQuantity(ctx, "p1", 50)

	require.False(t, result.Success)
	assert.Equal(t, "Insufficient stock for this product", result.Message)
	assert.Equal(t, before, store.State())

	remote.removeErr = &api.RemoteError{StatusCode: 500, Message: "boom"}
	require.False(t, store.RemoveItem(ctx, "p1").Success)
	assert.Equal(t, before, store.State())
}

func TestInvalidQuantityRejectedWithoutNetworkCall(t *testing.T) {
	store, remote := newTestStore()
	ctx := context.Background()

	result := store.AddItem(ctx, "p1", 0)
	require.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Zero(t, remote.addCalls)

	result = store.UpdateQuantity(ctx, "p1", -1)
	require.False(t, result.Success)
	assert.Zero(t, remote.updateCalls)
}

func TestHydrateRecomputesTotals(t *testing.T) {
	store, remote := newTestStore()

	// The payload's totals are deliberately wrong; the store must derive
	// its own from the item sequence.
	remote.payload = &api.CartPayload{
		Items: []api.CartLine{
			{Product: "p1", Quantity: 2, Price: 20, Name: "Desk Lamp"},
			{Product: "p2", Quantity: 1, Price: 5, Name: "Notebook"},
		},
		Total:     999,
		ItemCount: 42,
	}

	store.Hydrate(context.Background())

	state := store.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, 45.0, state.Total)
	assert.Equal(t, 3, state.ItemCount)
	assert.False(t, state.Loading)
}

func TestHydrateFailureKeepsLocalState(t *testing.T) {
	store, remote := newTestStore()
	ctx := context.Background()

	require.True(t, store.AddItem(ctx, "p1", 1).Success)

	remote.getErr = &api.RemoteError{StatusCode: 500, Message: "down for maintenance"}
	store.Hydrate(ctx)

	state := store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 20.0, state.Total)
	assert.Equal(t, "down for maintenance", state.LastError)
	assert.False(t, state.Loading)
}

func TestResetDiscardsInFlightContinuation(t *testing.T) {
	store, remote := newTestStore()
	remote.started = make(chan struct{})
	remote.gate = make(chan struct{})

	done := make(chan Result)
	go func() {
		done <- store.AddItem(context.Background(), "p1", 1)
	}()

	<-remote.started
	store.Reset()
	close(remote.gate)

	// The remote call itself succeeded, but its continuation belongs to a
	// dead session and must not resurrect any cart state.
	result := <-done
	require.True(t, result.Success)

	state := store.State()
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
	assert.Zero(t, state.ItemCount)
	assert.False(t, state.Loading)
}

func TestResetClearsState(t *testing.T) {
	store, _ := newTestStore()

	require.True(t, store.AddItem(context.Background(), "p1", 3).Success)
	store.Reset()

	assert.Equal(t, State{}, store.State())
}
