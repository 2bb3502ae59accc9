// internal/ui/commands.go
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/your-org/storefront-client/internal/store/cart"
	"github.com/your-org/storefront-client/internal/store/catalog"
)

// catalogUpdatedMsg signals that a catalog operation finished
type catalogUpdatedMsg struct{ err error }

// cartResultMsg carries the outcome of a cart mutation
type cartResultMsg struct {
	verb   string
	result cart.Result
}

// cartHydratedMsg signals that the initial cart load finished
type cartHydratedMsg struct{}

// dashboardMsg signals that the admin dashboard load finished
type dashboardMsg struct{ err error }

// tickMsg drives periodic repaints so notification expiry is visible
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// catalogCmd wraps a blocking catalog operation as a command. Stale
// responses are not an error worth surfacing.
func catalogCmd(op func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := op(context.Background())
		if errors.Is(err, catalog.ErrStaleResponse) {
			err = nil
		}
		return catalogUpdatedMsg{err: err}
	}
}

func (m Model) refreshCatalog() tea.Cmd {
	return catalogCmd(m.stores.Catalog.Refresh)
}

func (m Model) setPage(page int) tea.Cmd {
	return catalogCmd(func(ctx context.Context) error {
		return m.stores.Catalog.SetPage(ctx, page)
	})
}

func (m Model) setSort(key string) tea.Cmd {
	return catalogCmd(func(ctx context.Context) error {
		return m.stores.Catalog.SetSort(ctx, key)
	})
}

func (m Model) setCategory(name string) tea.Cmd {
	return catalogCmd(func(ctx context.Context) error {
		return m.stores.Catalog.SetFilters(ctx, catalog.FilterUpdate{Category: &name})
	})
}

func (m Model) clearFilters() tea.Cmd {
	return catalogCmd(m.stores.Catalog.ClearFilters)
}

func (m Model) runSearch(term string) tea.Cmd {
	return catalogCmd(func(ctx context.Context) error {
		return m.stores.Catalog.Search(ctx, term)
	})
}

func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		m.stores.Catalog.LoadCategories(context.Background())
		return catalogUpdatedMsg{}
	}
}

func (m Model) hydrateCart() tea.Cmd {
	return func() tea.Msg {
		m.stores.Cart.Hydrate(context.Background())
		return cartHydratedMsg{}
	}
}

func (m Model) addToCart(productID string) tea.Cmd {
	return func() tea.Msg {
		return cartResultMsg{verb: "Added to cart", result: m.stores.Cart.AddItem(context.Background(), productID, 1)}
	}
}

func (m Model) updateQuantity(productID string, quantity int) tea.Cmd {
	return func() tea.Msg {
		return cartResultMsg{verb: "Quantity updated", result: m.stores.Cart.UpdateQuantity(context.Background(), productID, quantity)}
	}
}

func (m Model) removeFromCart(productID string) tea.Cmd {
	return func() tea.Msg {
		return cartResultMsg{verb: "Item removed", result: m.stores.Cart.RemoveItem(context.Background(), productID)}
	}
}

func (m Model) clearCart() tea.Cmd {
	return func() tea.Msg {
		return cartResultMsg{verb: "Cart cleared", result: m.stores.Cart.Clear(context.Background())}
	}
}

func (m Model) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		return dashboardMsg{err: m.stores.Admin.LoadDashboard(context.Background())}
	}
}
