// internal/ui/app.go
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/your-org/storefront-client/internal/store/admin"
	"github.com/your-org/storefront-client/internal/store/cart"
	"github.com/your-org/storefront-client/internal/store/catalog"
	"github.com/your-org/storefront-client/internal/store/notification"
	"github.com/your-org/storefront-client/internal/store/session"
)

// Stores bundles the state stores the interface renders from
type Stores struct {
	Session *session.Store
	Cart    *cart.Store
	Catalog *catalog.Store
	Admin   *admin.Store
	Notices *notification.Store
}

type view int

const (
	viewCatalog view = iota
	viewCart
	viewDashboard
)

// sortCycle is the order the sort key rotates through
var sortCycle = []string{
	catalog.SortPopularity,
	catalog.SortPriceLowHigh,
	catalog.SortPriceHighLow,
	catalog.SortNewest,
	catalog.SortRating,
}

// Model is the bubbletea application model. All domain state lives in the
// stores; the model only keeps interface concerns (active view, cursors,
// the search input).
type Model struct {
	stores Stores
	keys   keyMap
	theme  Theme

	view       view
	cursor     int
	cartCursor int

	searching bool
	search    textinput.Model
	spinner   spinner.Model

	width  int
	height int
}

// New creates the application model over the given stores
func New(stores Stores) Model {
	input := textinput.New()
	input.Placeholder = "search products"
	input.CharLimit = 64
	input.Width = 32

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		stores:  stores,
		keys:    defaultKeyMap(),
		theme:   DefaultTheme(),
		search:  input,
		spinner: spin,
	}
}

// Init loads the initial catalog page, the category list and the cart
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.refreshCatalog(),
		m.loadCategories(),
		m.hydrateCart(),
		m.spinner.Tick,
		tickCmd(),
	)
}

// Update handles messages and key presses
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogUpdatedMsg:
		if msg.err != nil {
			m.stores.Notices.Error(m.stores.Catalog.State().LastError)
		}
		m.cursor = m.clampCursor(m.cursor, len(m.stores.Catalog.State().Products))
		return m, nil

	case cartResultMsg:
		if msg.result.Success {
			m.stores.Notices.Success(msg.verb)
		} else {
			m.stores.Notices.Error(msg.result.Message)
		}
		m.cartCursor = m.clampCursor(m.cartCursor, len(m.stores.Cart.State().Items))
		return m, nil

	case cartHydratedMsg:
		m.cartCursor = m.clampCursor(m.cartCursor, len(m.stores.Cart.State().Items))
		return m, nil

	case dashboardMsg:
		if msg.err != nil {
			m.stores.Notices.Error(m.stores.Admin.State().DashboardError)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextView):
		m.view = m.nextView()
		if m.view == viewDashboard {
			return m, m.loadDashboard()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		switch m.view {
		case viewCart:
			return m, m.hydrateCart()
		case viewDashboard:
			return m, m.loadDashboard()
		default:
			return m, m.refreshCatalog()
		}
	}

	switch m.view {
	case viewCatalog:
		return m.handleCatalogKey(msg)
	case viewCart:
		return m.handleCartKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CancelText):
		m.searching = false
		m.search.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		term := m.search.Value()
		m.searching = false
		m.search.Blur()
		return m, m.runSearch(term)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Every keystroke feeds the debounced live search; the store coalesces
	// the burst into one request per quiet window.
	m.stores.Catalog.SearchLive(m.search.Value())
	return m, cmd
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.stores.Catalog.State()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(state.Products)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if state.Pagination.Page < state.Pagination.TotalPages {
			return m, m.setPage(state.Pagination.Page + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if state.Pagination.Page > 1 {
			return m, m.setPage(state.Pagination.Page - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		return m, m.setSort(nextSort(state.SortBy))

	case key.Matches(msg, m.keys.Category):
		return m, m.setCategory(nextCategory(state))

	case key.Matches(msg, m.keys.ClearAll):
		return m, m.clearFilters()

	case key.Matches(msg, m.keys.Add):
		if m.cursor < len(state.Products) {
			return m, m.addToCart(state.Products[m.cursor].ID)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.stores.Cart.State()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cartCursor < len(state.Items)-1 {
			m.cartCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		if m.cartCursor < len(state.Items) {
			item := state.Items[m.cartCursor]
			return m, m.updateQuantity(item.ProductID, item.Quantity+1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		if m.cartCursor < len(state.Items) {
			item := state.Items[m.cartCursor]
			if item.Quantity <= 1 {
				return m, m.removeFromCart(item.ProductID)
			}
			return m, m.updateQuantity(item.ProductID, item.Quantity-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if m.cartCursor < len(state.Items) {
			return m, m.removeFromCart(state.Items[m.cartCursor].ProductID)
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearCart):
		return m, m.clearCart()
	}

	return m, nil
}

// nextView advances to the next reachable view; the dashboard is only
// offered to admin sessions.
func (m Model) nextView() view {
	switch m.view {
	case viewCatalog:
		return viewCart
	case viewCart:
		if m.stores.Session.IsAdmin() {
			return viewDashboard
		}
		return viewCatalog
	default:
		return viewCatalog
	}
}

func (m Model) clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// nextSort rotates through the known sort keys
func nextSort(current string) string {
	for i, k := range sortCycle {
		if k == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

// nextCategory rotates filter-by-category through the loaded categories,
// with the empty string (no filter) as the first stop.
func nextCategory(state catalog.State) string {
	if len(state.Categories) == 0 {
		return ""
	}
	if state.Filters.Category == "" {
		return state.Categories[0].Name
	}
	for i, c := range state.Categories {
		if c.Name == state.Filters.Category {
			if i+1 < len(state.Categories) {
				return state.Categories[i+1].Name
			}
			return ""
		}
	}
	return ""
}
