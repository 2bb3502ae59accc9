// internal/store/cart/reducer.go
package cart

// LineItem represents one product-and-quantity entry within the cart
type LineItem struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

// State represents the cart as known locally. Total and ItemCount are
// derived from Items and recomputed on every item mutation; they are never
// written independently.
type State struct {
	Items     []LineItem
	Total     float64
	ItemCount int
	Loading   bool
	LastError string
}

// action is the closed set of cart state transitions
type action interface {
	isCartAction()
}

type setLoading struct{ loading bool }
type setError struct{ message string }
type setCart struct{ items []LineItem }
type addItem struct{ item LineItem }
type setQuantity struct {
	productID string
	quantity  int
}
type removeItem struct{ productID string }
type clearCart struct{}

func (setLoading) isCartAction()  {}
func (setError) isCartAction()    {}
func (setCart) isCartAction()     {}
func (addItem) isCartAction()     {}
func (setQuantity) isCartAction() {}
func (removeItem) isCartAction()  {}
func (clearCart) isCartAction()   {}

// reduce is the pure state-transition function over (state, action)
func reduce(state State, a action) State {
	switch a := a.(type) {
	case setLoading:
		state.Loading = a.loading
		return state

	case setError:
		state.LastError = a.message
		return state

	case setCart:
		return withItems(state, cloneItems(a.items))

	case addItem:
		items := cloneItems(state.Items)
		merged := false
		for i := range items {
			if items[i].ProductID == a.item.ProductID {
				items[i].Quantity += a.item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, a.item)
		}
		return withItems(state, items)

	case setQuantity:
		items := cloneItems(state.Items)
		for i := range items {
			if items[i].ProductID == a.productID {
				items[i].Quantity = a.quantity
				break
			}
		}
		return withItems(state, items)

	case removeItem:
		items := make([]LineItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID != a.productID {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			items = nil
		}
		return withItems(state, items)

	case clearCart:
		return withItems(state, nil)
	}

	return state
}

// withItems installs a new item sequence and recomputes the derived totals
func withItems(state State, items []LineItem) State {
	var total float64
	var count int
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		count += item.Quantity
	}

	state.Items = items
	state.Total = total
	state.ItemCount = count
	return state
}

func cloneItems(items []LineItem) []LineItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]LineItem, len(items))
	copy(dup, items)
	return dup
}
