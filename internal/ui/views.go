// internal/ui/views.go
package ui

import (
	"fmt"
	"strings"

	"github.com/your-org/storefront-client/internal/store/notification"
)

// View renders the active view plus the status and help bars
func (m Model) View() string {
	var body string
	switch m.view {
	case viewCart:
		body = m.cartView()
	case viewDashboard:
		body = m.dashboardView()
	default:
		body = m.catalogView()
	}

	return body + "\n" + m.statusBar() + "\n" + m.helpBar()
}

func (m Model) catalogView() string {
	state := m.stores.Catalog.State()
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Storefront"))
	if state.Loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")

	b.WriteString(m.filterLine(state.Filters.Category, state.Filters.Search, state.SortBy))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(state.Products) == 0 {
		if state.Loading {
			b.WriteString(m.theme.Muted.Render("Loading products..."))
		} else {
			b.WriteString(m.theme.Muted.Render("No products match the current filters."))
		}
		b.WriteString("\n")
	}

	for i, p := range state.Products {
		line := fmt.Sprintf("%-32s %-14s %s", truncate(p.Name, 32), truncate(p.Category, 14),
			m.theme.Price.Render(fmt.Sprintf("$%.2f", p.Price)))
		if p.Stock == 0 {
			line += m.theme.Muted.Render("  out of stock")
		}
		if i == m.cursor {
			b.WriteString(m.theme.SelectedRow.Render("> " + line))
		} else {
			b.WriteString(m.theme.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(fmt.Sprintf("page %d/%d · %d products",
		state.Pagination.Page, max(state.Pagination.TotalPages, 1), state.Pagination.TotalItems)))

	return b.String()
}

func (m Model) filterLine(category, search, sortBy string) string {
	parts := []string{"sort: " + sortBy}
	if category != "" {
		parts = append(parts, "category: "+category)
	}
	if search != "" {
		parts = append(parts, "search: "+search)
	}
	return m.theme.ActiveFilter.Render(strings.Join(parts, " · "))
}

func (m Model) cartView() string {
	state := m.stores.Cart.State()
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Cart"))
	if state.Loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if len(state.Items) == 0 {
		b.WriteString(m.theme.Muted.Render("Your cart is empty."))
		b.WriteString("\n")
	}

	for i, item := range state.Items {
		line := fmt.Sprintf("%-32s x%-3d %s", truncate(item.Name, 32), item.Quantity,
			m.theme.Price.Render(fmt.Sprintf("$%.2f", item.Price*float64(item.Quantity))))
		if i == m.cartCursor {
			b.WriteString(m.theme.SelectedRow.Render("> " + line))
		} else {
			b.WriteString(m.theme.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Header.Render(fmt.Sprintf("%d items · total %s",
		state.ItemCount, m.theme.Price.Render(fmt.Sprintf("$%.2f", state.Total)))))

	return b.String()
}

func (m Model) dashboardView() string {
	state := m.stores.Admin.State()
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Dashboard"))
	if state.DashboardLoading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if !state.DashboardLoaded {
		if state.DashboardError != "" {
			b.WriteString(m.theme.NoticeError.Render(state.DashboardError))
		} else {
			b.WriteString(m.theme.Muted.Render("Loading dashboard..."))
		}
		b.WriteString("\n")
		return b.String()
	}

	summary := state.Dashboard
	b.WriteString(fmt.Sprintf("products %d · orders %d · users %d · revenue %s\n\n",
		summary.TotalProducts, summary.TotalOrders, summary.TotalUsers,
		m.theme.Price.Render(fmt.Sprintf("$%.2f", summary.TotalRevenue))))

	b.WriteString(m.theme.Header.Render("Recent orders"))
	b.WriteString("\n")
	if len(summary.RecentOrders) == 0 {
		b.WriteString(m.theme.Muted.Render("  none"))
		b.WriteString("\n")
	}
	for _, order := range summary.RecentOrders {
		b.WriteString(fmt.Sprintf("  %-12s %-10s %s\n", truncate(order.ID, 12), order.Status,
			m.theme.Price.Render(fmt.Sprintf("$%.2f", order.Total))))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Header.Render("Top products"))
	b.WriteString("\n")
	for _, p := range summary.TopProducts {
		b.WriteString(fmt.Sprintf("  %-32s %.1f★\n", truncate(p.Name, 32), p.Rating))
	}

	return b.String()
}

// statusBar shows the most recent active notification, if any
func (m Model) statusBar() string {
	notices := m.stores.Notices.Notifications()
	if len(notices) == 0 {
		return m.theme.StatusBar.Render(" ")
	}

	latest := notices[len(notices)-1]
	var style = m.theme.NoticeInfo
	switch latest.Severity {
	case notification.SeveritySuccess:
		style = m.theme.NoticeOK
	case notification.SeverityError:
		style = m.theme.NoticeError
	case notification.SeverityWarning:
		style = m.theme.NoticeWarn
	}
	return m.theme.StatusBar.Render(style.Render(latest.Message))
}

func (m Model) helpBar() string {
	if m.searching {
		return m.theme.HelpBar.Render("enter search · esc cancel")
	}

	switch m.view {
	case viewCart:
		return m.theme.HelpBar.Render("tab view · ↑/↓ move · + more · - less · x remove · X clear · r refresh · q quit")
	case viewDashboard:
		return m.theme.HelpBar.Render("tab view · r refresh · q quit")
	default:
		return m.theme.HelpBar.Render("tab view · ↑/↓ move · enter add · n/p page · s sort · c category · C clear · / search · q quit")
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}
