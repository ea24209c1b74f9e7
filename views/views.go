// Package views projects the flat order collection into the tab-scoped,
// table-grouped shapes the staff dashboard renders. Everything here is a pure
// function over a slice of orders; no database access.
package views

import (
	"sort"

	"dine-in-api/models"
)

// Tab selects a dashboard partition. The four status tabs are mutually
// exclusive per order; bill-requests and waiter-requests are overlays whose
// membership comes from the flags, independent of status.
type Tab string

const (
	TabOpen           Tab = "open"
	TabConfirmed      Tab = "confirmed"
	TabServed         Tab = "served"
	TabClosed         Tab = "closed"
	TabBillRequests   Tab = "bill-requests"
	TabWaiterRequests Tab = "waiter-requests"
)

// ValidTab reports whether t names a known partition.
func ValidTab(t Tab) bool {
	switch t {
	case TabOpen, TabConfirmed, TabServed, TabClosed, TabBillRequests, TabWaiterRequests:
		return true
	}
	return false
}

// Partition selects the orders belonging to a tab. Closed tables appear only
// in the closed tab and are excluded everywhere else, overlays included.
func Partition(orders []models.Order, tab Tab) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if memberOf(o, tab) {
			out = append(out, o)
		}
	}
	return out
}

func memberOf(o models.Order, tab Tab) bool {
	switch tab {
	case TabOpen:
		return o.Status == models.StatusPending && !o.TableClosed
	case TabConfirmed:
		return o.Status == models.StatusReady && !o.TableClosed
	case TabServed:
		return o.Status == models.StatusCompleted && !o.TableClosed
	case TabClosed:
		return o.TableClosed
	case TabBillRequests:
		return o.BillRequested && !o.TableClosed
	case TabWaiterRequests:
		return o.WaiterCalled && !o.TableClosed
	}
	return false
}

// FilterTable keeps orders for one table. An empty filter keeps everything,
// and filtering commutes with Partition.
func FilterTable(orders []models.Order, table string) []models.Order {
	if table == "" {
		return orders
	}
	var out []models.Order
	for _, o := range orders {
		if o.TableNumber == table {
			out = append(out, o)
		}
	}
	return out
}

// TableGroup is one table's orders within a partition plus its running total.
type TableGroup struct {
	TableNumber string         `json:"table_number"`
	Orders      []models.Order `json:"orders"`
	Total       float64        `json:"total"`
}

// GroupByTable buckets orders by table number, preserving first-seen table
// order. The running total sums the group's member orders regardless of
// which partition is being viewed.
func GroupByTable(orders []models.Order) []TableGroup {
	index := map[string]int{}
	var groups []TableGroup
	for _, o := range orders {
		i, ok := index[o.TableNumber]
		if !ok {
			i = len(groups)
			index[o.TableNumber] = i
			groups = append(groups, TableGroup{TableNumber: o.TableNumber})
		}
		groups[i].Orders = append(groups[i].Orders, o)
		groups[i].Total += o.Total
	}
	return groups
}

// Derive composes the tab partition, the optional table filter, and grouping.
// The confirmed tab is globally sorted by ascending creation time before
// grouping so the longest-waiting table surfaces first.
func Derive(orders []models.Order, tab Tab, tableFilter string) []TableGroup {
	selected := Partition(FilterTable(orders, tableFilter), tab)
	if tab == TabConfirmed {
		sort.SliceStable(selected, func(i, j int) bool {
			return selected[i].CreatedAt.Before(selected[j].CreatedAt)
		})
	}
	return GroupByTable(selected)
}

// Badges are the pending-action counters shown on the dashboard shell.
type Badges struct {
	OpenOrders   int `json:"open_orders"`
	BillRequests int `json:"bill_requests"`
	WaiterCalls  int `json:"waiter_calls"`
}

// CountBadges derives the notification counters from the order collection.
func CountBadges(orders []models.Order) Badges {
	var b Badges
	for _, o := range orders {
		if o.TableClosed {
			continue
		}
		if o.Status == models.StatusPending {
			b.OpenOrders++
		}
		if o.BillRequested {
			b.BillRequests++
		}
		if o.WaiterCalled {
			b.WaiterCalls++
		}
	}
	return b
}
