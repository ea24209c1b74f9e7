// Package analytics reduces the all-time order collection of a restaurant
// into the dashboard summary figures. Pure functions; totals never divide by
// zero and malformed rows contribute 0 rather than erroring.
package analytics

import (
	"sort"

	"dine-in-api/models"
)

const (
	topItemsLimit  = 5
	peakHoursLimit = 6
)

// ItemCount is an item name with its summed ordered quantity.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// HourCount is an hour-of-day bucket with its order count.
type HourCount struct {
	Hour   int `json:"hour"`
	Orders int `json:"orders"`
}

type Summary struct {
	TotalOrders        int            `json:"total_orders"`
	TotalRevenue       float64        `json:"total_revenue"`
	AverageOrderValue  float64        `json:"average_order_value"`
	AverageServiceTime float64        `json:"average_service_time_minutes"`
	OrdersByStatus     map[string]int `json:"orders_by_status"`
	TopItems           []ItemCount    `json:"top_items"`
	TopSellingMeals    []ItemCount    `json:"top_selling_meals"`
	TopSellingDrinks   []ItemCount    `json:"top_selling_drinks"`
	PeakHours          []HourCount    `json:"peak_hours"`
}

// Summarize reduces the full order collection. Orders must carry their Items
// for the top-seller rankings.
func Summarize(orders []models.Order) Summary {
	s := Summary{OrdersByStatus: map[string]int{}}
	s.TotalOrders = len(orders)

	var serviceTotal, serviceCount int
	for _, o := range orders {
		s.TotalRevenue += o.Total
		s.OrdersByStatus[string(o.Status)]++
		if o.Status == models.StatusCompleted && o.ServiceTimeMinutes != nil {
			serviceTotal += *o.ServiceTimeMinutes
			serviceCount++
		}
	}
	if s.TotalOrders > 0 {
		s.AverageOrderValue = s.TotalRevenue / float64(s.TotalOrders)
	}
	if serviceCount > 0 {
		s.AverageServiceTime = float64(serviceTotal) / float64(serviceCount)
	}

	s.TopItems = topItems(orders, "")
	s.TopSellingMeals = topItems(orders, models.ItemMeal)
	s.TopSellingDrinks = topItems(orders, models.ItemDrink)
	s.PeakHours = peakHours(orders)
	return s
}

// topItems groups order items by display name, sums quantities, and returns
// the top 5. Ties keep first-encountered order for determinism.
func topItems(orders []models.Order, itemType models.ItemType) []ItemCount {
	quantities := map[string]int{}
	var names []string
	for _, o := range orders {
		for _, item := range o.Items {
			if itemType != "" && item.ItemType != itemType {
				continue
			}
			if _, seen := quantities[item.Name]; !seen {
				names = append(names, item.Name)
			}
			quantities[item.Name] += item.Quantity
		}
	}

	ranked := make([]ItemCount, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, ItemCount{Name: name, Quantity: quantities[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > topItemsLimit {
		ranked = ranked[:topItemsLimit]
	}
	return ranked
}

// peakHours buckets orders by local hour of creation and returns the busiest 6.
func peakHours(orders []models.Order) []HourCount {
	counts := map[int]int{}
	for _, o := range orders {
		counts[o.CreatedAt.Local().Hour()]++
	}

	ranked := make([]HourCount, 0, len(counts))
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > 0 {
			ranked = append(ranked, HourCount{Hour: hour, Orders: counts[hour]})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Orders > ranked[j].Orders
	})
	if len(ranked) > peakHoursLimit {
		ranked = ranked[:peakHoursLimit]
	}
	return ranked
}
