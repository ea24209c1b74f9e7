package analytics

import (
	"testing"
	"time"

	"dine-in-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(v int) *int { return &v }

func TestSummarizeEmptyCollectionZeroGuards(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalOrders)
	assert.Equal(t, 0.0, s.TotalRevenue)
	assert.Equal(t, 0.0, s.AverageOrderValue)
	assert.Equal(t, 0.0, s.AverageServiceTime)
	assert.Empty(t, s.TopItems)
	assert.Empty(t, s.PeakHours)
}

func TestAverageOrderValue(t *testing.T) {
	var orders []models.Order
	for i := 0; i < 10; i++ {
		orders = append(orders, models.Order{Total: 100})
	}
	s := Summarize(orders)
	assert.Equal(t, 1000.0, s.TotalRevenue)
	assert.Equal(t, 100.0, s.AverageOrderValue)
}

func TestAverageServiceTimeCompletedOnly(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusCompleted, ServiceTimeMinutes: minutes(10)},
		{Status: models.StatusCompleted, ServiceTimeMinutes: minutes(20)},
		// Pending and ready orders never count, recorded minutes or not
		{Status: models.StatusPending},
		{Status: models.StatusReady},
	}
	s := Summarize(orders)
	assert.Equal(t, 15.0, s.AverageServiceTime)

	assert.Equal(t, 2, s.OrdersByStatus[string(models.StatusCompleted)])
	assert.Equal(t, 1, s.OrdersByStatus[string(models.StatusPending)])
	assert.Equal(t, 1, s.OrdersByStatus[string(models.StatusReady)])
}

func TestTopItemsRankingAndTypeFilters(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ItemType: models.ItemMeal, Name: "Ribeye", Quantity: 3},
			{ItemType: models.ItemMeal, Name: "Burger", Quantity: 1},
			{ItemType: models.ItemDrink, Name: "House Red", Quantity: 5},
		}},
		{Items: []models.OrderItem{
			{ItemType: models.ItemMeal, Name: "Burger", Quantity: 4},
		}},
	}

	s := Summarize(orders)
	require.Len(t, s.TopItems, 3)
	assert.Equal(t, ItemCount{Name: "Burger", Quantity: 5}, s.TopItems[0])
	assert.Equal(t, ItemCount{Name: "House Red", Quantity: 5}, s.TopItems[1])
	assert.Equal(t, ItemCount{Name: "Ribeye", Quantity: 3}, s.TopItems[2])

	require.Len(t, s.TopSellingMeals, 2)
	assert.Equal(t, "Burger", s.TopSellingMeals[0].Name)
	require.Len(t, s.TopSellingDrinks, 1)
	assert.Equal(t, "House Red", s.TopSellingDrinks[0].Name)
}

func TestTopItemsTiesKeepFirstEncounteredOrder(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			{ItemType: models.ItemMeal, Name: "Ribeye", Quantity: 2},
			{ItemType: models.ItemMeal, Name: "Burger", Quantity: 2},
		}},
	}
	s := Summarize(orders)
	require.Len(t, s.TopItems, 2)
	assert.Equal(t, "Ribeye", s.TopItems[0].Name)
	assert.Equal(t, "Burger", s.TopItems[1].Name)
}

func TestTopItemsTruncatesToFive(t *testing.T) {
	items := make([]models.OrderItem, 0, 8)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, n := range names {
		items = append(items, models.OrderItem{ItemType: models.ItemMeal, Name: n, Quantity: len(names) - i})
	}
	s := Summarize([]models.Order{{Items: items}})
	require.Len(t, s.TopItems, 5)
	assert.Equal(t, "A", s.TopItems[0].Name)
	assert.Equal(t, "E", s.TopItems[4].Name)
}

func TestPeakHoursBucketsAndTruncates(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	var orders []models.Order
	// 3 orders at 19:00, 2 at 12:00, 1 each across 7 other hours
	for i := 0; i < 3; i++ {
		orders = append(orders, models.Order{CreatedAt: day.Add(19 * time.Hour)})
	}
	for i := 0; i < 2; i++ {
		orders = append(orders, models.Order{CreatedAt: day.Add(12 * time.Hour)})
	}
	for _, h := range []int{8, 9, 10, 11, 13, 14, 15} {
		orders = append(orders, models.Order{CreatedAt: day.Add(time.Duration(h) * time.Hour)})
	}

	s := Summarize(orders)
	require.Len(t, s.PeakHours, 6)
	assert.Equal(t, HourCount{Hour: 19, Orders: 3}, s.PeakHours[0])
	assert.Equal(t, HourCount{Hour: 12, Orders: 2}, s.PeakHours[1])
}
