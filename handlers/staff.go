package handlers

import (
	"log"
	"net/http"
	"time"

	"dine-in-api/analytics"
	"dine-in-api/config"
	"dine-in-api/middleware"
	"dine-in-api/models"
	"dine-in-api/realtime"
	"dine-in-api/statemachine"
	"dine-in-api/views"

	"github.com/gin-gonic/gin"
)

// GetDashboardOrders returns the staff dashboard view: the selected tab,
// table-grouped with running totals, plus the notification badges
func GetDashboardOrders(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	tab := views.Tab(c.DefaultQuery("tab", string(views.TabOpen)))
	if !views.ValidTab(tab) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tab: " + string(tab)})
		return
	}

	var orders []models.Order
	config.DB.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&orders)

	groups := views.Derive(orders, tab, c.Query("table"))

	count := 0
	for _, g := range groups {
		count += len(g.Orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"tab":    tab,
		"count":  count,
		"tables": groups,
		"badges": views.CountBadges(orders),
	})
}

// GetBadges returns only the pending-action counters, for cheap polling
func GetBadges(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	var orders []models.Order
	config.DB.Where("restaurant_id = ?", restaurantID).Find(&orders)
	c.JSON(http.StatusOK, gin.H{"badges": views.CountBadges(orders)})
}

// loadStaffOrder fetches an order and checks it belongs to the caller's restaurant
func loadStaffOrder(c *gin.Context) (*models.Order, bool) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}
	if order.RestaurantID != middleware.GetRestaurantID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return nil, false
	}
	return &order, true
}

func rejectTransition(c *gin.Context, order *models.Order, requested models.OrderStatus, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":             "Invalid state transition",
		"current_status":    order.Status,
		"requested":         requested,
		"reason":            err.Error(),
		"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
	})
}

type ConfirmOrderRequest struct {
	WaiterName string `json:"waiter_name"`
}

// ConfirmOrder moves pending → ready. One waiter serves a table: if any other
// non-closed order at the table already has a waiter, that name is reused and
// the request needs no waiter_name; otherwise the caller must supply one.
func ConfirmOrder(c *gin.Context) {
	order, ok := loadStaffOrder(c)
	if !ok {
		return
	}

	var req ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CheckTransition(order, models.StatusReady, "confirm"); err != nil {
		rejectTransition(c, order, models.StatusReady, err)
		return
	}

	waiterName := req.WaiterName
	if waiterName == "" {
		var tableMate models.Order
		err := config.DB.
			Where("restaurant_id = ? AND table_number = ? AND table_closed = ? AND waiter_name <> '' AND id <> ?",
				order.RestaurantID, order.TableNumber, false, order.ID).
			First(&tableMate).Error
		if err == nil {
			waiterName = tableMate.WaiterName
		}
	}
	if waiterName == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "A waiter name is required to confirm this table's first order"})
		return
	}

	if err := config.DB.Model(order).Updates(map[string]interface{}{
		"status":      models.StatusReady,
		"waiter_name": waiterName,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm order"})
		return
	}

	recordHistory(order.ID, models.StatusPending, models.StatusReady, middleware.GetUserID(c), "Confirmed, waiter "+waiterName)
	realtime.Orders.Notify(order.RestaurantID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Order confirmed",
		"order_id":    order.ID,
		"waiter_name": waiterName,
	})
}

// ServeOrder moves ready → completed and records the service time as the
// wall-clock minutes from creation to this moment. Written once, never
// recomputed.
func ServeOrder(c *gin.Context) {
	order, ok := loadStaffOrder(c)
	if !ok {
		return
	}

	if err := statemachine.CheckTransition(order, models.StatusCompleted, "serve"); err != nil {
		rejectTransition(c, order, models.StatusCompleted, err)
		return
	}

	minutes := int(time.Since(order.CreatedAt).Minutes())
	if err := config.DB.Model(order).Updates(map[string]interface{}{
		"status":               models.StatusCompleted,
		"service_time_minutes": minutes,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark order served"})
		return
	}

	recordHistory(order.ID, models.StatusReady, models.StatusCompleted, middleware.GetUserID(c), "Served")
	realtime.Orders.Notify(order.RestaurantID)

	c.JSON(http.StatusOK, gin.H{
		"message":              "Order served",
		"order_id":             order.ID,
		"service_time_minutes": minutes,
	})
}

// CloseOrder marks a single order completed if it is not already. Idempotent;
// distinct from closing the table.
func CloseOrder(c *gin.Context) {
	order, ok := loadStaffOrder(c)
	if !ok {
		return
	}

	if err := statemachine.CheckTransition(order, models.StatusCompleted, "close"); err != nil {
		rejectTransition(c, order, models.StatusCompleted, err)
		return
	}

	if order.Status != models.StatusCompleted {
		prev := order.Status
		if err := config.DB.Model(order).Update("status", models.StatusCompleted).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close order"})
			return
		}
		recordHistory(order.ID, prev, models.StatusCompleted, middleware.GetUserID(c), "Closed")
		realtime.Orders.Notify(order.RestaurantID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order closed", "order_id": order.ID})
}

// CloseTable ends the dining session: every order at the table, whatever its
// status, gets table_closed = true. One-way; there is no reopen.
func CloseTable(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	table := c.Param("table")

	result := config.DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND table_number = ?", restaurantID, table).
		Update("table_closed", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close table"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No orders found for table " + table})
		return
	}

	// The dining session is over: drop any cart still bound to this table
	Carts.DeleteTable(restaurantID, table)

	realtime.Orders.Notify(restaurantID)
	c.JSON(http.StatusOK, gin.H{
		"message":       "Table " + table + " closed",
		"orders_closed": result.RowsAffected,
	})
}

// DismissBillRequest clears the bill flag after staff handled it
func DismissBillRequest(c *gin.Context) {
	dismissFlag(c, "bill_requested", "Bill request dismissed")
}

// DismissWaiterCall clears the waiter flag after staff handled it
func DismissWaiterCall(c *gin.Context) {
	dismissFlag(c, "waiter_called", "Waiter call dismissed")
}

func dismissFlag(c *gin.Context, column, message string) {
	order, ok := loadStaffOrder(c)
	if !ok {
		return
	}
	if err := config.DB.Model(order).Update(column, false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	realtime.Orders.Notify(order.RestaurantID)
	c.JSON(http.StatusOK, gin.H{"message": message, "order_id": order.ID})
}

// GetAnalytics reduces the restaurant's all-time orders into the dashboard
// summary
func GetAnalytics(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	var orders []models.Order
	config.DB.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"analytics": analytics.Summarize(orders)})
}

func recordHistory(orderID uint, from, to models.OrderStatus, changedBy uint, note string) {
	history := models.OrderStatusHistory{
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  changedBy,
		Note:       note,
	}
	// Best effort: a failed audit row never blocks the transition itself
	if err := config.DB.Create(&history).Error; err != nil {
		log.Printf("failed to record status history for order %d: %v", orderID, err)
	}
}
