package handlers

import (
	"net/http"

	"dine-in-api/cart"
	"dine-in-api/config"
	"dine-in-api/models"
	"dine-in-api/realtime"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlaceOrder materializes the session cart into a persisted order with its
// items. The order and its items are written in one transaction: either the
// whole order lands or nothing does. The whole submit runs under the store
// lock so a concurrent cart mutation cannot slip between the snapshot and
// the clear.
func PlaceOrder(c *gin.Context) {
	sid := sessionID(c)

	var order models.Order
	var failStatus int
	var failError string
	Carts.Update(sid, func(crt *cart.Cart) {
		// Preconditions, rejected before any write
		if len(crt.Lines) == 0 {
			failStatus, failError = http.StatusUnprocessableEntity, "Cart is empty"
			return
		}
		if crt.TableNumber == "" {
			failStatus, failError = http.StatusUnprocessableEntity, "Table number is required before placing an order"
			return
		}
		if crt.RestaurantID == 0 {
			failStatus, failError = http.StatusUnprocessableEntity, "Cart is not bound to a restaurant"
			return
		}

		var items []models.OrderItem
		for _, line := range crt.Lines {
			unitPrice := 0.0
			if line.UnitPrice != nil {
				unitPrice = *line.UnitPrice
			}
			item := models.OrderItem{
				ItemType:  models.ItemType(line.Type),
				ItemID:    line.ItemID,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				// Snapshot totals so menu edits never change a placed order
				TotalPrice: unitPrice * float64(line.Quantity),
			}
			if line.Type == "meal" {
				item.SideIDs = line.SideIDs
				item.ExtraIDs = line.ExtraIDs
				item.Prefs = line.Prefs
			} else {
				item.Variant = line.Variant
			}
			items = append(items, item)
		}

		order = models.Order{
			RestaurantID: crt.RestaurantID,
			TableNumber:  crt.TableNumber,
			DinerName:    crt.DinerName,
			Status:       models.StatusPending,
			Total:        crt.Total(),
			Items:        items,
		}

		err := config.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			history := models.OrderStatusHistory{
				OrderID:  order.ID,
				ToStatus: models.StatusPending,
				Note:     "Order placed by " + crt.DinerName,
			}
			return tx.Create(&history).Error
		})
		if err != nil {
			failStatus, failError = http.StatusInternalServerError, "Failed to place order"
			return
		}

		// Keep table/diner/restaurant so the diner can keep ordering
		crt.ClearItems()
	})
	if failError != "" {
		c.JSON(failStatus, gin.H{"error": failError})
		return
	}

	realtime.Orders.Notify(order.RestaurantID)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.ID,
		"total":    order.Total,
	})
}

// GetTableOrders returns the orders for one table at a restaurant, the
// diner's view of their session
func GetTableOrders(c *gin.Context) {
	restaurantID := c.Query("restaurant_id")
	table := c.Query("table")
	if restaurantID == "" || table == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id and table are required"})
		return
	}

	var orders []models.Order
	config.DB.Preload("Items").
		Where("restaurant_id = ? AND table_number = ? AND table_closed = ?", restaurantID, table, false).
		Order("created_at desc").
		Find(&orders)

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// RequestBill raises the bill flag on an order. Idempotent: asking twice has
// no further effect.
func RequestBill(c *gin.Context) {
	setOrderFlag(c, "bill_requested", true, "Bill requested")
}

// CallWaiter raises the waiter flag on an order. Idempotent.
func CallWaiter(c *gin.Context) {
	setOrderFlag(c, "waiter_called", true, "Waiter called")
}

func setOrderFlag(c *gin.Context, column string, value bool, message string) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.TableClosed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Table is closed"})
		return
	}

	if err := config.DB.Model(&order).Update(column, value).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	realtime.Orders.Notify(order.RestaurantID)
	c.JSON(http.StatusOK, gin.H{"message": message, "order_id": order.ID})
}
