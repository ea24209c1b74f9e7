package handlers

import (
	"net/http"
	"strconv"

	"dine-in-api/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SubscribeOrders upgrades to a websocket and streams any-change pings for
// one restaurant's orders. Clients re-fetch on every ping.
func SubscribeOrders(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurant_id"), 10, 64)
	if err != nil || restaurantID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	realtime.Orders.Subscribe(uint(restaurantID), conn)
}
