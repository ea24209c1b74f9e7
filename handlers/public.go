package handlers

import (
	"net/http"

	"dine-in-api/config"
	"dine-in-api/models"
	"dine-in-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all restaurants (public)
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := config.DB

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if open := c.Query("open"); open == "true" {
		query = query.Where("is_open = ?", true)
	}

	query.Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.Preload("Categories").First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns a restaurant's meals and drinks (public, diner-facing)
func GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	mealQuery := config.DB.Where("restaurant_id = ?", restaurantID)
	drinkQuery := config.DB.Where("restaurant_id = ?", restaurantID)
	if category := c.Query("category_id"); category != "" {
		mealQuery = mealQuery.Where("category_id = ?", category)
		drinkQuery = drinkQuery.Where("category_id = ?", category)
	}
	if c.Query("available") == "true" {
		mealQuery = mealQuery.Where("is_available = ?", true)
		drinkQuery = drinkQuery.Where("is_available = ?", true)
	}

	var meals []models.Meal
	var drinks []models.Drink
	mealQuery.Find(&meals)
	drinkQuery.Find(&drinks)

	var categories []models.Category
	config.DB.Where("restaurant_id = ?", restaurantID).Order("sort_order").Find(&categories)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"categories": categories,
		"meals":      meals,
		"drinks":     drinks,
	})
}

// GetSpecials returns a restaurant's active specials (public)
func GetSpecials(c *gin.Context) {
	var specials []models.Special
	config.DB.Where("restaurant_id = ? AND is_active = ?", c.Param("id"), true).Find(&specials)
	c.JSON(http.StatusOK, gin.H{"count": len(specials), "specials": specials})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "action": t.Action})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{string(models.StatusCompleted)},
		"flags":           []string{"bill_requested", "waiter_called", "table_closed"},
		"description":     "Dine-In Order Lifecycle State Machine",
	})
}
