package handlers

import (
	"net/http"

	"dine-in-api/config"
	"dine-in-api/middleware"
	"dine-in-api/models"

	"github.com/gin-gonic/gin"
)

// ── Menu management (staff) ──────────────────────────────────────────────────

type MealRequest struct {
	CategoryID  *uint                   `json:"category_id"`
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Price       float64                 `json:"price" binding:"required,min=0"`
	ImageURL    string                  `json:"image_url"`
	IsAvailable *bool                   `json:"is_available"`
	Sides       models.SideOptions      `json:"sides"`
	Extras      models.ExtraOptions     `json:"extras"`
	Preferences models.PreferenceGroups `json:"preferences"`
}

// CreateMeal adds a meal to the caller's restaurant menu
func CreateMeal(c *gin.Context) {
	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := models.Meal{
		RestaurantID: middleware.GetRestaurantID(c),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
		Sides:        req.Sides,
		Extras:       req.Extras,
		Preferences:  req.Preferences,
	}
	if req.IsAvailable != nil {
		meal.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Create(&meal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meal created", "meal": meal})
}

// UpdateMeal edits a meal. Placed orders are unaffected: order items carry
// their own name/price snapshots.
func UpdateMeal(c *gin.Context) {
	var meal models.Meal
	if err := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		First(&meal, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal.CategoryID = req.CategoryID
	meal.Name = req.Name
	meal.Description = req.Description
	meal.Price = req.Price
	meal.ImageURL = req.ImageURL
	meal.Sides = req.Sides
	meal.Extras = req.Extras
	meal.Preferences = req.Preferences
	if req.IsAvailable != nil {
		meal.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Save(&meal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated", "meal": meal})
}

// DeleteMeal removes a meal from the menu
func DeleteMeal(c *gin.Context) {
	result := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		Delete(&models.Meal{}, c.Param("itemId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}

type DrinkRequest struct {
	CategoryID  *uint    `json:"category_id"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
	PriceGlass  *float64 `json:"price_glass"`
	PriceJug    *float64 `json:"price_jug"`
	PriceShot   *float64 `json:"price_shot"`
	PriceBottle *float64 `json:"price_bottle"`
}

// CreateDrink adds a drink with its per-serving prices
func CreateDrink(c *gin.Context) {
	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PriceGlass == nil && req.PriceJug == nil && req.PriceShot == nil && req.PriceBottle == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A drink needs at least one serving price"})
		return
	}

	drink := models.Drink{
		RestaurantID: middleware.GetRestaurantID(c),
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
		PriceGlass:   req.PriceGlass,
		PriceJug:     req.PriceJug,
		PriceShot:    req.PriceShot,
		PriceBottle:  req.PriceBottle,
	}
	if req.IsAvailable != nil {
		drink.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Create(&drink).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create drink"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Drink created", "drink": drink})
}

// UpdateDrink edits a drink and its serving prices
func UpdateDrink(c *gin.Context) {
	var drink models.Drink
	if err := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		First(&drink, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}

	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drink.CategoryID = req.CategoryID
	drink.Name = req.Name
	drink.Description = req.Description
	drink.ImageURL = req.ImageURL
	drink.PriceGlass = req.PriceGlass
	drink.PriceJug = req.PriceJug
	drink.PriceShot = req.PriceShot
	drink.PriceBottle = req.PriceBottle
	if req.IsAvailable != nil {
		drink.IsAvailable = *req.IsAvailable
	}

	if err := config.DB.Save(&drink).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update drink"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drink updated", "drink": drink})
}

// DeleteDrink removes a drink from the menu
func DeleteDrink(c *gin.Context) {
	result := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		Delete(&models.Drink{}, c.Param("itemId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete drink"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drink deleted"})
}

type SpecialRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageURL    string  `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

// CreateSpecial adds a daily special
func CreateSpecial(c *gin.Context) {
	var req SpecialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	special := models.Special{
		RestaurantID: middleware.GetRestaurantID(c),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		IsActive:     true,
	}
	if req.IsActive != nil {
		special.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&special).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create special"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Special created", "special": special})
}

// UpdateSpecial edits a special
func UpdateSpecial(c *gin.Context) {
	var special models.Special
	if err := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		First(&special, c.Param("itemId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Special not found"})
		return
	}

	var req SpecialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	special.Name = req.Name
	special.Description = req.Description
	special.Price = req.Price
	special.ImageURL = req.ImageURL
	if req.IsActive != nil {
		special.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&special).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update special"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Special updated", "special": special})
}

// DeleteSpecial removes a special
func DeleteSpecial(c *gin.Context) {
	result := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		Delete(&models.Special{}, c.Param("itemId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete special"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Special not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Special deleted"})
}

type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory adds a menu category
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		RestaurantID: middleware.GetRestaurantID(c),
		Name:         req.Name,
		SortOrder:    req.SortOrder,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// DeleteCategory removes a category; meals and drinks keep a null category
func DeleteCategory(c *gin.Context) {
	result := config.DB.Where("restaurant_id = ?", middleware.GetRestaurantID(c)).
		Delete(&models.Category{}, c.Param("itemId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
