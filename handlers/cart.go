package handlers

import (
	"net/http"
	"strconv"

	"dine-in-api/cart"
	"dine-in-api/config"
	"dine-in-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Carts holds session carts between requests. Swappable for tests.
var Carts cart.Store = cart.NewMemoryStore()

// SessionHeader carries the diner's cart session id. A missing header starts
// a fresh session; the id is echoed back so the client can persist it.
const SessionHeader = "X-Session-ID"

func sessionID(c *gin.Context) string {
	if sid := c.GetHeader(SessionHeader); sid != "" {
		return sid
	}
	return uuid.NewString()
}

func respondCart(c *gin.Context, status int, sid string, crt *cart.Cart) {
	c.JSON(status, gin.H{
		"session_id": sid,
		"cart":       crt,
		"total":      crt.Total(),
		"item_count": crt.ItemCount(),
	})
}

type AddMealRequest struct {
	MealID             uint              `json:"meal_id" binding:"required"`
	Quantity           int               `json:"quantity" binding:"required,min=1"`
	SideIDs            []uint            `json:"side_ids"`
	ExtraIDs           []uint            `json:"extra_ids"`
	Preferences        map[string]string `json:"preferences"`
	SuppressSuggestion bool              `json:"suppress_suggestion"`
}

// AddMealToCart prices the meal with its selected sides and extras and merges
// it into the session cart
func AddMealToCart(c *gin.Context) {
	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var meal models.Meal
	if err := config.DB.First(&meal, req.MealID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if !meal.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal '" + meal.Name + "' is not available"})
		return
	}

	unitPrice := meal.Price
	for _, id := range req.SideIDs {
		side, ok := findSide(meal.Sides, id)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown side for this meal"})
			return
		}
		unitPrice += side.Price
	}
	for _, id := range req.ExtraIDs {
		extra, ok := findExtra(meal.Extras, id)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown extra for this meal"})
			return
		}
		unitPrice += extra.Price
	}
	for key, value := range req.Preferences {
		if !validPreference(meal.Preferences, key, value) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown preference '" + key + "' for this meal"})
			return
		}
	}

	sid := sessionID(c)
	var conflict bool
	var snapshot *cart.Cart
	Carts.Update(sid, func(crt *cart.Cart) {
		if !crt.ValidateRestaurant(meal.RestaurantID) {
			conflict = true
			return
		}
		crt.SetRestaurant(meal.RestaurantID)
		crt.AddMeal(cart.MealLine{
			ItemID:    meal.ID,
			Name:      meal.Name,
			UnitPrice: &unitPrice,
			Quantity:  req.Quantity,
			SideIDs:   req.SideIDs,
			ExtraIDs:  req.ExtraIDs,
			Prefs:     req.Preferences,
		}, req.SuppressSuggestion)
		snapshot = crt.Clone()
	})
	if conflict {
		c.JSON(http.StatusConflict, gin.H{"error": "Cart holds items for another restaurant. Clear it before ordering here."})
		return
	}
	respondCart(c, http.StatusOK, sid, snapshot)
}

type AddDrinkRequest struct {
	DrinkID            uint                `json:"drink_id" binding:"required"`
	Variant            models.DrinkVariant `json:"variant" binding:"required"`
	Quantity           int                 `json:"quantity" binding:"required,min=1"`
	SuppressSuggestion bool                `json:"suppress_suggestion"`
}

// AddDrinkToCart merges a drink serving into the session cart, keyed on
// (drink, variant)
func AddDrinkToCart(c *gin.Context) {
	var req AddDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidVariant(req.Variant) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant. Must be: glass, jug, shot or bottle"})
		return
	}

	var drink models.Drink
	if err := config.DB.First(&drink, req.DrinkID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}
	if !drink.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Drink '" + drink.Name + "' is not available"})
		return
	}
	price := drink.VariantPrice(req.Variant)
	if price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Drink '" + drink.Name + "' is not sold by the " + string(req.Variant)})
		return
	}

	sid := sessionID(c)
	var conflict bool
	var snapshot *cart.Cart
	Carts.Update(sid, func(crt *cart.Cart) {
		if !crt.ValidateRestaurant(drink.RestaurantID) {
			conflict = true
			return
		}
		crt.SetRestaurant(drink.RestaurantID)
		crt.AddDrink(cart.DrinkLine{
			ItemID:    drink.ID,
			Name:      drink.Name,
			Variant:   req.Variant,
			UnitPrice: price,
			Quantity:  req.Quantity,
		}, req.SuppressSuggestion)
		snapshot = crt.Clone()
	})
	if conflict {
		c.JSON(http.StatusConflict, gin.H{"error": "Cart holds items for another restaurant. Clear it before ordering here."})
		return
	}
	respondCart(c, http.StatusOK, sid, snapshot)
}

// GetCart returns the session cart with its derived totals
func GetCart(c *gin.Context) {
	sid := sessionID(c)
	crt, ok := Carts.Get(sid)
	if !ok {
		crt = cart.New()
	}
	respondCart(c, http.StatusOK, sid, crt)
}

// ClearCart performs a full reset: lines and table/diner/restaurant scoping
func ClearCart(c *gin.Context) {
	sid := sessionID(c)
	var snapshot *cart.Cart
	Carts.Update(sid, func(crt *cart.Cart) {
		crt.Clear()
		snapshot = crt.Clone()
	})
	respondCart(c, http.StatusOK, sid, snapshot)
}

// mutateCartLine applies op to one line under the store lock, reporting
// whether the index was in range.
func mutateCartLine(c *gin.Context, op func(*cart.Cart, int)) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return
	}

	sid := sessionID(c)
	var ok bool
	var snapshot *cart.Cart
	Carts.Update(sid, func(crt *cart.Cart) {
		if index >= len(crt.Lines) {
			return
		}
		op(crt, index)
		ok = true
		snapshot = crt.Clone()
	})
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line index"})
		return
	}
	respondCart(c, http.StatusOK, sid, snapshot)
}

// RemoveCartLine deletes one line from the session cart
func RemoveCartLine(c *gin.Context) {
	mutateCartLine(c, func(crt *cart.Cart, index int) { crt.Remove(index) })
}

// IncrementCartLine raises a line's quantity by 1
func IncrementCartLine(c *gin.Context) {
	mutateCartLine(c, func(crt *cart.Cart, index int) { crt.Increment(index) })
}

// DecrementCartLine lowers a line's quantity by 1, never below 1
func DecrementCartLine(c *gin.Context) {
	mutateCartLine(c, func(crt *cart.Cart, index int) { crt.Decrement(index) })
}

type CartIdentityRequest struct {
	TableNumber string `json:"table_number" binding:"omitempty,numeric"`
	DinerName   string `json:"diner_name"`
}

// SetCartIdentity records the diner's table number and display name
func SetCartIdentity(c *gin.Context) {
	var req CartIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sid := sessionID(c)
	var snapshot *cart.Cart
	Carts.Update(sid, func(crt *cart.Cart) {
		if req.TableNumber != "" {
			crt.SetTableNumber(req.TableNumber)
		}
		if req.DinerName != "" {
			crt.SetDinerName(req.DinerName)
		}
		snapshot = crt.Clone()
	})
	respondCart(c, http.StatusOK, sid, snapshot)
}

// DismissSuggestion closes the pairing prompt for the session
func DismissSuggestion(c *gin.Context) {
	sid := sessionID(c)
	var snapshot *cart.Cart
	Carts.Update(sid, func(crt *cart.Cart) {
		crt.DismissSuggestion()
		snapshot = crt.Clone()
	})
	respondCart(c, http.StatusOK, sid, snapshot)
}

func findSide(sides models.SideOptions, id uint) (models.SideOption, bool) {
	for _, s := range sides {
		if s.ID == id {
			return s, true
		}
	}
	return models.SideOption{}, false
}

func findExtra(extras models.ExtraOptions, id uint) (models.ExtraOption, bool) {
	for _, e := range extras {
		if e.ID == id {
			return e, true
		}
	}
	return models.ExtraOption{}, false
}

func validPreference(groups models.PreferenceGroups, key, value string) bool {
	for _, g := range groups {
		if g.Key != key {
			continue
		}
		for _, opt := range g.Options {
			if opt == value {
				return true
			}
		}
	}
	return false
}
