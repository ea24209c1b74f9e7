package cart

import (
	"testing"

	"dine-in-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestAddMealMergesStructurallyIdenticalLines(t *testing.T) {
	c := New()
	line := MealLine{
		ItemID:    1,
		Name:      "Ribeye",
		UnitPrice: price(45),
		Quantity:  1,
		SideIDs:   []uint{2, 3},
		ExtraIDs:  []uint{7},
		Prefs:     map[string]string{"doneness": "Medium Rare"},
	}
	c.AddMeal(line, true)

	// Same sides in a different order, same prefs: must merge
	merged := line
	merged.SideIDs = []uint{3, 2}
	c.AddMeal(merged, true)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddMealAppendsOnAnyDifference(t *testing.T) {
	base := MealLine{
		ItemID:    1,
		Name:      "Ribeye",
		UnitPrice: price(45),
		Quantity:  1,
		SideIDs:   []uint{2},
		Prefs:     map[string]string{"doneness": "Medium"},
	}

	cases := []struct {
		name   string
		mutate func(*MealLine)
	}{
		{"different sides", func(l *MealLine) { l.SideIDs = []uint{9} }},
		{"different extras", func(l *MealLine) { l.ExtraIDs = []uint{4} }},
		{"different prefs", func(l *MealLine) { l.Prefs = map[string]string{"doneness": "Well Done"} }},
		{"different item", func(l *MealLine) { l.ItemID = 99 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.AddMeal(base, true)
			other := base
			tc.mutate(&other)
			c.AddMeal(other, true)
			assert.Len(t, c.Lines, 2)
		})
	}
}

func TestAddDrinkMergesOnItemAndVariant(t *testing.T) {
	c := New()
	glass := DrinkLine{ItemID: 1, Name: "House Red", Variant: models.VariantGlass, UnitPrice: price(30), Quantity: 1}
	c.AddDrink(glass, true)
	c.AddDrink(glass, true)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 60.0, c.Total())

	// Same drink, different serving: a new line
	bottle := glass
	bottle.Variant = models.VariantBottle
	bottle.UnitPrice = price(120)
	c.AddDrink(bottle, true)
	assert.Len(t, c.Lines, 2)
}

func TestTotalTreatsMissingPriceAsZero(t *testing.T) {
	c := New()
	c.AddMeal(MealLine{ItemID: 1, Name: "Burger", UnitPrice: price(80), Quantity: 2}, true)
	c.AddMeal(MealLine{ItemID: 2, Name: "Mystery", UnitPrice: nil, Quantity: 3}, true)

	assert.Equal(t, 160.0, c.Total())
	assert.Equal(t, 5, c.ItemCount())
}

func TestDecrementFloorsAtOne(t *testing.T) {
	c := New()
	c.AddMeal(MealLine{ItemID: 1, Name: "Burger", UnitPrice: price(80), Quantity: 1}, true)

	c.Decrement(0)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c.Increment(0)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	c.Decrement(0)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestRemoveLine(t *testing.T) {
	c := New()
	c.AddMeal(MealLine{ItemID: 1, Name: "Burger", UnitPrice: price(80), Quantity: 1}, true)
	c.AddMeal(MealLine{ItemID: 2, Name: "Wrap", UnitPrice: price(65), Quantity: 1}, true)

	c.Remove(0)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "Wrap", c.Lines[0].Name)

	// Out of range is a no-op
	c.Remove(5)
	assert.Len(t, c.Lines, 1)
}

func TestValidateRestaurantScoping(t *testing.T) {
	c := New()
	assert.True(t, c.ValidateRestaurant(7), "unbound cart accepts any restaurant")

	c.SetRestaurant(7)
	assert.True(t, c.ValidateRestaurant(7))
	assert.False(t, c.ValidateRestaurant(8), "cross-restaurant reuse requires a clear")

	c.Clear()
	assert.True(t, c.ValidateRestaurant(8))
}

func TestClearItemsPreservesIdentity(t *testing.T) {
	c := New()
	c.SetRestaurant(7)
	c.SetTableNumber("12")
	c.SetDinerName("Alex")
	c.AddMeal(MealLine{ItemID: 1, Name: "Burger", UnitPrice: price(80), Quantity: 1}, true)

	c.ClearItems()
	assert.Empty(t, c.Lines)
	assert.Equal(t, "12", c.TableNumber)
	assert.Equal(t, "Alex", c.DinerName)
	assert.Equal(t, uint(7), c.RestaurantID)

	c.Clear()
	assert.Equal(t, "", c.TableNumber)
	assert.Equal(t, "", c.DinerName)
	assert.Equal(t, uint(0), c.RestaurantID)
}

func TestSuggestionSingleSlot(t *testing.T) {
	c := New()
	c.AddMeal(MealLine{ItemID: 1, Name: "Burger", UnitPrice: price(80), Quantity: 1}, false)
	assert.True(t, c.Suggestion.Open)
	assert.Equal(t, "Burger", c.Suggestion.AddedItem)

	// Last add wins the slot
	c.AddMeal(MealLine{ItemID: 2, Name: "Wrap", UnitPrice: price(65), Quantity: 1}, false)
	assert.Equal(t, "Wrap", c.Suggestion.AddedItem)

	// Merging into an existing line raises no suggestion
	c.DismissSuggestion()
	c.AddMeal(MealLine{ItemID: 2, Name: "Wrap", UnitPrice: price(65), Quantity: 1}, false)
	assert.False(t, c.Suggestion.Open)

	// Suppressed adds never touch the slot
	c.AddMeal(MealLine{ItemID: 3, Name: "Salad", UnitPrice: price(50), Quantity: 1}, true)
	assert.False(t, c.Suggestion.Open)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New()
	c.SetRestaurant(7)
	c.SetTableNumber("12")
	c.AddDrink(DrinkLine{ItemID: 1, Name: "House Red", Variant: models.VariantGlass, UnitPrice: price(30), Quantity: 2}, true)

	data, err := Encode(c)
	require.NoError(t, err)

	restored, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, c.TableNumber, restored.TableNumber)
	assert.Equal(t, c.RestaurantID, restored.RestaurantID)
	require.Len(t, restored.Lines, 1)
	assert.Equal(t, 60.0, restored.Total())
}
