// Package cart holds the pre-submission order lines for one table/diner
// session. The aggregate is plain in-memory state; persistence is injected
// through Store so the HTTP layer decides where carts live.
package cart

import (
	"dine-in-api/models"
)

type LineType string

const (
	LineMeal  LineType = "meal"
	LineDrink LineType = "drink"
)

// Line is one cart entry. Meal lines use SideIDs/ExtraIDs/Prefs; drink lines
// use Variant. UnitPrice is a pointer so a missing price contributes 0 to the
// total instead of poisoning it.
type Line struct {
	Type      LineType            `json:"type"`
	ItemID    uint                `json:"item_id"`
	Name      string              `json:"name"`
	UnitPrice *float64            `json:"unit_price"`
	Quantity  int                 `json:"quantity"`
	SideIDs   []uint              `json:"side_ids,omitempty"`
	ExtraIDs  []uint              `json:"extra_ids,omitempty"`
	Prefs     map[string]string   `json:"preferences,omitempty"`
	Variant   models.DrinkVariant `json:"variant,omitempty"`
}

// MealLine is the input for AddMeal. UnitPrice is the meal base plus the
// selected sides and extras, before quantity.
type MealLine struct {
	ItemID    uint
	Name      string
	UnitPrice *float64
	Quantity  int
	SideIDs   []uint
	ExtraIDs  []uint
	Prefs     map[string]string
}

// DrinkLine is the input for AddDrink.
type DrinkLine struct {
	ItemID    uint
	Name      string
	Variant   models.DrinkVariant
	UnitPrice *float64
	Quantity  int
}

// Suggestion is the single-slot pairing prompt raised after a genuinely new
// line is added. Rapid successive adds overwrite it; last add wins.
type Suggestion struct {
	Open      bool   `json:"open"`
	AddedItem string `json:"added_item"`
}

// Cart is restaurant-scoped: once lines exist for restaurant R the cart must
// be cleared before it can be used against another restaurant.
type Cart struct {
	Lines        []Line     `json:"lines"`
	TableNumber  string     `json:"table_number"`
	DinerName    string     `json:"diner_name"`
	RestaurantID uint       `json:"restaurant_id"`
	Suggestion   Suggestion `json:"suggestion"`
}

func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// AddMeal merges into a structurally identical line (same item, same
// side/extra sets, deep-equal preferences) or appends a new one.
func (c *Cart) AddMeal(l MealLine, suppressSuggestion bool) {
	line := Line{
		Type:      LineMeal,
		ItemID:    l.ItemID,
		Name:      l.Name,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
		SideIDs:   l.SideIDs,
		ExtraIDs:  l.ExtraIDs,
		Prefs:     l.Prefs,
	}
	c.add(line, suppressSuggestion)
}

// AddDrink merges on (item id, variant) or appends a new line.
func (c *Cart) AddDrink(l DrinkLine, suppressSuggestion bool) {
	line := Line{
		Type:      LineDrink,
		ItemID:    l.ItemID,
		Name:      l.Name,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
		Variant:   l.Variant,
	}
	c.add(line, suppressSuggestion)
}

func (c *Cart) add(line Line, suppressSuggestion bool) {
	for i := range c.Lines {
		if sameLine(c.Lines[i], line) {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
	if !suppressSuggestion {
		c.Suggestion = Suggestion{Open: true, AddedItem: line.Name}
	}
}

// Remove deletes the line at index. Out-of-range is a caller error; treated
// as a no-op here.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

// Increment raises the line quantity by exactly 1.
func (c *Cart) Increment(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines[index].Quantity++
}

// Decrement lowers the quantity by 1, flooring at 1. Removal is a separate
// operation; a quantity never reaches 0 this way.
func (c *Cart) Decrement(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	if c.Lines[index].Quantity > 1 {
		c.Lines[index].Quantity--
	}
}

// Total sums unit price × quantity over all lines. A nil unit price counts
// as 0 so the total stays well-defined on malformed lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		if l.UnitPrice == nil {
			continue
		}
		total += *l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) SetTableNumber(table string) { c.TableNumber = table }
func (c *Cart) SetDinerName(name string)    { c.DinerName = name }
func (c *Cart) SetRestaurant(id uint)       { c.RestaurantID = id }

// ValidateRestaurant reports whether the cart may be used against the given
// restaurant: either no restaurant is bound yet, or it is the same one.
// Cross-restaurant reuse requires an explicit Clear first.
func (c *Cart) ValidateRestaurant(candidateID uint) bool {
	return c.RestaurantID == 0 || c.RestaurantID == candidateID
}

// Clear resets the lines and all scoping fields.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.TableNumber = ""
	c.DinerName = ""
	c.RestaurantID = 0
	c.Suggestion = Suggestion{}
}

// ClearItems resets only the lines, keeping table/diner/restaurant so the
// diner can keep ordering after placing an order.
func (c *Cart) ClearItems() {
	c.Lines = []Line{}
	c.Suggestion = Suggestion{}
}

// DismissSuggestion closes the pairing prompt.
func (c *Cart) DismissSuggestion() {
	c.Suggestion = Suggestion{}
}

// Clone returns a deep copy through the JSON codec, detached from the
// original's slices and maps.
func (c *Cart) Clone() *Cart {
	data, err := Encode(c)
	if err != nil {
		return New()
	}
	clone, err := Decode(data)
	if err != nil {
		return New()
	}
	return clone
}

// sameLine implements line identity: same type and item id, and for meals
// identical side/extra sets (order-independent) plus deep-equal preferences;
// for drinks the same serving variant.
func sameLine(a, b Line) bool {
	if a.Type != b.Type || a.ItemID != b.ItemID {
		return false
	}
	if a.Type == LineDrink {
		return a.Variant == b.Variant
	}
	return sameIDSet(a.SideIDs, b.SideIDs) &&
		sameIDSet(a.ExtraIDs, b.ExtraIDs) &&
		samePrefs(a.Prefs, b.Prefs)
}

func sameIDSet(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uint]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}

func samePrefs(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
