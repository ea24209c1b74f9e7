package models

import "time"

// OrderStatus is the dine-in order lifecycle. Forward-only: pending → ready → completed.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// ItemType discriminates meal and drink order lines.
type ItemType string

const (
	ItemMeal  ItemType = "meal"
	ItemDrink ItemType = "drink"
)

// DrinkVariant is the closed set of drink servings.
type DrinkVariant string

const (
	VariantGlass  DrinkVariant = "glass"
	VariantJug    DrinkVariant = "jug"
	VariantShot   DrinkVariant = "shot"
	VariantBottle DrinkVariant = "bottle"
)

// ValidVariant reports whether v is one of the four known servings.
func ValidVariant(v DrinkVariant) bool {
	switch v {
	case VariantGlass, VariantJug, VariantShot, VariantBottle:
		return true
	}
	return false
}

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	RestaurantID uint        `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	TableNumber  string      `json:"table_number" gorm:"not null;index"`
	DinerName    string      `json:"diner_name"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'pending'"`

	// Side-request flags are orthogonal to Status; TableClosed ends the dining
	// session for every order at the table and is never unset.
	BillRequested bool `json:"bill_requested" gorm:"default:false"`
	WaiterCalled  bool `json:"waiter_called" gorm:"default:false"`
	TableClosed   bool `json:"table_closed" gorm:"default:false"`

	WaiterName string `json:"waiter_name"`
	// ServiceTimeMinutes is written once at the ready → completed transition.
	ServiceTimeMinutes *int    `json:"service_time_minutes"`
	Total              float64 `json:"total"`

	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// OrderItem snapshots name and price at submission time so menu edits and
// deletes never change a placed order. Immutable after creation.
type OrderItem struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	OrderID    uint         `json:"order_id" gorm:"not null;index"`
	ItemType   ItemType     `json:"item_type" gorm:"not null"`
	ItemID     uint         `json:"item_id" gorm:"not null"`
	Name       string       `json:"name" gorm:"not null"`
	Quantity   int          `json:"quantity" gorm:"not null"`
	UnitPrice  float64      `json:"unit_price" gorm:"not null"`
	TotalPrice float64      `json:"total_price" gorm:"not null"`
	Variant    DrinkVariant `json:"variant,omitempty"`
	SideIDs    UintList     `json:"side_ids" gorm:"type:text"`
	ExtraIDs   UintList     `json:"extra_ids" gorm:"type:text"`
	Prefs      PrefMap      `json:"preferences" gorm:"type:text"`
}

// OrderStatusHistory records every transition for the staff audit trail.
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
