package models

import "time"

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	LogoURL     string     `json:"logo_url"`
	IsOpen      bool       `json:"is_open" gorm:"default:true"`
	Categories  []Category `json:"categories,omitempty" gorm:"foreignKey:RestaurantID"`
	Meals       []Meal     `json:"meals,omitempty" gorm:"foreignKey:RestaurantID"`
	Drinks      []Drink    `json:"drinks,omitempty" gorm:"foreignKey:RestaurantID"`
	Specials    []Special  `json:"specials,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	SortOrder    int       `json:"sort_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Meal struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	RestaurantID uint             `json:"restaurant_id" gorm:"not null;index"`
	CategoryID   *uint            `json:"category_id"`
	Name         string           `json:"name" gorm:"not null"`
	Description  string           `json:"description"`
	Price        float64          `json:"price" gorm:"not null"`
	ImageURL     string           `json:"image_url"`
	IsAvailable  bool             `json:"is_available" gorm:"default:true"`
	Sides        SideOptions      `json:"sides" gorm:"type:text"`
	Extras       ExtraOptions     `json:"extras" gorm:"type:text"`
	Preferences  PreferenceGroups `json:"preferences" gorm:"type:text"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Drink pricing is per serving variant; a nil price means the restaurant does
// not sell that serving.
type Drink struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	CategoryID   *uint     `json:"category_id"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	PriceGlass   *float64  `json:"price_glass"`
	PriceJug     *float64  `json:"price_jug"`
	PriceShot    *float64  `json:"price_shot"`
	PriceBottle  *float64  `json:"price_bottle"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VariantPrice returns the price for a serving variant, or nil when the drink
// is not sold that way.
func (d *Drink) VariantPrice(v DrinkVariant) *float64 {
	switch v {
	case VariantGlass:
		return d.PriceGlass
	case VariantJug:
		return d.PriceJug
	case VariantShot:
		return d.PriceShot
	case VariantBottle:
		return d.PriceBottle
	}
	return nil
}

type Special struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
