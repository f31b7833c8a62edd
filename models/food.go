package models

import "time"

type FoodItem struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url"`
	Category    string        `json:"category"`
	InStock     bool          `gorm:"default:true" json:"in_stock"`
	Variants    []FoodVariant `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE" json:"variants"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// FoodVariant is a purchasable size/quantity option of an item, each with its
// own price. An item with no variants cannot be ordered.
type FoodVariant struct {
	ID         string  `gorm:"primaryKey" json:"id"`
	FoodItemID string  `gorm:"index;not null" json:"food_item_id"`
	Label      string  `gorm:"not null" json:"label"`
	Price      float64 `gorm:"not null" json:"price"`
}

// Orderable reports whether the item can be added to a cart at all.
func (f *FoodItem) Orderable() bool {
	return len(f.Variants) > 0
}
