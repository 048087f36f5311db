package models

import "time"

// Item is one entry in the menu catalog, shared by every store.
type Item struct {
	ItemName    string    `json:"item_name" gorm:"primaryKey"`
	Ingredients string    `json:"ingredients"`
	TypeOfItem  string    `json:"type_of_item"`
	Price       float64   `json:"price" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
