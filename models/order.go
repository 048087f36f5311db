package models

import "time"

// OrderStatus represents the delivery state of a food order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusDelivered OrderStatus = "Delivered"
)

// FoodOrder is one placed order. The primary key comes from the store's
// autoincrement sequence, so IDs stay unique under concurrent placement.
// Orders are never deleted.
type FoodOrder struct {
	OrderID        int         `json:"order_id" gorm:"primaryKey"`
	Login          string      `json:"login" gorm:"not null;index"`
	StoreID        int         `json:"store_id" gorm:"not null"`
	TotalPrice     float64     `json:"total_price"`
	OrderTimestamp time.Time   `json:"order_timestamp"`
	OrderStatus    OrderStatus `json:"order_status" gorm:"not null;default:'Pending'"`
	Lines          []OrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderLine is one (item, quantity) pair belonging to an order.
type OrderLine struct {
	OrderID  int    `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ItemName string `json:"item_name" gorm:"primaryKey"`
	Quantity int    `json:"quantity" gorm:"not null"`
}
