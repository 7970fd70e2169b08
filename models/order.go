package models

import (
	"strings"
	"time"
)

// Order status values. An order starts incomplete and is flipped to
// complete by a driver or manager.
const (
	StatusIncomplete = "incomplete"
	StatusComplete   = "complete"
)

// FoodOrder represents an order header. Order IDs are assigned by the
// application as MAX(order_id)+1 at insertion time, not by a sequence.
type FoodOrder struct {
	OrderID        int    `gorm:"primaryKey"`
	Login          string `gorm:"not null;index"`
	User           User   `gorm:"foreignKey:Login;references:Login"`
	StoreID        int    `gorm:"not null"`
	TotalPrice     float64
	OrderTimestamp time.Time
	OrderStatus    string      `gorm:"not null;default:'incomplete'"` // "incomplete" or "complete"
	Items          []OrderItem `gorm:"foreignKey:OrderID;references:OrderID"`
}

// TableName specifies the table name for the FoodOrder model
func (FoodOrder) TableName() string {
	return "food_orders"
}

// OrderItem represents one item/quantity line within an order.
type OrderItem struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  int    `gorm:"not null;index"`
	ItemName string `gorm:"not null"`
	Quantity int    `gorm:"not null"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// IsValidOrderStatus reports whether status is "incomplete" or "complete",
// compared case-insensitively.
func IsValidOrderStatus(status string) bool {
	s := strings.ToLower(strings.TrimSpace(status))
	return s == StatusIncomplete || s == StatusComplete
}
