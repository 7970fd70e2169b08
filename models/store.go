package models

// StoreOpen is the IsOpen value that marks a store as accepting orders.
// The source data stores the flag as text, not as a boolean.
const StoreOpen = "yes"

// Store represents a pizza store location. Store rows are read-only from
// the client's perspective.
type Store struct {
	StoreID     int `gorm:"primaryKey"`
	Address     string
	City        string
	State       string
	IsOpen      string // "yes" or "no"
	ReviewScore float64
}

// TableName specifies the table name for the Store model
func (Store) TableName() string {
	return "stores"
}
