package models

// Menu item categories. Items are grouped into exactly these three types.
const (
	CategoryEntree = "entree"
	CategorySides  = "sides"
	CategoryDrinks = "drinks"
)

// Categories lists the menu categories in display order.
var Categories = []string{CategoryEntree, CategorySides, CategoryDrinks}

// Item represents a menu item. The item name doubles as the primary key,
// so renaming an item replaces the row.
type Item struct {
	ItemName    string `gorm:"primaryKey"`
	Ingredients string
	TypeOfItem  string  `gorm:"not null"` // "entree", "sides" or "drinks"
	Price       float64 `gorm:"not null"`
	Description string
}

// TableName specifies the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// IsValidCategory reports whether category is one of the three menu categories.
func IsValidCategory(category string) bool {
	return category == CategoryEntree || category == CategorySides || category == CategoryDrinks
}
