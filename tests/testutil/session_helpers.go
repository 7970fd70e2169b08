package testutil

import (
	"bytes"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/controllers"
	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

// RunScript feeds a newline-separated script of menu choices and answers to a
// console session and returns everything the session printed.
func RunScript(t *testing.T, db *gorm.DB, script string) string {
	t.Helper()

	var out bytes.Buffer
	session := controllers.NewSession(strings.NewReader(script), &out, db)
	session.Run()
	return out.String()
}

// SeedUser inserts a user row directly, bypassing the account service.
func SeedUser(t *testing.T, db *gorm.DB, login, password, role string) {
	t.Helper()

	user := models.User{Login: login, Password: password, Role: role, PhoneNum: "555-0100"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %q: %v", login, err)
	}
}

// SeedStore inserts a store row with the given open status.
func SeedStore(t *testing.T, db *gorm.DB, storeID int, isOpen string) {
	t.Helper()

	store := models.Store{
		StoreID: storeID,
		Address: "123 Main St", City: "Riverside", State: "CA",
		IsOpen: isOpen, ReviewScore: 4.2,
	}
	if err := db.Create(&store).Error; err != nil {
		t.Fatalf("failed to seed store %d: %v", storeID, err)
	}
}

// SeedItem inserts a menu item row.
func SeedItem(t *testing.T, db *gorm.DB, name, category string, price float64) {
	t.Helper()

	item := models.Item{
		ItemName: name, TypeOfItem: category, Price: price,
		Ingredients: "assorted", Description: "seeded for testing",
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed item %q: %v", name, err)
	}
}
