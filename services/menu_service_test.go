package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

func setupMenuTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.OrderItem{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	items := []models.Item{
		{ItemName: "Pepperoni Pizza", Ingredients: "dough,cheese,pepperoni", TypeOfItem: "entree", Price: 12.50, Description: "classic"},
		{ItemName: "Veggie Pizza", Ingredients: "dough,cheese,peppers", TypeOfItem: "entree", Price: 10.00, Description: "meatless"},
		{ItemName: "Garlic Bread", Ingredients: "bread,garlic", TypeOfItem: "sides", Price: 4.00, Description: "warm"},
		{ItemName: "Cola", Ingredients: "syrup,water", TypeOfItem: "drinks", Price: 2.00, Description: "cold"},
	}
	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("Failed to seed item %s: %v", item.ItemName, err)
		}
	}

	return db
}

func TestItemsByCategory(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)

	entrees, err := svc.ItemsByCategory(models.CategoryEntree)
	assert.NoError(t, err)
	assert.Len(t, entrees, 2)

	drinks, err := svc.ItemsByCategory(models.CategoryDrinks)
	assert.NoError(t, err)
	assert.Len(t, drinks, 1)
	assert.Equal(t, "Cola", drinks[0].ItemName)
}

func TestItemsByCategorySubstringMatch(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)

	// The category match is a substring match, so a type merely containing
	// the word is picked up as well
	odd := models.Item{ItemName: "Mystery Plate", TypeOfItem: "entree special", Price: 1.00}
	assert.NoError(t, db.Create(&odd).Error)

	entrees, err := svc.ItemsByCategory(models.CategoryEntree)
	assert.NoError(t, err)
	assert.Len(t, entrees, 3)
}

func TestItemsByCategoryUnderPrice(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)

	cheap, err := svc.ItemsByCategoryUnderPrice(models.CategoryEntree, 10.00)
	assert.NoError(t, err)
	assert.Len(t, cheap, 1)
	assert.Equal(t, "Veggie Pizza", cheap[0].ItemName)
}

func TestItemsByCategorySorted(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)

	desc, err := svc.ItemsByCategorySorted(models.CategoryEntree, false)
	assert.NoError(t, err)
	assert.Equal(t, "Pepperoni Pizza", desc[0].ItemName, "Descending sort should put the dearest item first")

	asc, err := svc.ItemsByCategorySorted(models.CategoryEntree, true)
	assert.NoError(t, err)
	assert.Equal(t, "Veggie Pizza", asc[0].ItemName, "Ascending sort should put the cheapest item first")
}

func TestGetItem(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)

	item, err := svc.GetItem("Cola")
	assert.NoError(t, err)
	assert.Equal(t, 2.00, item.Price)

	_, err = svc.GetItem("Nothing Burger")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestAddItem(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)
	seedUser(t, db, "boss", "pw", models.RoleManager)
	seedUser(t, db, "alice", "pw", models.RoleCustomer)

	newItem := models.Item{ItemName: "Lemonade", Ingredients: "lemon,sugar", TypeOfItem: "drinks", Price: 2.50, Description: "fresh"}

	err := svc.AddItem("alice", newItem)
	assert.ErrorIs(t, err, ErrAccessDenied, "Only managers can add items")

	err = svc.AddItem("boss", models.Item{ItemName: "Cola", TypeOfItem: "drinks", Price: 2.00})
	assert.ErrorIs(t, err, ErrItemExists)

	err = svc.AddItem("boss", models.Item{ItemName: "Tiramisu", TypeOfItem: "dessert", Price: 6.00})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.NoError(t, svc.AddItem("boss", newItem))

	var item models.Item
	assert.NoError(t, db.Where("item_name = ?", "Lemonade").First(&item).Error)
	assert.Equal(t, 2.50, item.Price)
}

func TestRenameItem(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)
	seedUser(t, db, "boss", "pw", models.RoleManager)

	// An order line pointing at the old name is left behind by the rename
	line := models.OrderItem{OrderID: 1, ItemName: "Cola", Quantity: 2}
	assert.NoError(t, db.Create(&line).Error)

	err := svc.RenameItem("boss", "Nothing Burger", "Something Burger")
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.NoError(t, svc.RenameItem("boss", "Cola", "Cherry Cola"))

	var count int64
	db.Model(&models.Item{}).Where("item_name = ?", "Cola").Count(&count)
	assert.Equal(t, int64(0), count, "The old row must be deleted")

	var item models.Item
	assert.NoError(t, db.Where("item_name = ?", "Cherry Cola").First(&item).Error)
	assert.Equal(t, 2.00, item.Price, "The renamed item keeps its fields")
	assert.Equal(t, "drinks", item.TypeOfItem)

	db.Model(&models.OrderItem{}).Where("item_name = ?", "Cola").Count(&count)
	assert.Equal(t, int64(1), count, "Order lines keep the old name; the rename does not rewrite them")
}

func TestUpdateItemFields(t *testing.T) {
	db := setupMenuTestDB(t)
	svc := NewMenuService(db)
	seedUser(t, db, "boss", "pw", models.RoleManager)
	seedUser(t, db, "alice", "pw", models.RoleCustomer)

	err := svc.UpdatePrice("alice", "Cola", 3.00)
	assert.ErrorIs(t, err, ErrAccessDenied)

	assert.NoError(t, svc.UpdateIngredients("boss", "Cola", "syrup,water,ice"))
	assert.NoError(t, svc.UpdateCategory("boss", "Cola", "sides"))
	assert.NoError(t, svc.UpdatePrice("boss", "Cola", 3.00))
	assert.NoError(t, svc.UpdateDescription("boss", "Cola", "very cold"))

	var item models.Item
	assert.NoError(t, db.Where("item_name = ?", "Cola").First(&item).Error)
	assert.Equal(t, "syrup,water,ice", item.Ingredients)
	assert.Equal(t, "sides", item.TypeOfItem)
	assert.Equal(t, 3.00, item.Price)
	assert.Equal(t, "very cold", item.Description)
}
