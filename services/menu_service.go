package services

import (
	"gorm.io/gorm"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

// MenuService implements catalog browsing and the manager-only menu edits.
// Every listing re-issues a fresh query; nothing is filtered in memory.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService returns a service bound to an open database handle.
func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// ItemsByCategory lists the items whose type contains the category as a
// substring. A type value containing one of the category words matches
// even when it is not an exact category name.
func (s *MenuService) ItemsByCategory(category string) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Where("type_of_item LIKE ?", "%"+category+"%").Find(&items).Error
	return items, err
}

// ItemsByCategoryUnderPrice lists items of a category at or below a
// maximum price.
func (s *MenuService) ItemsByCategoryUnderPrice(category string, maxPrice float64) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Where("type_of_item LIKE ? AND price <= ?", "%"+category+"%", maxPrice).
		Find(&items).Error
	return items, err
}

// ItemsByCategorySorted lists items of a category ordered by price.
func (s *MenuService) ItemsByCategorySorted(category string, ascending bool) ([]models.Item, error) {
	order := "price DESC"
	if ascending {
		order = "price ASC"
	}
	var items []models.Item
	err := s.db.Where("type_of_item LIKE ?", "%"+category+"%").
		Order(order).Find(&items).Error
	return items, err
}

// GetItem returns the item row for an exact name.
func (s *MenuService) GetItem(name string) (*models.Item, error) {
	var item models.Item
	if err := s.db.Where("item_name = ?", name).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// AddItem inserts a new menu item (manager only). The name is checked for
// uniqueness with a preliminary lookup and the category must be one of the
// three accepted values.
func (s *MenuService) AddItem(manager string, item models.Item) error {
	if err := requireManager(s.db, manager); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Item{}).Where("item_name = ?", item.ItemName).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrItemExists
	}
	if !models.IsValidCategory(item.TypeOfItem) {
		return ErrInvalidCategory
	}
	return s.db.Create(&item).Error
}

// RenameItem gives an existing item a new name (manager only). The rename
// is an insert of a copy under the new name followed by a delete of the
// old row, so order line items keep referring to the old name.
func (s *MenuService) RenameItem(manager, oldName, newName string) error {
	if err := requireManager(s.db, manager); err != nil {
		return err
	}

	item, err := s.GetItem(oldName)
	if err != nil {
		return err
	}

	renamed := models.Item{
		ItemName:    newName,
		Ingredients: item.Ingredients,
		TypeOfItem:  item.TypeOfItem,
		Price:       item.Price,
		Description: item.Description,
	}
	if err := s.db.Create(&renamed).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Item{}, "item_name = ?", oldName).Error
}

// UpdateIngredients changes an item's ingredients (manager only).
func (s *MenuService) UpdateIngredients(manager, name, ingredients string) error {
	return s.updateItemField(manager, name, "ingredients", ingredients)
}

// UpdateCategory changes an item's type (manager only). The update path
// does not validate the category; only AddItem does.
func (s *MenuService) UpdateCategory(manager, name, category string) error {
	return s.updateItemField(manager, name, "type_of_item", category)
}

// UpdatePrice changes an item's price (manager only).
func (s *MenuService) UpdatePrice(manager, name string, price float64) error {
	return s.updateItemField(manager, name, "price", price)
}

// UpdateDescription changes an item's description (manager only).
func (s *MenuService) UpdateDescription(manager, name, description string) error {
	return s.updateItemField(manager, name, "description", description)
}

func (s *MenuService) updateItemField(manager, name, column string, value interface{}) error {
	if err := requireManager(s.db, manager); err != nil {
		return err
	}
	return s.db.Model(&models.Item{}).Where("item_name = ?", name).
		Update(column, value).Error
}
