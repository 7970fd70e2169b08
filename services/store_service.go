package services

import (
	"gorm.io/gorm"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
)

// StoreService is a read-only projection over the store table.
type StoreService struct {
	db *gorm.DB
}

// NewStoreService returns a service bound to an open database handle.
func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// ListStores returns every store row, with no filtering or pagination.
func (s *StoreService) ListStores() ([]models.Store, error) {
	var stores []models.Store
	err := s.db.Find(&stores).Error
	return stores, err
}
