package services

import (
	"gorm.io/gorm"

	"pizzastore/models"
)

// StoreService lists physical stores. The directory is read-only; rows
// come from seeding at startup.
type StoreService struct {
	db *gorm.DB
}

func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

func (s *StoreService) ListStores() ([]models.Store, error) {
	var stores []models.Store
	if err := s.db.Order("store_id").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
