package config

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pizzastore/models"
	"pizzastore/pkg/logger"
)

// SeedManager ensures the bootstrap manager account exists so the user
// admin and menu surfaces are reachable on a fresh database. The default
// password must be rotated through the profile endpoint.
func SeedManager(db *gorm.DB) error {
	login := BootstrapManager()

	var count int64
	if err := db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := models.User{
		Login:    login,
		Password: string(hash),
		Role:     models.RoleManager,
	}
	if err := db.Create(&manager).Error; err != nil {
		return err
	}
	logger.Log.Warn("seeded bootstrap manager with default password",
		zap.String("login", login))
	return nil
}

// SeedStores loads an initial store directory when the table is empty.
// Stores are read-only at runtime, so seeding is the only write path.
func SeedStores(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stores := []models.Store{
		{StoreID: 1, Address: "1156 University Ave", City: "Riverside", State: "CA", IsOpen: true, ReviewScore: 4.2},
		{StoreID: 2, Address: "402 Canyon Crest Dr", City: "Riverside", State: "CA", IsOpen: true, ReviewScore: 3.9},
		{StoreID: 3, Address: "88 Mission Inn Ave", City: "Riverside", State: "CA", IsOpen: false, ReviewScore: 4.7},
	}
	return db.Create(&stores).Error
}
