package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pizzastore/models"
	"pizzastore/pkg/logger"
)

var DB *gorm.DB

// JWTSecret signs session tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "pizza_store_super_secret_2026"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath is the SQLite database file, the "database name" startup
// parameter of the original program.
func DBPath() string {
	return getEnv("PIZZASTORE_DB", "pizzastore.db")
}

// Port is the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

// BootstrapManager is the login seeded with the manager role on first
// start, the "user" startup parameter of the original program.
func BootstrapManager() string {
	return getEnv("BOOTSTRAP_MANAGER", "admin")
}

// DriverCanDeliver extends the setOrderDelivered capability to drivers.
// Off by default: the observed behavior restricted delivery updates to
// managers.
func DriverCanDeliver() bool {
	return getEnv("DRIVER_CAN_DELIVER", "false") == "true"
}

// InitDB opens the database and migrates the schema. A failed initial
// connection is the one fatal error in the system.
func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(DBPath()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		logger.Log.Fatal("failed to migrate database", zap.Error(err))
	}

	logger.Log.Info("database connected and migrated", zap.String("path", DBPath()))
}

// Migrate applies the schema. Split out so tests can run it against
// their own in-memory databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Store{},
		&models.FoodOrder{},
		&models.OrderLine{},
	)
}
