package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pizzastore/authz"
	"pizzastore/config"
	"pizzastore/models"
)

// newTestDB opens a fresh in-memory database. The pool is pinned to a
// single connection so every session sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

type fixture struct {
	db     *gorm.DB
	policy *authz.Policy
	users  *UserService
	menu   *MenuService
	orders *OrderService
	stores *StoreService
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithPolicy(t, authz.Config{})
}

func newFixtureWithPolicy(t *testing.T, cfg authz.Config) *fixture {
	t.Helper()
	db := newTestDB(t)
	policy := authz.NewPolicy(db, cfg)
	return &fixture{
		db:     db,
		policy: policy,
		users:  NewUserService(db, policy),
		menu:   NewMenuService(db, policy),
		orders: NewOrderService(db, policy),
		stores: NewStoreService(db),
	}
}

func (f *fixture) register(t *testing.T, login string, role models.Role) {
	t.Helper()
	_, err := f.users.Register(RegisterRequest{
		Login:    login,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
}

func (f *fixture) seedStore(t *testing.T, id int) {
	t.Helper()
	require.NoError(t, f.db.Create(&models.Store{
		StoreID: id,
		Address: "1156 University Ave",
		City:    "Riverside",
		State:   "CA",
		IsOpen:  true,
	}).Error)
}

func (f *fixture) addItem(t *testing.T, manager, name, price string) {
	t.Helper()
	_, err := f.menu.AddItem(manager, AddItemRequest{
		ItemName:    name,
		Ingredients: "dough, tomato, mozzarella",
		TypeOfItem:  "pizza",
		Price:       price,
		Description: "house favorite",
	})
	require.NoError(t, err)
}
