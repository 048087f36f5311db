package authz

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pizzastore/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, login string, role models.Role) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		Login:    login,
		Password: "irrelevant",
		Role:     role,
	}).Error)
}

func TestRoleOf(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "bob", models.RoleManager)
	policy := NewPolicy(db, Config{})

	role, err := policy.RoleOf("bob")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, role)

	_, err = policy.RoleOf("ghost")
	assert.ErrorIs(t, err, ErrUnknownLogin)
}

func TestRequireDefaultPolicy(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice", models.RoleCustomer)
	seedUser(t, db, "bob", models.RoleManager)
	seedUser(t, db, "dave", models.RoleDriver)
	policy := NewPolicy(db, Config{})

	caps := []Capability{CapEditMenu, CapManageUsers, CapSetOrderDelivered}
	for _, cap := range caps {
		assert.NoError(t, policy.Require("bob", cap), "manager holds %s", cap)
		assert.ErrorIs(t, policy.Require("alice", cap), ErrDenied, "customer lacks %s", cap)
		assert.ErrorIs(t, policy.Require("dave", cap), ErrDenied, "driver lacks %s", cap)
	}
}

func TestRequireUnknownLoginIsDenied(t *testing.T) {
	db := newTestDB(t)
	policy := NewPolicy(db, Config{})

	assert.ErrorIs(t, policy.Require("ghost", CapEditMenu), ErrDenied)
}

func TestDriverCanDeliverPolicy(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "dave", models.RoleDriver)
	policy := NewPolicy(db, Config{DriverCanDeliver: true})

	assert.NoError(t, policy.Require("dave", CapSetOrderDelivered))
	// the toggle widens delivery only, never the other capabilities
	assert.ErrorIs(t, policy.Require("dave", CapEditMenu), ErrDenied)
	assert.ErrorIs(t, policy.Require("dave", CapManageUsers), ErrDenied)
}

func TestRequireSeesLiveRole(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "carol", models.RoleCustomer)
	policy := NewPolicy(db, Config{})

	assert.ErrorIs(t, policy.Require("carol", CapEditMenu), ErrDenied)

	require.NoError(t, db.Model(&models.User{}).
		Where("login = ?", "carol").
		Update("role", models.RoleManager).Error)

	assert.NoError(t, policy.Require("carol", CapEditMenu),
		"a role change takes effect without any token reissue")
}
