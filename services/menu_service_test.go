package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzastore/models"
)

func strp(s string) *string { return &s }

func TestAddItemDeniedForNonManager(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", models.RoleCustomer)
	f.register(t, "dave", models.RoleDriver)

	for _, actor := range []string{"alice", "dave"} {
		_, err := f.menu.AddItem(actor, AddItemRequest{ItemName: "Veggie", Price: "7.25"})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	}

	exists, err := f.menu.ItemExists("Veggie")
	require.NoError(t, err)
	assert.False(t, exists, "denied add must not write")
}

func TestAddItemDuplicate(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Veggie", "7.25")

	_, err := f.menu.AddItem("bob", AddItemRequest{ItemName: "Veggie", Price: "9.00"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	var count int64
	require.NoError(t, f.db.Model(&models.Item{}).Where("item_name = ?", "Veggie").Count(&count).Error)
	assert.EqualValues(t, 1, count, "catalog must still have exactly one Veggie row")
}

func TestAddItemInvalidPrice(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)

	for _, price := range []string{"-1", "abc", "", "NaN", "+Inf"} {
		_, err := f.menu.AddItem("bob", AddItemRequest{ItemName: "Oddity", Price: price})
		assert.ErrorIs(t, err, ErrInvalidPrice, "price %q", price)
	}

	exists, err := f.menu.ItemExists("Oddity")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateItemPartialFieldLaw(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Margherita", "8.50")

	var before models.Item
	require.NoError(t, f.db.First(&before, "item_name = ?", "Margherita").Error)

	updated, err := f.menu.UpdateItem("bob", "Margherita", UpdateItemRequest{
		Price: strp("9.99"),
	})
	require.NoError(t, err)
	assert.True(t, updated)

	var after models.Item
	require.NoError(t, f.db.First(&after, "item_name = ?", "Margherita").Error)
	assert.Equal(t, 9.99, after.Price)
	assert.Equal(t, before.Ingredients, after.Ingredients)
	assert.Equal(t, before.TypeOfItem, after.TypeOfItem)
	assert.Equal(t, before.Description, after.Description)
}

func TestUpdateItemBlankFieldsKeepStoredValues(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Margherita", "8.50")

	updated, err := f.menu.UpdateItem("bob", "Margherita", UpdateItemRequest{
		Ingredients: strp(""),
		Description: strp("wood-fired"),
	})
	require.NoError(t, err)
	assert.True(t, updated)

	var item models.Item
	require.NoError(t, f.db.First(&item, "item_name = ?", "Margherita").Error)
	assert.Equal(t, "dough, tomato, mozzarella", item.Ingredients, "blank field keeps stored value")
	assert.Equal(t, "wood-fired", item.Description)
}

func TestUpdateItemNoOp(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Margherita", "8.50")

	updated, err := f.menu.UpdateItem("bob", "Margherita", UpdateItemRequest{})
	require.NoError(t, err)
	assert.False(t, updated, "all-blank update is a no-op")

	updated, err = f.menu.UpdateItem("bob", "Margherita", UpdateItemRequest{
		Ingredients: strp("   "),
	})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateItemNotFound(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)

	_, err := f.menu.UpdateItem("bob", "Ghost", UpdateItemRequest{Price: strp("1.00")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItemInvalidPrice(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Margherita", "8.50")

	_, err := f.menu.UpdateItem("bob", "Margherita", UpdateItemRequest{Price: strp("-2")})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	var item models.Item
	require.NoError(t, f.db.First(&item, "item_name = ?", "Margherita").Error)
	assert.Equal(t, 8.50, item.Price, "rejected update must not write")
}

func TestUpdateItemDeniedForNonManager(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", models.RoleCustomer)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Margherita", "8.50")

	_, err := f.menu.UpdateItem("alice", "Margherita", UpdateItemRequest{Price: strp("0.01")})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	var item models.Item
	require.NoError(t, f.db.First(&item, "item_name = ?", "Margherita").Error)
	assert.Equal(t, 8.50, item.Price)
}

func TestListMenuReturnsFullCatalogForAnyStore(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", models.RoleManager)
	f.addItem(t, "bob", "Margherita", "8.50")
	f.addItem(t, "bob", "Veggie", "7.25")

	// the catalog is chain-wide: every store sees the same items
	for _, storeID := range []int{1, 2, 99} {
		items, err := f.menu.ListMenu(storeID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	}
}
