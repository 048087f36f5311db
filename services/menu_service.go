package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"pizzastore/authz"
	"pizzastore/models"
)

// MenuService manages the item catalog. Creation and edits are gated on
// the editMenu capability; browsing is open to everyone.
type MenuService struct {
	db     *gorm.DB
	policy *authz.Policy
}

func NewMenuService(db *gorm.DB, policy *authz.Policy) *MenuService {
	return &MenuService{db: db, policy: policy}
}

// ItemExists reports whether an item is present in the catalog.
func (s *MenuService) ItemExists(itemName string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Item{}).Where("item_name = ?", itemName).Count(&count).Error
	return count > 0, err
}

// ListMenu returns the full catalog. The store ID is accepted for
// interface compatibility but the catalog is shared chain-wide, so no
// per-store filtering happens.
func (s *MenuService) ListMenu(storeID int) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Order("item_name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type AddItemRequest struct {
	ItemName    string `json:"item_name" binding:"required"`
	Ingredients string `json:"ingredients"`
	TypeOfItem  string `json:"type_of_item"`
	Price       string `json:"price" binding:"required"`
	Description string `json:"description"`
}

// AddItem creates a catalog entry. Duplicate names are rejected without
// writing.
func (s *MenuService) AddItem(actor string, req AddItemRequest) (*models.Item, error) {
	if err := s.policy.Require(actor, authz.CapEditMenu); err != nil {
		return nil, mapAuthzErr(err)
	}
	name := strings.TrimSpace(req.ItemName)
	if name == "" {
		return nil, fmt.Errorf("%w: item name must not be blank", ErrInvalidInput)
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	exists, err := s.ItemExists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("item %q: %w", name, ErrAlreadyExists)
	}

	item := models.Item{
		ItemName:    name,
		Ingredients: req.Ingredients,
		TypeOfItem:  req.TypeOfItem,
		Price:       price,
		Description: req.Description,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemRequest is a partial update: a nil or blank field keeps the
// stored value. This mirrors the console contract where pressing Enter
// left a field unchanged.
type UpdateItemRequest struct {
	Ingredients *string `json:"ingredients"`
	TypeOfItem  *string `json:"type_of_item"`
	Price       *string `json:"price"`
	Description *string `json:"description"`
}

// UpdateItem applies the supplied fields to an existing item. It returns
// false with a nil error when every field was blank: a no-op, nothing
// written.
func (s *MenuService) UpdateItem(actor, itemName string, req UpdateItemRequest) (bool, error) {
	if err := s.policy.Require(actor, authz.CapEditMenu); err != nil {
		return false, mapAuthzErr(err)
	}

	exists, err := s.ItemExists(itemName)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("item %q: %w", itemName, ErrNotFound)
	}

	updates := map[string]interface{}{}
	if v := supplied(req.Ingredients); v != "" {
		updates["ingredients"] = v
	}
	if v := supplied(req.TypeOfItem); v != "" {
		updates["type_of_item"] = v
	}
	if v := supplied(req.Description); v != "" {
		updates["description"] = v
	}
	if v := supplied(req.Price); v != "" {
		price, err := parsePrice(v)
		if err != nil {
			return false, err
		}
		updates["price"] = price
	}
	if len(updates) == 0 {
		return false, nil
	}

	err = s.db.Model(&models.Item{}).Where("item_name = ?", itemName).Updates(updates).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func supplied(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// parsePrice parses a non-negative fixed-point currency value.
func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	return price, nil
}
