package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pizzastore/authz"
	"pizzastore/models"
	"pizzastore/statemachine"
)

// OrderService owns order placement and the status workflow. Orders are
// created, listed, and transitioned; never deleted.
type OrderService struct {
	db     *gorm.DB
	policy *authz.Policy
}

func NewOrderService(db *gorm.DB, policy *authz.Policy) *OrderService {
	return &OrderService{db: db, policy: policy}
}

type PlaceOrderRequest struct {
	StoreID  int    `json:"store_id" binding:"required"`
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity"`
}

// PlaceOrder creates a FoodOrder plus its line item in one transaction:
// either both rows become visible or neither does. The order ID comes
// from the store's autoincrement sequence rather than a random draw, so
// repeated and concurrent placements can never collide.
func (s *OrderService) PlaceOrder(login string, req PlaceOrderRequest) (*models.FoodOrder, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	var item models.Item
	err := s.db.Where("item_name = ?", req.ItemName).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("item %q: %w", req.ItemName, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var storeCount int64
	if err := s.db.Model(&models.Store{}).Where("store_id = ?", req.StoreID).Count(&storeCount).Error; err != nil {
		return nil, err
	}
	if storeCount == 0 {
		return nil, fmt.Errorf("store %d: %w", req.StoreID, ErrNotFound)
	}

	order := models.FoodOrder{
		Login:          login,
		StoreID:        req.StoreID,
		TotalPrice:     item.Price * float64(quantity),
		OrderTimestamp: time.Now(),
		OrderStatus:    statemachine.Initial,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		line := models.OrderLine{
			OrderID:  order.OrderID,
			ItemName: item.ItemName,
			Quantity: quantity,
		}
		if err := tx.Create(&line).Error; err != nil {
			return err
		}
		order.Lines = []models.OrderLine{line}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns every order placed by a login, newest first.
func (s *OrderService) ListOrders(login string) ([]models.FoodOrder, error) {
	var orders []models.FoodOrder
	err := s.db.Where("login = ?", login).
		Order("order_timestamp desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListRecentOrders returns a login's most recent orders, newest first.
// A non-positive limit falls back to the default of 5.
func (s *OrderService) ListRecentOrders(login string, limit int) ([]models.FoodOrder, error) {
	if limit <= 0 {
		limit = 5
	}
	var orders []models.FoodOrder
	err := s.db.Where("login = ?", login).
		Order("order_timestamp desc").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns one order with its line items.
func (s *OrderService) GetOrder(orderID int) (*models.FoodOrder, error) {
	var order models.FoodOrder
	err := s.db.Preload("Lines").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetDelivered transitions an order to Delivered. The capability check
// runs before anything touches the store; marking an already-delivered
// order again succeeds without error.
func (s *OrderService) SetDelivered(actor string, orderID int) error {
	if err := s.policy.Require(actor, authz.CapSetOrderDelivered); err != nil {
		return mapAuthzErr(err)
	}

	var order models.FoodOrder
	err := s.db.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return err
	}

	if err := statemachine.CanTransition(order.OrderStatus, models.StatusDelivered); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.db.Model(&order).Update("order_status", models.StatusDelivered).Error
}
