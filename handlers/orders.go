package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizzastore/metrics"
	"pizzastore/middleware"
	"pizzastore/services"
	"pizzastore/statemachine"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// PlaceOrder creates a new order for the authenticated user
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	login := middleware.GetLogin(c)

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.PlaceOrder(login, req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	metrics.OrdersPlacedTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order_id": order.OrderID,
		"order":    order,
	})
}

// GetMyOrders returns the caller's full order history, newest first
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	login := middleware.GetLogin(c)

	orders, err := h.orders.ListOrders(login)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetRecentOrders returns the caller's five most recent orders
func (h *OrderHandler) GetRecentOrders(c *gin.Context) {
	login := middleware.GetLogin(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	orders, err := h.orders.ListRecentOrders(login, limit)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns one order with its line items. Any
// authenticated user may look up any order, as in the original system.
func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, svcErr := h.orders.GetOrder(orderID)
	if svcErr != nil {
		c.JSON(statusFor(svcErr), gin.H{"error": svcErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// DeliverOrder marks an order Delivered (setOrderDelivered capability)
func (h *OrderHandler) DeliverOrder(c *gin.Context) {
	actor := middleware.GetLogin(c)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	if svcErr := h.orders.SetDelivered(actor, orderID); svcErr != nil {
		c.JSON(statusFor(svcErr), gin.H{"error": svcErr.Error()})
		return
	}

	metrics.OrdersDeliveredTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order_id": orderID})
}

// GetStateMachineInfo documents the order status transitions
func (h *OrderHandler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"initial":     statemachine.Initial,
		"transitions": statemachine.GetAllTransitions(),
	})
}
