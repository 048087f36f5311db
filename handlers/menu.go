package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizzastore/middleware"
	"pizzastore/services"
)

type MenuHandler struct {
	menu *services.MenuService
}

func NewMenuHandler(menu *services.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// GetMenu lists the catalog for a store. No auth needed.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	storeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
		return
	}

	items, svcErr := h.menu.ListMenu(storeID)
	if svcErr != nil {
		c.JSON(statusFor(svcErr), gin.H{"error": svcErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// AddItem creates a catalog entry (editMenu capability)
func (h *MenuHandler) AddItem(c *gin.Context) {
	actor := middleware.GetLogin(c)

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.menu.AddItem(actor, req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New item added successfully", "item": item})
}

// UpdateItem partially updates a catalog entry (editMenu capability).
// Blank fields keep their stored values; an all-blank request is a no-op.
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	actor := middleware.GetLogin(c)
	itemName := c.Param("itemName")

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.menu.UpdateItem(actor, itemName, req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusOK, gin.H{"message": "No updates were made"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully"})
}
