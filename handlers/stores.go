package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzastore/services"
)

type StoreHandler struct {
	stores *services.StoreService
}

func NewStoreHandler(stores *services.StoreService) *StoreHandler {
	return &StoreHandler{stores: stores}
}

// ListStores returns every physical store. No auth needed.
func (h *StoreHandler) ListStores(c *gin.Context) {
	stores, err := h.stores.ListStores()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(stores), "stores": stores})
}
