package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzastore/middleware"
	"pizzastore/services"
)

// UserHandler is the manager-facing user directory surface. Capability
// checks happen in the service layer against the live role, not here.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// AddUser creates a user on behalf of a manager
func (h *UserHandler) AddUser(c *gin.Context) {
	actor := middleware.GetLogin(c)

	var req services.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.AddUser(actor, req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User successfully created", "user": user})
}

type managerUpdateRequest struct {
	Field services.ProfileField `json:"field" binding:"required"`
	Value string                `json:"value"`
}

// UpdateUser replaces a single field on any user's record
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor := middleware.GetLogin(c)
	target := c.Param("login")

	var req managerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.ManagerUpdateUser(actor, target, req.Field, req.Value); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteUser removes a user. Deleting an absent login still succeeds.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor := middleware.GetLogin(c)
	target := c.Param("login")

	if err := h.users.DeleteUser(actor, target); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attempt to delete user made"})
}

// ListUsers returns the user directory, optionally filtered by role
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor := middleware.GetLogin(c)

	users, err := h.users.ListUsers(actor, c.Query("role"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
