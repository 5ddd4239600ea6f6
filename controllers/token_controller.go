package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/middlewares"
	"backend/services"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /tokens
func CreateToken(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := services.NewTokenService().Login(c.Request.Context(), input.Email, input.Password)
	if errors.Is(err, services.ErrNotAuthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password unrecognized."})
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":          token.ID.Hex(),
		"lastAccessedAt": token.LastAccessedAt,
		"user":           user,
	})
}

// DELETE /tokens
func DeleteToken(c *gin.Context) {
	token, ok := middlewares.CurrentToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token unrecognized."})
		return
	}

	if err := services.NewTokenService().Logout(c.Request.Context(), token.ID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
