package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

// POST /users
func CreateUser(c *gin.Context) {
	var input models.UserCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.NewUserService().Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GET /users?firstName=Justin&lastName=Camerer&sortField=email&sortOrder=asc
func SearchUsers(c *gin.Context) {
	users, err := services.NewUserService().Search(c.Request.Context(), queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /users/:id
func GetUser(c *gin.Context) {
	user, err := services.NewUserService().FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// PUT /users/:id
func UpdateUser(c *gin.Context) {
	var input models.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.NewUserService().Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DELETE /users/:id
func DeleteUser(c *gin.Context) {
	if err := services.NewUserService().Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// POST /users/:id/addresses
func AddUserAddress(c *gin.Context) {
	var input models.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.NewUserService().AddAddress(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DELETE /users/:id/addresses/:addressId
func RemoveUserAddress(c *gin.Context) {
	err := services.NewUserService().RemoveAddress(c.Request.Context(), c.Param("id"), c.Param("addressId"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
