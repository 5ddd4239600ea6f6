package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/middlewares"
	"backend/models"
	"backend/services"
)

// POST /orders
func CreateOrder(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token unrecognized."})
		return
	}

	var input models.OrderCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService().Create(c.Request.Context(), user.ID.Hex(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	// A payment step would run here and flip isPaid on success.
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GET /orders?userId=1234567890&sortField=totalAmount&sortOrder=asc
func SearchOrders(c *gin.Context) {
	orders, err := services.NewOrderService().Search(c.Request.Context(), queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /orders/:id
func GetOrder(c *gin.Context) {
	order, err := services.NewOrderService().FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
