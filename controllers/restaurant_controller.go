package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/models"
	"backend/services"
)

// POST /restaurants
func CreateRestaurant(c *gin.Context) {
	var input models.RestaurantCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := services.NewRestaurantService().Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"restaurant": restaurant})
}

// GET /restaurants?name=Ippudo&latitude=40.7312261&longitude=-73.9888796&maxDistance=1000
func SearchRestaurants(c *gin.Context) {
	restaurants, err := services.NewRestaurantService().Search(c.Request.Context(), queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// GET /restaurants/:id
func GetRestaurant(c *gin.Context) {
	restaurant, err := services.NewRestaurantService().FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// PUT /restaurants/:id
func UpdateRestaurant(c *gin.Context) {
	var input models.RestaurantUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := services.NewRestaurantService().Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GET /restaurants/:id/items?dietaryRestrictions=carnivore&price=12
func GetRestaurantItems(c *gin.Context) {
	restaurant, err := services.NewRestaurantService().FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	restrictions := c.QueryArray("dietaryRestrictions")
	if len(restrictions) == 0 {
		restrictions = c.QueryArray("dietaryRestrictions[]")
	}

	items := restaurant.FilteredItems(models.ItemCriteria{
		Name:                c.Query("name"),
		Price:               c.Query("price"),
		DietaryRestrictions: restrictions,
	})

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /restaurants/:id/items
func AddRestaurantItem(c *gin.Context) {
	var input models.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := services.NewRestaurantService().AddItem(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": restaurant.Items})
}

// DELETE /restaurants/:id/items/:itemId
func RemoveRestaurantItem(c *gin.Context) {
	err := services.NewRestaurantService().RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
