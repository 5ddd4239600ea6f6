package routes

import (
	"github.com/gin-gonic/gin"

	"backend/controllers"
	"backend/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public: registration and login.
	r.POST("/users", controllers.CreateUser)
	r.POST("/tokens", controllers.CreateToken)

	// Everything below requires a resolvable token and user.
	authed := r.Group("", middlewares.AuthMiddleware())
	{
		authed.GET("/users", controllers.SearchUsers)
		authed.GET("/users/:id", controllers.GetUser)
		authed.PUT("/users/:id", controllers.UpdateUser)
		authed.DELETE("/users/:id", controllers.DeleteUser)
		authed.POST("/users/:id/addresses", controllers.AddUserAddress)
		authed.DELETE("/users/:id/addresses/:addressId", controllers.RemoveUserAddress)

		authed.DELETE("/tokens", controllers.DeleteToken)

		authed.POST("/restaurants", controllers.CreateRestaurant)
		authed.GET("/restaurants", controllers.SearchRestaurants)
		authed.GET("/restaurants/:id", controllers.GetRestaurant)
		authed.PUT("/restaurants/:id", controllers.UpdateRestaurant)
		authed.GET("/restaurants/:id/items", controllers.GetRestaurantItems)
		authed.POST("/restaurants/:id/items", controllers.AddRestaurantItem)
		authed.DELETE("/restaurants/:id/items/:itemId", controllers.RemoveRestaurantItem)

		authed.POST("/orders", controllers.CreateOrder)
		authed.GET("/orders", controllers.SearchOrders)
		authed.GET("/orders/:id", controllers.GetOrder)
	}

	return r
}
