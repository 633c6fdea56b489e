package routes

import (
	"os"
	"strings"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/controllers"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Customer-facing routes: menu browsing, ordering, calling a
		// waiter and order tracking need no account.
		api.GET("/categories", controllers.GetCategories)
		api.GET("/categories/:id", controllers.GetCategory)
		api.GET("/dishes", controllers.GetDishes)
		api.GET("/dishes/:id", controllers.GetDish)
		api.GET("/settings", controllers.GetSettings)
		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders", controllers.GetOrders)
		api.POST("/waiter-calls", controllers.CreateWaiterCall)

		cart := api.Group("/cart")
		{
			cart.GET("", controllers.GetCart)
			cart.POST("/table", controllers.SelectCartTable)
			cart.POST("/items", controllers.AddCartItem)
			cart.PATCH("/items", controllers.UpdateCartItem)
			cart.DELETE("/items/:dishId", controllers.RemoveCartItem)
			cart.DELETE("", controllers.ClearCart)
			cart.DELETE("/session", controllers.ResetCartSession)
			cart.POST("/checkout", controllers.CheckoutCart)
		}

		// Staff routes
		admin := api.Group("")
		admin.Use(utils.AuthMiddleware())
		{
			categories := admin.Group("/categories")
			{
				categories.POST("", controllers.CreateCategory)
				categories.PUT("/:id", controllers.UpdateCategory)
				categories.DELETE("/:id", controllers.DeleteCategory)
			}

			dishes := admin.Group("/dishes")
			{
				dishes.POST("", controllers.CreateDish)
				dishes.PUT("/:id", controllers.UpdateDish)
				dishes.DELETE("/:id", controllers.DeleteDish)
				dishes.POST("/:id/image", controllers.UploadDishImage)
			}

			tables := admin.Group("/tables")
			{
				tables.GET("", controllers.GetTables)
				tables.POST("", controllers.CreateTable)
				tables.GET("/:id", controllers.GetTable)
				tables.PUT("/:id", controllers.UpdateTable)
				tables.DELETE("/:id", controllers.DeleteTable)
				tables.POST("/finalize", controllers.FinalizeTable)
			}

			admin.PATCH("/orders", controllers.UpdateOrderStatus)

			admin.GET("/waiter-calls", controllers.GetWaiterCalls)
			admin.PATCH("/waiter-calls", controllers.UpdateWaiterCallStatus)

			admin.PUT("/settings", controllers.UpdateSettings)

			admin.GET("/reports", controllers.GetReports)
		}
	}

	return r
}
