package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/controllers"
	"github.com/Narug1fps/cardapio-sub000/models"
	"github.com/Narug1fps/cardapio-sub000/routes"
	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Dish{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.WaiterCall{},
		&models.MenuSettings{},
		&models.DailyReport{},
	)
}

func main() {
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		store, err := storage.NewS3Store(context.Background(), os.Getenv("AWS_REGION"), bucket)
		if err != nil {
			log.Printf("Image storage disabled: %v", err)
		} else {
			controllers.ImageStore = store
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		controllers.CartStore = services.NewRedisCartStorage(addr, os.Getenv("REDIS_PASSWORD"))
		log.Println("Cart sessions stored in Redis")
	}

	services.NewReportService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
