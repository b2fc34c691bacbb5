// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"resale-store/checkout"
	"resale-store/config"
	"resale-store/controllers"
	"resale-store/routes"
	"resale-store/store"
	"resale-store/utils"
)

// defaultCategories seeds the storefront navigation on first boot.
var defaultCategories = []string{"Electronics", "Furniture", "Vehicles", "Books", "Clothing"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService (nil when no token is configured)
	emailService := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	db := client.Database(cfg.DBName)
	if err := utils.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	// Stores
	users := store.NewMongoUserStore(db)
	categories := store.NewMongoCategoryStore(db)
	products := store.NewMongoProductStore(db)
	orders := store.NewMongoOrderStore(db)
	payments := store.NewMongoPaymentStore(db)
	reports := store.NewMongoReportStore(db)

	if err := categories.Seed(context.Background(), defaultCategories); err != nil {
		log.Fatal(err)
	}

	// Payment flow
	processor := checkout.NewStripeProcessor(cfg.StripeSecretKey)
	saga := &checkout.Saga{Orders: orders, Products: products, Payments: payments}

	// Initialize controllers
	userController := controllers.NewUserController(users, emailService)
	categoryController := controllers.NewCategoryController(categories)
	productController := controllers.NewProductController(products, categories)
	orderController := controllers.NewOrderController(orders, products)
	paymentController := controllers.NewPaymentController(processor, saga, orders, emailService)
	reportController := controllers.NewReportController(reports, products)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, users,
		userController, categoryController, productController,
		orderController, paymentController, reportController)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
	)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, cors(router))))
}
