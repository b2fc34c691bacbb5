// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"resale-store/controllers"
	"resale-store/middleware"
	"resale-store/models"
	"resale-store/store"
)

// RegisterRoutes sets up all the routes for the application. Role
// gates read the stored role from the user store on every request.
func RegisterRoutes(
	router *mux.Router,
	users store.UserStore,
	userController *controllers.UserController,
	categoryController *controllers.CategoryController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	reportController *controllers.ReportController,
) {
	// Public routes
	router.HandleFunc("/jwt", userController.IssueToken).Methods("GET")
	router.HandleFunc("/users", userController.UpsertUser).Methods("POST")
	router.HandleFunc("/categories", categoryController.ListCategories).Methods("GET")
	router.HandleFunc("/category/{id}", productController.ListByCategory).Methods("GET")
	router.HandleFunc("/products/advertised", productController.ListAdvertised).Methods("GET")

	// Authenticated routes (any role)
	authed := router.PathPrefix("/").Subrouter()
	authed.Use(middleware.AuthMiddleware)
	authed.HandleFunc("/users/seller/{email}", userController.SellerFlag).Methods("GET")
	authed.HandleFunc("/users/buyer/{email}", userController.BuyerFlag).Methods("GET")
	authed.HandleFunc("/users/admin/{email}", userController.AdminFlag).Methods("GET")
	authed.HandleFunc("/orders", orderController.ListOrders).Methods("GET")
	authed.HandleFunc("/order/{id}", orderController.GetOrder).Methods("GET")
	authed.HandleFunc("/report", reportController.FileReport).Methods("POST")

	// Seller routes
	seller := router.PathPrefix("/").Subrouter()
	seller.Use(middleware.AuthMiddleware, middleware.RequireRole(users, models.RoleSeller))
	seller.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	seller.HandleFunc("/products", productController.ListMine).Methods("GET")
	seller.HandleFunc("/product/advertise/{id}", productController.ToggleAdvertise).Methods("PUT")
	seller.HandleFunc("/product/{id}", productController.DeleteProduct).Methods("DELETE")

	// Buyer routes
	buyer := router.PathPrefix("/").Subrouter()
	buyer.Use(middleware.AuthMiddleware, middleware.RequireRole(users, models.RoleBuyer))
	buyer.HandleFunc("/order", orderController.CreateOrder).Methods("POST")
	buyer.HandleFunc("/create-payment-intent", paymentController.CreateIntent).Methods("POST")
	buyer.HandleFunc("/payment", paymentController.RecordPayment).Methods("POST")

	// Admin routes
	admin := router.PathPrefix("/").Subrouter()
	admin.Use(middleware.AuthMiddleware, middleware.RequireRole(users, models.RoleAdmin))
	admin.HandleFunc("/users", userController.ListByRole).Methods("GET")
	admin.HandleFunc("/users/verify/{id}", userController.VerifySeller).Methods("PUT")
	admin.HandleFunc("/users/{id}", userController.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/reports", reportController.ListReports).Methods("GET")
	admin.HandleFunc("/report/product/{id}", reportController.ResolveReport).Methods("DELETE")
}
