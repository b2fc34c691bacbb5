// controllers/order.go
package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resale-store/middleware"
	"resale-store/models"
	"resale-store/store"
)

// OrderController handles order-related requests
type OrderController struct {
	Orders   store.OrderStore
	Products store.ProductStore
}

func NewOrderController(orders store.OrderStore, products store.ProductStore) *OrderController {
	return &OrderController{Orders: orders, Products: products}
}

// CreateOrder places an unpaid order on an available product. The
// product name and price are copied onto the order so the payment
// page is stable even if the listing changes.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		ProductID primitive.ObjectID `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, err := oc.Products.GetByID(r.Context(), body.ProductID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if product.Status != models.ProductAvailable {
		http.Error(w, "Product already sold", http.StatusConflict)
		return
	}

	order := models.Order{
		Email:       claims.Email,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Paid:        false,
	}
	created, err := oc.Orders.Insert(r.Context(), order)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListOrders returns the caller's orders. The email query parameter
// must match the authenticated email; asking for someone else's
// orders is 403.
func (oc *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	email := r.URL.Query().Get("email")
	if email != claims.Email {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	orders, err := oc.Orders.ListByBuyer(r.Context(), email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrder returns a single order for the payment page. Only the
// buyer who placed it may fetch it.
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := oc.Orders.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if order.Email != claims.Email {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
