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

// ProductController handles product-related requests
type ProductController struct {
	Products   store.ProductStore
	Categories store.CategoryStore
}

func NewProductController(products store.ProductStore, categories store.CategoryStore) *ProductController {
	return &ProductController{Products: products, Categories: categories}
}

// CreateProduct lists a new item for sale. The seller is always the
// authenticated caller, regardless of what the body claims.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if product.Name == "" || product.Price <= 0 {
		http.Error(w, "Name and a positive price are required", http.StatusBadRequest)
		return
	}

	if _, err := pc.Categories.GetByID(r.Context(), product.CategoryID); err != nil {
		writeStoreError(w, err)
		return
	}

	product.SellerEmail = claims.Email
	product.Status = models.ProductAvailable
	product.Advertised = false

	created, err := pc.Products.Insert(r.Context(), product)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListByCategory returns the available products in a category. Sold
// items never show up here.
func (pc *ProductController) ListByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	if _, err := pc.Categories.GetByID(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	products, err := pc.Products.ListAvailableByCategory(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// ListMine returns the authenticated seller's own listings, sold or
// not.
func (pc *ProductController) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	products, err := pc.Products.ListBySeller(r.Context(), claims.Email)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// ListAdvertised returns promoted products that are still available.
func (pc *ProductController) ListAdvertised(w http.ResponseWriter, r *http.Request) {
	products, err := pc.Products.ListAdvertised(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// ToggleAdvertise flips the promotional flag on one of the seller's
// own listings and reports the new value.
func (pc *ProductController) ToggleAdvertise(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := pc.Products.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if product.SellerEmail != claims.Email {
		http.Error(w, "Forbidden: not your listing", http.StatusForbidden)
		return
	}

	advertised, err := pc.Products.ToggleAdvertise(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"advertised": advertised})
}

// DeleteProduct removes one of the seller's own listings.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := pc.Products.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if product.SellerEmail != claims.Email {
		http.Error(w, "Forbidden: not your listing", http.StatusForbidden)
		return
	}

	if err := pc.Products.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
