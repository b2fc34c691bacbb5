package controllers

import (
	"net/http"

	"resale-store/models"
	"resale-store/store"
)

// CategoryController handles category-related requests
type CategoryController struct {
	Categories store.CategoryStore
}

func NewCategoryController(categories store.CategoryStore) *CategoryController {
	return &CategoryController{Categories: categories}
}

// ListCategories returns the full category list for the storefront
// navigation.
func (cc *CategoryController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := cc.Categories.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}
