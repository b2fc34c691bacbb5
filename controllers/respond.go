package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"resale-store/checkout"
	"resale-store/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError maps the sentinel errors coming out of the store
// and checkout layers onto distinct status codes: missing references
// are 404, bad input is 400, duplicates and lost races are 409,
// anything else is a plain server error.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "Record not found", http.StatusNotFound)
	case errors.Is(err, checkout.ErrMissingTransaction),
		errors.Is(err, checkout.ErrProductMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrConflict),
		errors.Is(err, checkout.ErrTransactionReused):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
	}
}
