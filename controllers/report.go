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

// ReportController handles moderation reports against products.
type ReportController struct {
	Reports  store.ReportStore
	Products store.ProductStore
}

func NewReportController(reports store.ReportStore, products store.ProductStore) *ReportController {
	return &ReportController{Reports: reports, Products: products}
}

// FileReport flags a product. Any authenticated user may report;
// duplicate reports from the same user are allowed and show up as
// separate rows for the moderators.
func (rc *ReportController) FileReport(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var report models.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if _, err := rc.Products.GetByID(r.Context(), report.ProductID); err != nil {
		writeStoreError(w, err)
		return
	}

	report.ReporterEmail = claims.Email
	created, err := rc.Reports.Insert(r.Context(), report)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListReports returns every open report for the moderation dashboard.
func (rc *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := rc.Reports.List(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

// ResolveReport takes down a reported product and clears every report
// filed against it.
func (rc *ReportController) ResolveReport(w http.ResponseWriter, r *http.Request) {
	productID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	if err := rc.Products.Delete(r.Context(), productID); err != nil {
		writeStoreError(w, err)
		return
	}

	deleted, err := rc.Reports.DeleteByProduct(r.Context(), productID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Product removed",
		"reports_deleted": deleted,
	})
}
