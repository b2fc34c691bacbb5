package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"resale-store/checkout"
	"resale-store/middleware"
	"resale-store/models"
	"resale-store/store"
	"resale-store/utils"
)

// PaymentController handles payment-intent creation and payment
// recording.
type PaymentController struct {
	Processor    checkout.IntentProcessor
	Saga         *checkout.Saga
	Orders       store.OrderStore
	EmailService *utils.EmailService
}

func NewPaymentController(processor checkout.IntentProcessor, saga *checkout.Saga, orders store.OrderStore, emailService *utils.EmailService) *PaymentController {
	return &PaymentController{
		Processor:    processor,
		Saga:         saga,
		Orders:       orders,
		EmailService: emailService,
	}
}

// CreateIntent asks the payment processor for a client-side
// confirmation secret. A processor failure is the processor's
// problem, not ours: 502.
func (pc *PaymentController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if body.Price <= 0 {
		http.Error(w, "Price must be positive", http.StatusBadRequest)
		return
	}

	clientSecret, err := pc.Processor.CreateIntent(r.Context(), body.Price)
	if err != nil {
		log.Printf("payment intent failed: %v", err)
		http.Error(w, "Payment processor unavailable", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

// RecordPayment runs the settlement flow for a confirmed charge:
// payment row inserted, order marked paid, product marked sold. A
// retry with the same transaction ID replays instead of duplicating
// and responds 200; a first recording responds 201.
func (pc *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.Authenticated(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	payment.BuyerEmail = claims.Email

	result, err := pc.Saga.Record(r.Context(), payment)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if !result.Replayed && pc.EmailService != nil {
		order, err := pc.Orders.GetByID(r.Context(), result.Payment.OrderID)
		if err == nil {
			go func(email string, order models.Order) {
				if err := pc.EmailService.SendPaymentReceipt(email, order); err != nil {
					log.Printf("Failed to send email to %s: %v", email, err)
				}
			}(claims.Email, order)
		}
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, result.Payment)
}
