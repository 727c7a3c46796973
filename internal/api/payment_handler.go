package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"doctorportal/internal/db"
	"doctorportal/internal/entities"

	"github.com/gorilla/mux"
)

type PaymentService interface {
	CreateIntent(price float64) (string, error)
	Confirm(bookingID int, payment *entities.PaymentConfirmation) (*db.Booking, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req entities.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	clientSecret, err := h.Service.CreateIntent(req.Price)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Could not create payment intent"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entities.PaymentIntentResponse{ClientSecret: clientSecret})
}

// ConfirmPayment records the payment and flips the booking to paid with the
// transaction id attached.
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	var payment entities.PaymentConfirmation
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.Confirm(id, &payment)
	if err != nil {
		http.Error(w, "Could not confirm payment", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}
