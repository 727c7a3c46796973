package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"doctorportal/internal/auth"
	"doctorportal/internal/db"
	"doctorportal/internal/entities"
	httperrors "doctorportal/internal/errors"

	"github.com/gorilla/mux"
)

// defaultDate is the placeholder used when /available is called without a
// date query parameter.
const defaultDate = "May 14, 2022"

type BookingService interface {
	ListServices() ([]db.Service, error)
	Available(date string) ([]entities.ServiceAvailability, error)
	Create(req *entities.BookingRequest) (*db.Booking, bool, error)
	ListByPatient(patient string) ([]db.Booking, error)
	GetByID(id int) (*db.Booking, error)
}

type BookingHandler struct {
	Service BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.ListServices()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []db.Service{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services)
}

func (h *BookingHandler) Available(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = defaultDate
	}
	services, err := h.Service.Available(date)
	if err != nil {
		http.Error(w, "Error checking availability", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	booking, created, err := h.Service.Create(&req)
	if err != nil {
		http.Error(w, "Could not create booking", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !created {
		json.NewEncoder(w).Encode(BookingResult{Success: false, Booking: booking})
		return
	}
	json.NewEncoder(w).Encode(BookingResult{Success: true, Result: &InsertResult{InsertedID: booking.ID}})
}

// ListBookings returns the bookings for the patient in the query string. The
// patient must match the token subject.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	patient := r.URL.Query().Get("patient")
	email, _ := auth.EmailFromContext(r.Context())
	if patient == "" || patient != email {
		httperrors.WriteJSON(w, httperrors.ErrForbidden("forbidden access"))
		return
	}

	bookings, err := h.Service.ListByPatient(patient)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.GetByID(id)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if booking == nil {
		httperrors.WriteJSON(w, httperrors.ErrNotFound("booking not found"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}
