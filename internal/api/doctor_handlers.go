package api

import (
	"encoding/json"
	"net/http"

	"doctorportal/internal/db"

	"github.com/gorilla/mux"
)

type DoctorService interface {
	Create(doctor *db.Doctor) error
	List() ([]db.Doctor, error)
	Delete(email string) (int64, error)
}

type DoctorHandler struct {
	Service DoctorService
}

func NewDoctorHandler(svc DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var doctor db.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doctor); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.Create(&doctor); err != nil {
		http.Error(w, "Could not create doctor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"acknowledged": true,
		"insertedId":   doctor.ID,
	})
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.Service.List()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if doctors == nil {
		doctors = []db.Doctor{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctors)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	deleted, err := h.Service.Delete(email)
	if err != nil {
		http.Error(w, "Could not delete doctor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"deletedCount": deleted})
}
