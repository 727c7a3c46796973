package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctorportal/internal/auth"
	"doctorportal/internal/db"
	"doctorportal/internal/entities"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingService struct {
	services     []db.Service
	available    []entities.ServiceAvailability
	availableFor string
	booking      *db.Booking
	created      bool
	byPatient    []db.Booking
	byID         *db.Booking
}

func (s *stubBookingService) ListServices() ([]db.Service, error) { return s.services, nil }

func (s *stubBookingService) Available(date string) ([]entities.ServiceAvailability, error) {
	s.availableFor = date
	return s.available, nil
}

func (s *stubBookingService) Create(req *entities.BookingRequest) (*db.Booking, bool, error) {
	return s.booking, s.created, nil
}

func (s *stubBookingService) ListByPatient(patient string) ([]db.Booking, error) {
	return s.byPatient, nil
}

func (s *stubBookingService) GetByID(id int) (*db.Booking, error) { return s.byID, nil }

func TestAvailable_DefaultsDate(t *testing.T) {
	stub := &stubBookingService{
		available: []entities.ServiceAvailability{{Name: "Cleaning", Slots: []string{"10am"}}},
	}
	h := NewBookingHandler(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/available", nil)
	h.Available(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultDate, stub.availableFor)

	var got []entities.ServiceAvailability
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"10am"}, got[0].Slots)
}

func TestCreateBooking_Success(t *testing.T) {
	stub := &stubBookingService{
		booking: &db.Booking{ID: 7, Treatment: "Cleaning"},
		created: true,
	}
	h := NewBookingHandler(stub)

	body := `{"treatment":"Cleaning","date":"May 1, 2022","slot":"9am","patient":"alice@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result BookingResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Success)
	require.NotNil(t, result.Result)
	assert.Equal(t, 7, result.Result.InsertedID)
	assert.Nil(t, result.Booking)
}

func TestCreateBooking_ConflictIsSuccessShaped(t *testing.T) {
	existing := &db.Booking{ID: 3, Treatment: "Cleaning", Patient: "alice@example.com"}
	stub := &stubBookingService{booking: existing, created: false}
	h := NewBookingHandler(stub)

	body := `{"treatment":"Cleaning","date":"May 1, 2022","slot":"9am","patient":"alice@example.com"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	h.CreateBooking(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var result BookingResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Success)
	require.NotNil(t, result.Booking)
	assert.Equal(t, 3, result.Booking.ID)
	assert.Nil(t, result.Result)
}

func TestListBookings_PatientMustMatchToken(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings?patient=bob@example.com", nil)
	req = req.WithContext(auth.WithEmail(req.Context(), "alice@example.com"))
	h.ListBookings(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden access")
}

func TestListBookings_OwnBookings(t *testing.T) {
	stub := &stubBookingService{
		byPatient: []db.Booking{{ID: 1, Patient: "alice@example.com"}},
	}
	h := NewBookingHandler(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings?patient=alice@example.com", nil)
	req = req.WithContext(auth.WithEmail(req.Context(), "alice@example.com"))
	h.ListBookings(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []db.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestGetBooking_NotFound(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	router := mux.NewRouter()
	router.HandleFunc("/bookings/{id}", h.GetBooking).Methods("GET")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings/42", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBooking_InvalidID(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	router := mux.NewRouter()
	router.HandleFunc("/bookings/{id}", h.GetBooking).Methods("GET")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/bookings/not-a-number", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
