package service

import (
	"doctorportal/internal/db"
	"doctorportal/internal/entities"
	"doctorportal/internal/repository"
	"time"
)

// BookingNotifier delivers best-effort notifications. Implementations must
// not block the caller on delivery.
type BookingNotifier interface {
	SendBookingConfirmation(booking db.Booking)
}

// ServiceCatalog provides the treatment catalog.
type ServiceCatalog interface {
	ListServices() ([]db.Service, error)
}

type BookingService struct {
	Repo     repository.BookingRepository
	Services ServiceCatalog
	Notifier BookingNotifier
}

func NewBookingService(repo repository.BookingRepository, services ServiceCatalog, notifier BookingNotifier) *BookingService {
	return &BookingService{Repo: repo, Services: services, Notifier: notifier}
}

func (s *BookingService) ListServices() ([]db.Service, error) {
	return s.Services.ListServices()
}

// Available returns the catalog with each service's slots reduced to those
// not booked on the given date.
func (s *BookingService) Available(date string) ([]entities.ServiceAvailability, error) {
	services, err := s.Services.ListServices()
	if err != nil {
		return nil, err
	}
	bookings, err := s.Repo.ListByDate(date)
	if err != nil {
		return nil, err
	}
	return AvailableServices(services, bookings), nil
}

// Create inserts the booking unless one already exists for the same
// (treatment, date, patient). When the slot was already taken by that
// patient, the existing booking is returned with created=false and nothing
// is sent. On success a confirmation is dispatched best-effort.
func (s *BookingService) Create(req *entities.BookingRequest) (*db.Booking, bool, error) {
	now := time.Now().UTC()
	booking := &db.Booking{
		Treatment:   req.Treatment,
		Date:        req.Date,
		Slot:        req.Slot,
		Patient:     req.Patient,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.Repo.CreateIfAbsent(booking)
	if err != nil {
		return nil, false, err
	}
	if !created {
		existing, err := s.Repo.GetByTreatmentDatePatient(req.Treatment, req.Date, req.Patient)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	s.Notifier.SendBookingConfirmation(*booking)
	return booking, true, nil
}

func (s *BookingService) ListByPatient(patient string) ([]db.Booking, error) {
	return s.Repo.ListByPatient(patient)
}

func (s *BookingService) GetByID(id int) (*db.Booking, error) {
	return s.Repo.GetByID(id)
}
