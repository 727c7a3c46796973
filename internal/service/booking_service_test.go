package service

import (
	"sync"
	"testing"

	"doctorportal/internal/db"
	"doctorportal/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int
	bookings []db.Booking
}

func (r *fakeBookingRepo) ListByDate(date string) ([]db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByPatient(patient string) ([]db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db.Booking
	for _, b := range r.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByID(id int) (*db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByTreatmentDatePatient(treatment, date, patient string) (*db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) CreateIfAbsent(booking *db.Booking) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Treatment == booking.Treatment && b.Date == booking.Date && b.Patient == booking.Patient {
			return false, nil
		}
	}
	r.nextID++
	booking.ID = r.nextID
	r.bookings = append(r.bookings, *booking)
	return true, nil
}

func (r *fakeBookingRepo) MarkPaid(id int, transactionID string) (*db.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Paid = true
			r.bookings[i].TransactionID = transactionID
			found := r.bookings[i]
			return &found, nil
		}
	}
	return nil, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	bookings []db.Booking
}

func (n *recordingNotifier) SendBookingConfirmation(booking db.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, booking)
}

func TestBookingService_CreateNewBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &recordingNotifier{}
	svc := NewBookingService(repo, nil, notifier)

	booking, created, err := svc.Create(&entities.BookingRequest{
		Treatment:   "Teeth Cleaning",
		Date:        "May 1, 2022",
		Slot:        "9am",
		Patient:     "alice@example.com",
		PatientName: "Alice",
	})
	require.NoError(t, err)
	require.True(t, created)
	assert.NotZero(t, booking.ID)
	assert.False(t, booking.Paid)
	assert.Len(t, notifier.bookings, 1)
}

func TestBookingService_DuplicateReturnsExisting(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := &recordingNotifier{}
	svc := NewBookingService(repo, nil, notifier)

	req := &entities.BookingRequest{
		Treatment: "Teeth Cleaning",
		Date:      "May 1, 2022",
		Slot:      "9am",
		Patient:   "alice@example.com",
	}
	first, created, err := svc.Create(req)
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Create(req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	// no notification for the rejected duplicate
	assert.Len(t, notifier.bookings, 1)
}

func TestBookingService_DifferingTupleSucceeds(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewBookingService(repo, nil, &recordingNotifier{})

	base := entities.BookingRequest{
		Treatment: "Teeth Cleaning",
		Date:      "May 1, 2022",
		Slot:      "9am",
		Patient:   "alice@example.com",
	}
	_, created, err := svc.Create(&base)
	require.NoError(t, err)
	require.True(t, created)

	otherPatient := base
	otherPatient.Patient = "bob@example.com"
	_, created, err = svc.Create(&otherPatient)
	require.NoError(t, err)
	assert.True(t, created)

	otherDate := base
	otherDate.Date = "May 2, 2022"
	_, created, err = svc.Create(&otherDate)
	require.NoError(t, err)
	assert.True(t, created)

	otherTreatment := base
	otherTreatment.Treatment = "Whitening"
	_, created, err = svc.Create(&otherTreatment)
	require.NoError(t, err)
	assert.True(t, created)
}
