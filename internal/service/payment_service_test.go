package service

import (
	"sync"
	"testing"

	"doctorportal/internal/db"
	"doctorportal/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentStore struct {
	mu       sync.Mutex
	payments []db.Payment
}

func (s *fakePaymentStore) Create(payment *db.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment.ID = len(s.payments) + 1
	s.payments = append(s.payments, *payment)
	return nil
}

type recordingPaymentNotifier struct {
	mu           sync.Mutex
	appointments []entities.BookingRequest
}

func (n *recordingPaymentNotifier) SendPaymentConfirmation(appointment entities.BookingRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.appointments = append(n.appointments, appointment)
}

func TestPaymentService_ConfirmMarksBookingPaid(t *testing.T) {
	bookings := &fakeBookingRepo{}
	created, err := bookings.CreateIfAbsent(&db.Booking{
		Treatment: "Teeth Cleaning",
		Date:      "May 1, 2022",
		Slot:      "9am",
		Patient:   "alice@example.com",
	})
	require.NoError(t, err)
	require.True(t, created)

	store := &fakePaymentStore{}
	notifier := &recordingPaymentNotifier{}
	svc := NewPaymentService(bookings, store, notifier)

	appointment := entities.BookingRequest{
		Treatment:   "Teeth Cleaning",
		Date:        "May 1, 2022",
		Slot:        "9am",
		Patient:     "alice@example.com",
		PatientName: "Alice",
	}
	booking, err := svc.Confirm(1, &entities.PaymentConfirmation{
		TransactionID: "txn_123",
		Amount:        4500,
		Patient:       "alice@example.com",
		Appointment:   appointment,
	})
	require.NoError(t, err)

	assert.True(t, booking.Paid)
	assert.Equal(t, "txn_123", booking.TransactionID)

	require.Len(t, store.payments, 1)
	assert.Equal(t, 1, store.payments[0].BookingID)
	assert.Equal(t, "txn_123", store.payments[0].TransactionID)
	assert.Equal(t, 4500, store.payments[0].Amount)

	// email content comes from the client-supplied snapshot
	require.Len(t, notifier.appointments, 1)
	assert.Equal(t, appointment, notifier.appointments[0])
}
