package service

import (
	"doctorportal/internal/db"
	"doctorportal/internal/entities"
	"doctorportal/internal/repository"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// PaymentNotifier sends the payment-received notification built from the
// appointment snapshot that travelled with the payment payload.
type PaymentNotifier interface {
	SendPaymentConfirmation(appointment entities.BookingRequest)
}

// PaymentStore records completed transactions.
type PaymentStore interface {
	Create(payment *db.Payment) error
}

type PaymentService struct {
	Bookings repository.BookingRepository
	Payments PaymentStore
	Notifier PaymentNotifier
}

func NewPaymentService(bookings repository.BookingRepository, payments PaymentStore, notifier PaymentNotifier) *PaymentService {
	return &PaymentService{Bookings: bookings, Payments: payments, Notifier: notifier}
}

// CreateIntent requests a card PaymentIntent for price converted to minor
// units. The amount is passed through unvalidated; Stripe rejects anything
// it cannot charge.
func (s *PaymentService) CreateIntent(price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("error creating payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// Confirm records the payment, marks the booking paid with the transaction
// id attached, and dispatches a best-effort confirmation built from the
// embedded appointment snapshot.
func (s *PaymentService) Confirm(bookingID int, payment *entities.PaymentConfirmation) (*db.Booking, error) {
	record := &db.Payment{
		BookingID:     bookingID,
		Patient:       payment.Patient,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
	}
	if err := s.Payments.Create(record); err != nil {
		return nil, err
	}

	booking, err := s.Bookings.MarkPaid(bookingID, payment.TransactionID)
	if err != nil {
		return nil, err
	}

	s.Notifier.SendPaymentConfirmation(payment.Appointment)
	return booking, nil
}
