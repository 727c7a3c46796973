package repository

import (
	"database/sql"
	"doctorportal/internal/db"
	"fmt"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(payment *db.Payment) error {
	query := `
		INSERT INTO payments (booking_id, patient, transaction_id, amount, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		payment.BookingID,
		payment.Patient,
		payment.TransactionID,
		payment.Amount,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting payment: %w", err)
	}
	return nil
}
