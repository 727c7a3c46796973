package repository

import (
	"database/sql"
	"doctorportal/internal/db"
	"errors"
	"fmt"
)

const bookingColumns = `id, treatment, date, slot, patient, patient_name, phone, paid, transaction_id, created_at, updated_at`

type BookingRepository interface {
	ListByDate(date string) ([]db.Booking, error)
	ListByPatient(patient string) ([]db.Booking, error)
	GetByID(id int) (*db.Booking, error)
	GetByTreatmentDatePatient(treatment, date, patient string) (*db.Booking, error)
	CreateIfAbsent(booking *db.Booking) (bool, error)
	MarkPaid(id int, transactionID string) (*db.Booking, error)
}

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) ListByDate(date string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE date = $1`
	return r.queryBookings(query, date)
}

func (r *bookingRepository) ListByPatient(patient string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE patient = $1 ORDER BY id`
	return r.queryBookings(query, patient)
}

func (r *bookingRepository) queryBookings(query string, args ...interface{}) ([]db.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows.Scan, &b); err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) GetByID(id int) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var b db.Booking
	err := scanBooking(r.db.QueryRow(query, id).Scan, &b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying booking %d: %w", id, err)
	}
	return &b, nil
}

func (r *bookingRepository) GetByTreatmentDatePatient(treatment, date, patient string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE treatment = $1 AND date = $2 AND patient = $3`
	var b db.Booking
	err := scanBooking(r.db.QueryRow(query, treatment, date, patient).Scan, &b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &b, nil
}

// CreateIfAbsent inserts the booking unless one already exists for the same
// (treatment, date, patient). The unique index makes the check-and-insert a
// single statement, so two concurrent submissions cannot both succeed.
// Returns false when the row already existed.
func (r *bookingRepository) CreateIfAbsent(booking *db.Booking) (bool, error) {
	query := `
		INSERT INTO bookings
		(treatment, date, slot, patient, patient_name, phone, paid, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (treatment, date, patient) DO NOTHING
		RETURNING id`
	err := r.db.QueryRow(query,
		booking.Treatment,
		booking.Date,
		booking.Slot,
		booking.Patient,
		booking.PatientName,
		booking.Phone,
		booking.Paid,
		booking.TransactionID,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error inserting booking: %w", err)
	}
	return true, nil
}

func (r *bookingRepository) MarkPaid(id int, transactionID string) (*db.Booking, error) {
	query := `
		UPDATE bookings
		SET paid = true, transaction_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns
	var b db.Booking
	err := scanBooking(r.db.QueryRow(query, id, transactionID).Scan, &b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %d not found", id)
		}
		return nil, fmt.Errorf("error updating booking %d: %w", id, err)
	}
	return &b, nil
}

func scanBooking(scan func(...interface{}) error, b *db.Booking) error {
	return scan(
		&b.ID, &b.Treatment, &b.Date, &b.Slot, &b.Patient, &b.PatientName,
		&b.Phone, &b.Paid, &b.TransactionID, &b.CreatedAt, &b.UpdatedAt,
	)
}
