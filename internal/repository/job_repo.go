package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// DeleteUnpaidBookingsOlderThan removes bookings that were never paid and
// were created before the given time.
func (r *JobRepository) DeleteUnpaidBookingsOlderThan(before time.Time) (int64, error) {
	query := `DELETE FROM bookings WHERE paid = false AND created_at < $1`
	result, err := r.DB.Exec(query, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting stale unpaid bookings: %w", err)
	}
	return result.RowsAffected()
}
