package service

import (
	"doctorportal/internal/repository"
	"fmt"
	"log"
	"time"
)

// unpaidBookingRetention is how long an unpaid booking is kept before the
// maintenance job removes it.
const unpaidBookingRetention = 30 * 24 * time.Hour

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// PurgeStaleUnpaidBookings deletes bookings that were never paid and are
// past the retention window.
func (s *JobService) PurgeStaleUnpaidBookings() error {
	before := time.Now().UTC().Add(-unpaidBookingRetention)
	deleted, err := s.Repo.DeleteUnpaidBookingsOlderThan(before)
	if err != nil {
		return fmt.Errorf("cron job: failed to purge stale unpaid bookings: %w", err)
	}
	if deleted > 0 {
		log.Printf("Cron Job: purged %d unpaid bookings created before %s", deleted, before.Format(time.RFC3339))
	}
	return nil
}
