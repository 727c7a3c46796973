package service

import (
	"doctorportal/internal/db"
	"doctorportal/internal/entities"
)

// AvailableServices reduces each service's slot list to the slots not yet
// claimed by a booking for that treatment. The bookings are expected to be
// pre-filtered to a single date. Slot order is preserved and slots are
// matched by exact string equality.
func AvailableServices(services []db.Service, bookings []db.Booking) []entities.ServiceAvailability {
	result := make([]entities.ServiceAvailability, 0, len(services))
	for _, svc := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == svc.Name {
				booked[b.Slot] = struct{}{}
			}
		}

		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}
		result = append(result, entities.ServiceAvailability{Name: svc.Name, Slots: available})
	}
	return result
}
