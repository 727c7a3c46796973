package api

import "doctorportal/internal/db"

// User upsert
type UpsertResult struct {
	Acknowledged bool `json:"acknowledged"`
}
type UpsertUserResponse struct {
	Result UpsertResult `json:"result"`
	Token  string       `json:"token"`
}

// Booking submission. A duplicate (treatment, date, patient) comes back as a
// 200 with success=false and the conflicting record, not an HTTP error.
type InsertResult struct {
	InsertedID int `json:"insertedId"`
}
type BookingResult struct {
	Success bool          `json:"success"`
	Result  *InsertResult `json:"result,omitempty"`
	Booking *db.Booking   `json:"booking,omitempty"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
