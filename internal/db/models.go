package db

import "time"

type Service struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}

type Booking struct {
	ID            int       `json:"id"`
	Treatment     string    `json:"treatment"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	Patient       string    `json:"patient"`
	PatientName   string    `json:"patientName"`
	Phone         string    `json:"phone,omitempty"`
	Paid          bool      `json:"paid"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

type Doctor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Img       string `json:"img,omitempty"`
}

type Payment struct {
	ID            int       `json:"id"`
	BookingID     int       `json:"bookingId"`
	Patient       string    `json:"patient"`
	TransactionID string    `json:"transactionId"`
	Amount        int       `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
}
