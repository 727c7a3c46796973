package entities

type BookingRequest struct {
	Treatment   string `json:"treatment"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	Patient     string `json:"patient"`
	PatientName string `json:"patientName"`
	Phone       string `json:"phone,omitempty"`
}
