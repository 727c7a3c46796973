package entities

type BookingEmailData struct {
	PatientName string
	Treatment   string
	Date        string
	Slot        string
	CurrentYear int
}
