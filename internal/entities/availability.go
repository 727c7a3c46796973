package entities

// ServiceAvailability is a catalog entry with its slot list reduced to the
// slots still open on the requested date.
type ServiceAvailability struct {
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
}
