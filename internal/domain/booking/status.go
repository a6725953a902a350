package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
)

// InitialStatus is forced on every new booking; there is no pending or
// review state and nothing moves a booking out of it.
func InitialStatus() Status {
	return StatusConfirmed
}
