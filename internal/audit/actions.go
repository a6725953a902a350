package audit

const (
	ActionBookingCreated = "booking_created"
	ActionServiceCreated = "service_created"
	ActionStylistCreated = "stylist_created"
	ActionAdminLogin     = "admin_login"
)

func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
