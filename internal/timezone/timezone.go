package timezone

import "time"

const DefaultTimezone = "America/New_York"

var salonTZ = DefaultTimezone

// SetSalon changes the zone used by Now. Invalid names are ignored.
func SetSalon(tz string) {
	if IsValid(tz) {
		salonTZ = tz
	}
}

func Salon() string {
	return salonTZ
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(salonTZ))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
