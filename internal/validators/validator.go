package validators

import (
	"errors"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate

	clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Get returns the shared validator with the salon's custom tags registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return IsClock(fl.Field().String())
		})
	})
	return validate
}

func Struct(v any) error {
	return Get().Struct(v)
}

// IsClock accepts 24h "HH:MM" times.
func IsClock(s string) bool {
	return clockRe.MatchString(s)
}

// FirstField returns the struct field name of the first failed rule, or "".
func FirstField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}
