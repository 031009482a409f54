package dayinfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"dayinfo-api/internal/models"
)

var validate = validator.New()

// ValidationError reports a client input problem. Nothing is fetched when it
// is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type dayInfoQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
	City string
}

// ParseRequest validates the raw query values. The date must be an ISO
// calendar date (YYYY-MM-DD); the city is taken as-is.
func ParseRequest(date, city string) (models.DayInfoRequest, error) {
	q := dayInfoQuery{Date: date, City: city}

	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
			return models.DayInfoRequest{}, &ValidationError{Field: "date", Message: "missing required parameter"}
		}
		return models.DayInfoRequest{}, &ValidationError{Field: "date", Message: "invalid date format, expected YYYY-MM-DD"}
	}

	parsed, err := time.Parse(models.DateLayout, q.Date)
	if err != nil {
		return models.DayInfoRequest{}, &ValidationError{Field: "date", Message: "invalid date format, expected YYYY-MM-DD"}
	}

	return models.DayInfoRequest{
		Date: parsed,
		City: q.City,
	}, nil
}
