package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the day-granularity key used for every practice log.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// FormatDate renders t as a YYYY-MM-DD key in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateDate checks that s is a real calendar date in zero-padded ISO form.
// Round-tripping rejects inputs such as "2024-1-5".
func ValidateDate(s string) error {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}
