package booking

import (
	"regexp"
	"strconv"
	"time"

	"github.com/clientedev/luccy/internal/httperr"
)

type AvailabilityInput struct {
	ServiceID string
	Date      time.Time
}

type CreateInput struct {
	ClientName  string
	ClientPhone string
	ServiceID   string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

var reClock = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ValidateSlotTime confere formato HH:MM e alinhamento aos passos de 30min.
func ValidateSlotTime(hm string) error {
	m := reClock.FindStringSubmatch(hm)
	if m == nil {
		return httperr.ErrBusiness("invalid_format")
	}

	minute, _ := strconv.Atoi(m[2])
	if minute != 0 && minute != 30 {
		return httperr.ErrBusiness("invalid_alignment")
	}
	return nil
}
