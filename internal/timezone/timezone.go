package timezone

import "time"

// Horário local do salão. O sistema inteiro opera em um único fuso.
const DefaultTimezone = "America/Sao_Paulo"

var salonLocation = mustLoad(DefaultTimezone)

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Configure troca o fuso do salão (chamado uma vez no boot, a partir do env).
func Configure(tz string) {
	if IsValid(tz) {
		salonLocation = mustLoad(tz)
	}
}

func Location() *time.Location {
	return salonLocation
}

func Now() time.Time {
	return time.Now().In(salonLocation)
}
