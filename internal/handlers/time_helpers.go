package handlers

import (
	"time"

	"github.com/clientedev/luccy/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}
