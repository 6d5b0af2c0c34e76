package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var loc = time.FixedZone("test", -3*60*60)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func at(date time.Time, hm string) time.Time {
	t, _ := At(date, hm)
	return t
}

func TestOverlaps(t *testing.T) {
	d := day(2030, 5, 20)

	// [10:00, 11:00) x [10:30, 11:00)
	assert.True(t, Overlaps(at(d, "10:00"), 60, at(d, "10:30"), 30))

	// intervalos semiabertos: encostar não é cruzar
	assert.False(t, Overlaps(at(d, "10:00"), 60, at(d, "11:00"), 30))
	assert.False(t, Overlaps(at(d, "09:00"), 60, at(d, "08:00"), 60))

	// contido
	assert.True(t, Overlaps(at(d, "10:00"), 120, at(d, "10:30"), 30))
}

func TestBuildSlots_BlockedInterval(t *testing.T) {
	d := day(2030, 5, 20)
	now := day(2030, 5, 19) // véspera: nenhum corte por horário passado
	windows := []Window{{Start: "09:00", End: "21:00"}}

	// manicure de 1h já marcada às 10:00
	busy := []Busy{{Start: at(d, "10:00"), DurationMin: 60}}

	slots := BuildSlots(d, windows, 60, busy, now)

	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")
	assert.NotContains(t, slots, "09:30") // terminaria 10:30, dentro do bloqueio
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
}

func TestBuildSlots_FitsBeforeClose(t *testing.T) {
	d := day(2030, 5, 20)
	now := day(2030, 5, 19)
	windows := []Window{{Start: "09:00", End: "21:00"}}

	slots := BuildSlots(d, windows, 90, nil, now)

	// 19:30 + 1h30 = 21:00, termina exatamente no fechamento
	assert.Contains(t, slots, "19:30")
	assert.NotContains(t, slots, "20:00")
	assert.NotContains(t, slots, "20:30")
}

func TestBuildSlots_PastCutoff(t *testing.T) {
	d := day(2030, 5, 20)
	windows := []Window{{Start: "09:00", End: "12:00"}}

	// 10:05 + folga de 30min = corte em 10:35: 10:30 cai, 11:00 fica
	now := at(d, "10:05")
	slots := BuildSlots(d, windows, 30, nil, now)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "11:30")
}

func TestBuildSlots_DayFullyPast(t *testing.T) {
	d := day(2030, 5, 20)
	windows := []Window{{Start: "09:00", End: "12:00"}}

	now := at(d, "12:00")
	slots := BuildSlots(d, windows, 30, nil, now)

	assert.Empty(t, slots)
}

func TestBuildSlots_NoWindows(t *testing.T) {
	d := day(2030, 5, 20)
	slots := BuildSlots(d, nil, 60, nil, day(2030, 5, 19))
	assert.Empty(t, slots)
}

func TestBuildSlots_InvalidWindowIgnored(t *testing.T) {
	d := day(2030, 5, 20)
	now := day(2030, 5, 19)
	windows := []Window{
		{Start: "18:00", End: "09:00"}, // invertida
		{Start: "xx:yy", End: "12:00"}, // ilegível
		{Start: "14:00", End: "16:00"},
	}

	slots := BuildSlots(d, windows, 60, nil, now)
	assert.Equal(t, []string{"14:00", "14:30", "15:00"}, slots)
}

func TestBuildSlots_OverlappingWindowsDedupedAndSorted(t *testing.T) {
	d := day(2030, 5, 20)
	now := day(2030, 5, 19)
	windows := []Window{
		{Start: "14:00", End: "16:00"},
		{Start: "09:00", End: "15:00"},
	}

	slots := BuildSlots(d, windows, 60, nil, now)

	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
	assert.Contains(t, slots, "14:00") // presente nas duas janelas, uma vez só
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00"}, slots)
}

func TestBuildSlots_Idempotent(t *testing.T) {
	d := day(2030, 5, 20)
	now := day(2030, 5, 19)
	windows := []Window{{Start: "09:00", End: "21:00"}}
	busy := []Busy{{Start: at(d, "10:00"), DurationMin: 90}}

	first := BuildSlots(d, windows, 60, busy, now)
	second := BuildSlots(d, windows, 60, busy, now)

	assert.Equal(t, first, second)
}

func TestWithinWindows(t *testing.T) {
	windows := []Window{{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "18:00"}}

	assert.True(t, WithinWindows("09:00", 60, windows))
	assert.True(t, WithinWindows("11:00", 60, windows)) // termina no fechamento
	assert.False(t, WithinWindows("11:30", 60, windows))
	assert.True(t, WithinWindows("17:00", 60, windows))
	assert.False(t, WithinWindows("13:30", 60, windows)) // intervalo do almoço
	assert.False(t, WithinWindows("08:30", 60, windows))
	assert.False(t, WithinWindows("bogus", 60, windows))
	assert.False(t, WithinWindows("09:00", 60, nil))
}
