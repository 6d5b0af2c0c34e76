package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clientedev/luccy/internal/httperr"
)

func TestValidateSlotTime(t *testing.T) {
	assert.NoError(t, ValidateSlotTime("09:00"))
	assert.NoError(t, ValidateSlotTime("09:30"))
	assert.NoError(t, ValidateSlotTime("00:00"))
	assert.NoError(t, ValidateSlotTime("23:30"))

	for _, bad := range []string{"9:00", "09:0", "24:00", "09:60", "0900", "", "ab:cd"} {
		err := ValidateSlotTime(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_format"), "input %q", bad)
	}

	for _, off := range []string{"09:15", "09:45", "10:01", "23:59"} {
		err := ValidateSlotTime(off)
		assert.True(t, httperr.IsBusiness(err, "invalid_alignment"), "input %q", off)
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.True(t, StatusCompleted.Blocks())
	assert.False(t, StatusCancelled.Blocks())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		assert.True(t, IsValidStatus(s), s)
	}
	assert.False(t, IsValidStatus("done"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Pending"))
}
