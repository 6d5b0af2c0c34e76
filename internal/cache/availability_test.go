package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Availability {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewAvailability("redis://" + mr.Addr())
}

func TestAvailability_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, hit := c.Get(ctx, "svc-1", "2030-06-10")
	assert.False(t, hit)

	c.Set(ctx, "svc-1", "2030-06-10", []string{"09:00", "09:30"})

	slots, hit := c.Get(ctx, "svc-1", "2030-06-10")
	require.True(t, hit)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestAvailability_EmptyListIsCacheable(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "svc-1", "2030-06-10", []string{})

	slots, hit := c.Get(ctx, "svc-1", "2030-06-10")
	require.True(t, hit)
	assert.Empty(t, slots)
}

func TestAvailability_KeysAreScoped(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "svc-1", "2030-06-10", []string{"09:00"})

	_, hit := c.Get(ctx, "svc-2", "2030-06-10")
	assert.False(t, hit)

	_, hit = c.Get(ctx, "svc-1", "2030-06-11")
	assert.False(t, hit)
}

func TestAvailability_Invalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "svc-1", "2030-06-10", []string{"09:00"})
	c.Invalidate(ctx, "svc-1", "2030-06-10")

	_, hit := c.Get(ctx, "svc-1", "2030-06-10")
	assert.False(t, hit)
}

func TestAvailability_DisabledIsNoop(t *testing.T) {
	c := NewAvailability("")
	ctx := context.Background()

	assert.False(t, c.Enabled())

	c.Set(ctx, "svc-1", "2030-06-10", []string{"09:00"})
	_, hit := c.Get(ctx, "svc-1", "2030-06-10")
	assert.False(t, hit)

	bad := NewAvailability("::not-a-url::")
	assert.False(t, bad.Enabled())
}
