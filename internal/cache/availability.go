package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// TTL curto: o invalidador cobre as escritas que passam pela API, o TTL
// cobre qualquer escrita que não passe.
const availabilityTTL = 30 * time.Second

// Availability guarda listas de horários livres por (serviço, dia).
// Sem Redis configurado o cache vira no-op e tudo é calculado na hora.
type Availability struct {
	rdb *redis.Client
}

func NewAvailability(redisURL string) *Availability {
	if redisURL == "" {
		return &Availability{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return &Availability{}
	}

	return &Availability{rdb: redis.NewClient(opt)}
}

func (c *Availability) Enabled() bool {
	return c != nil && c.rdb != nil
}

func key(serviceID, day string) string {
	return "availability:" + serviceID + ":" + day
}

// Get devolve (slots, true) em hit. Erros de Redis contam como miss.
func (c *Availability) Get(ctx context.Context, serviceID, day string) ([]string, bool) {
	if !c.Enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(serviceID, day)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(ctx context.Context, serviceID, day string, slots []string) {
	if !c.Enabled() {
		return
	}

	b, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(serviceID, day), b, availabilityTTL)
}

// Invalidate descarta a lista de um dia após qualquer escrita no ledger.
func (c *Availability) Invalidate(ctx context.Context, serviceID, day string) {
	if !c.Enabled() {
		return
	}
	c.rdb.Del(ctx, key(serviceID, day))
}
