package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const (
	orderNumberPrefix = "ORD"
	// counters expire well after the day rolls over so retries near
	// midnight still see the old value
	counterTTL = 48 * time.Hour
)

// OrderNumberGenerator produces human-readable order numbers of the form
// ORD-YYYYMMDD-NNN where NNN is a per-day sequence.
type OrderNumberGenerator interface {
	Next(ctx context.Context) string
}

type dailyCounter interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	CounterKey(name string) string
}

type redisOrderNumbers struct {
	counter dailyCounter
	now     func() time.Time
}

// NewOrderNumberGenerator builds a generator backed by a Redis daily
// counter. When the counter is unreachable a random suffix is used instead;
// the unique index on order_number still rejects the rare collision.
func NewOrderNumberGenerator(counter dailyCounter) (OrderNumberGenerator, error) {
	if counter == nil {
		return nil, fmt.Errorf("counter required")
	}
	return &redisOrderNumbers{counter: counter, now: time.Now}, nil
}

func (g *redisOrderNumbers) Next(ctx context.Context) string {
	day := g.now().UTC().Format("20060102")

	seq, err := g.counter.IncrWithTTL(ctx, g.counter.CounterKey("orders:"+day), counterTTL)
	if err != nil || seq <= 0 {
		seq = int64(rand.Intn(999) + 1)
	}
	return fmt.Sprintf("%s-%s-%03d", orderNumberPrefix, day, seq)
}
