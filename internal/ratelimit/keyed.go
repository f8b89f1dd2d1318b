package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxKeys bounds the number of tracked keys before idle buckets are pruned.
const maxKeys = 10000

// Keyed holds one token bucket per key, e.g. per e-mail or per client IP.
type Keyed struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func NewKeyed(limit rate.Limit, burst int) *Keyed {
	return &Keyed{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow consumes one token for key at now. When the bucket is empty it returns
// how long the caller has to wait for the next token.
func (k *Keyed) Allow(key string, now time.Time) (time.Duration, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	lim, ok := k.limiters[key]
	if !ok {
		if len(k.limiters) >= maxKeys {
			k.prune(now)
		}
		lim = rate.NewLimiter(k.limit, k.burst)
		k.limiters[key] = lim
	}

	if lim.AllowN(now, 1) {
		return 0, true
	}

	r := lim.ReserveN(now, 1)
	defer r.CancelAt(now)
	return r.DelayFrom(now), false
}

// prune drops buckets that refilled completely, they behave like fresh ones.
func (k *Keyed) prune(now time.Time) {
	for key, lim := range k.limiters {
		if lim.TokensAt(now) >= float64(k.burst) {
			delete(k.limiters, key)
		}
	}
}

func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}
