// Package ratelimit applies a token bucket per caller, sized by tier.
package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	auth "github.com/mind-engage/eduport/internal/auth/middleware"
	"github.com/mind-engage/eduport/internal/rbac"
)

// Limit is a bucket refilling Burst tokens every Per. Zero Per means unlimited.
type Limit struct {
	Burst int
	Per   time.Duration
}

func (l Limit) unlimited() bool { return l.Per == 0 }

func (l Limit) limiter() *rate.Limiter {
	if l.unlimited() {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(l.Per/time.Duration(l.Burst)), l.Burst)
}

var DefaultLimits = map[string]Limit{
	rbac.TierAnonymous:  {Burst: 10, Per: time.Minute},
	rbac.TierFree:       {Burst: 10, Per: time.Minute},
	rbac.TierPro:        {Burst: 10, Per: time.Second},
	rbac.TierEnterprise: {Burst: 100, Per: time.Second},
	rbac.TierAdmin:      {},
}

const idleAfter = 10 * time.Minute

type entry struct {
	lim  *rate.Limiter
	seen time.Time
}

type Limiter struct {
	limits map[string]Limit
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*entry
	calls   int
}

func New(limits map[string]Limit) *Limiter {
	if limits == nil {
		limits = DefaultLimits
	}
	return &Limiter{limits: limits, now: time.Now, buckets: map[string]*entry{}}
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int // -1 when unlimited
	Remaining int
	Retry     time.Duration
}

// Allow takes one token from id's bucket. Unknown tiers get the anonymous limit.
func (l *Limiter) Allow(id, tier string) Decision {
	lim, ok := l.limits[tier]
	if !ok {
		lim = l.limits[rbac.TierAnonymous]
	}
	if lim.unlimited() {
		return Decision{Allowed: true, Limit: -1, Remaining: -1}
	}

	now := l.now()
	key := tier + ":" + id
	l.mu.Lock()
	e, ok := l.buckets[key]
	if !ok {
		e = &entry{lim: lim.limiter()}
		l.buckets[key] = e
	}
	e.seen = now
	l.calls++
	if l.calls%1024 == 0 {
		l.sweepLocked(now)
	}
	l.mu.Unlock()

	d := Decision{Limit: lim.Burst}
	r := e.lim.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		d.Retry = delay
	} else {
		d.Allowed = true
	}
	d.Remaining = int(math.Max(0, math.Floor(e.lim.TokensAt(now))))
	return d
}

func (l *Limiter) sweepLocked(now time.Time) {
	for k, e := range l.buckets {
		if now.Sub(e.seen) > idleAfter {
			delete(l.buckets, k)
		}
	}
}

// Middleware keys callers by subject, falling back to the client address.
// Run it after the auth middleware so the tier is known.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.SubjectFromContext(r.Context())
		if id == "" {
			id = clientIP(r)
		}
		d := l.Allow(id, rbac.TierFromContext(r.Context()))
		if d.Limit >= 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		}
		if !d.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(d.Retry.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
