package http

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/bizness/bizness-api/internal/application/dto"
)

// RateLimit límite de solicitudes por usuario. PerMinute ≤ 0 desactiva el límite.
type RateLimit struct {
	PerMinute int
	Burst     int
	ExpiresIn time.Duration // un bucket sin uso durante este tiempo se descarta
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore mantiene un token bucket por identificador.
type limiterStore struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	expiresIn time.Duration
	lastSweep time.Time
}

func newLimiterStore(cfg RateLimit) *limiterStore {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	expires := cfg.ExpiresIn
	if expires <= 0 {
		expires = 3 * time.Minute
	}
	return &limiterStore{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(time.Minute / time.Duration(cfg.PerMinute)),
		burst:     burst,
		expiresIn: expires,
	}
}

func (s *limiterStore) allow(id string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.expiresIn {
		for k, v := range s.visitors {
			if now.Sub(v.lastSeen) > s.expiresIn {
				delete(s.visitors, k)
			}
		}
		s.lastSweep = now
	}

	v, ok := s.visitors[id]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[id] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// RateLimitByUser limita las solicitudes por usuario autenticado (IP si no hay usuario en el contexto).
// Al superar el límite responde 429 RATE_LIMITED con Retry-After.
func RateLimitByUser(cfg RateLimit) fiber.Handler {
	if cfg.PerMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	store := newLimiterStore(cfg)
	retryAfter := strconv.Itoa(int(math.Ceil((time.Minute / time.Duration(cfg.PerMinute)).Seconds())))

	return func(c *fiber.Ctx) error {
		id := GetUserID(c)
		if id == "" {
			id = c.IP()
		}
		if !store.allow(id, time.Now()) {
			c.Set(fiber.HeaderRetryAfter, retryAfter)
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas solicitudes, intente más tarde",
			})
		}
		return c.Next()
	}
}
