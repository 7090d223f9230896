package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	defaultAuthRPM    = 10
	limiterStaleAfter = 10 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter throttles credential endpoints per client IP.
type ipRateLimiter struct {
	rpm     int
	mu      sync.Mutex
	clients map[string]*limiterEntry
}

func newIPRateLimiter(rpm int) *ipRateLimiter {
	if rpm <= 0 {
		rpm = defaultAuthRPM
	}
	return &ipRateLimiter{
		rpm:     rpm,
		clients: map[string]*limiterEntry{},
	}
}

func (l *ipRateLimiter) middleware(c *gin.Context) {
	if !l.allow(clientIP(c)) {
		c.Header("Retry-After", "60")
		abortWithErrors(c, http.StatusTooManyRequests, "Too many requests")
		return
	}
	c.Next()
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.clients[ip]
	if !ok {
		entry = &limiterEntry{
			limiter:  rate.NewLimiter(rate.Limit(float64(l.rpm)/60.0), l.rpm),
			lastSeen: now,
		}
		l.clients[ip] = entry
		l.pruneLocked(now)
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

// pruneLocked drops entries not seen recently. Called with mu held, only when
// a new client appears, so steady traffic pays nothing.
func (l *ipRateLimiter) pruneLocked(now time.Time) {
	for ip, entry := range l.clients {
		if now.Sub(entry.lastSeen) > limiterStaleAfter {
			delete(l.clients, ip)
		}
	}
}

func clientIP(c *gin.Context) string {
	ip := c.ClientIP()
	if ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
