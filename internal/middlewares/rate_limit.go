package middlewares

//go:generate mockgen -source=rate_limit.go -destination=rate_limit_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-accounts/internal/apperr"
	"github.com/sbilibin2017/gw-accounts/internal/logger"
)

// Counter counts hits of a key within the current window.
type Counter interface {
	Increment(ctx context.Context, key string) (int64, error)
}

// RateLimitMiddleware rejects clients that exceed limit requests per window.
// Requests pass through when the counter itself fails.
func RateLimitMiddleware(counter Counter, limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits, err := counter.Increment(r.Context(), clientIP(r))
			if err != nil {
				logger.Log.Warnw("rate limiter unavailable", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - hits
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if hits > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"status":  "failed",
					"message": apperr.MsgTooManyRequests,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
