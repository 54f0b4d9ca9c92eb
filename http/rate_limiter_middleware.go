package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware rejects clients that exhausted their bucket with 429
// and a Retry-After header in seconds.
func RateLimitMiddleware(limiter *RateLimiter, logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			ip := clientIP(r)

			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				logger.WithFields(logrus.Fields{"client": ip, "path": r.URL.Path}).Info("rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeError(w, logger, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
