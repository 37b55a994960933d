package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/befit/internal/telemetry/metrics"
	"github.com/2beens/befit/pkg"

	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per client IP within the given router name.
// Routes with a {name} variable get a bucket per name.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limitKey(r, routerName)
			res, err := rateLimiter.Allow(
				r.Context(),
				key,
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limiter [%s]: %s", key, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			http.Error(
				w,
				fmt.Sprintf("retry after %.0f seconds", res.RetryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}

func limitKey(r *http.Request, routerName string) string {
	if name := mux.Vars(r)["name"]; name != "" {
		return fmt.Sprintf("%s:%s:%s", routerName, name, pkg.ClientIP(r))
	}
	return fmt.Sprintf("%s:%s", routerName, pkg.ClientIP(r))
}
