package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/befit/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const unnamedRoute = "unnamed"

// PanicRecovery turns a handler panic into a 500 and counts it per route.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				route := recoveryRouteName(r)
				log.WithFields(log.Fields{
					"route":  route,
					"method": r.Method,
					"path":   r.URL.Path,
				}).Errorf("recovered handler panic: %v\n%s", recovered, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterRecoveredPanics.WithLabelValues(route).Inc()
				}
				http.Error(w, "befit: something went wrong", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func recoveryRouteName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
		return route.GetName()
	}
	return unnamedRoute
}
