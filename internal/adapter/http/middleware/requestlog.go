package middleware

import (
	"net/http"
	"time"

	"github.com/bnema/vodpipe/internal/infrastructure/logger"
)

// RequestLog logs one line per request once the handler returns.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		line := "%s %s %d %dB %s"
		args := []any{r.Method, logger.SanitizeForLog(r.URL.Path), rec.status, rec.bytes, time.Since(start).Round(time.Microsecond)}
		switch {
		case rec.status >= 500:
			logger.Error.Printf(line, args...)
		case r.URL.Path == "/healthz" || r.URL.Path == "/metrics":
			logger.Debug.Printf(line, args...)
		default:
			logger.Info.Printf(line, args...)
		}
	})
}
