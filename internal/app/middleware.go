package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(wrapper, r)

		slog.Info(fmt.Sprintf("%d - %s %s - %v", wrapper.statusCode, r.Method, r.URL.Path, time.Since(start)))
	})
}

// sessionLimiters throttles generation requests per session. One in-flight
// generation per user action is the expected shape; the limiter only guards
// against button mashing.
type sessionLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newSessionLimiters() *sessionLimiters {
	return &sessionLimiters{limiters: map[string]*rate.Limiter{}}
}

func (l *sessionLimiters) allow(sessionId string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[sessionId]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(2*time.Second), 3)
		l.limiters[sessionId] = limiter
	}

	return limiter.Allow()
}
