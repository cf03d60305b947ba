package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestID tags every request with a uuid and logs method, path and
// duration once the handler returns.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s %s", id, r.Method, r.URL.Path, time.Since(start))
	})
}
