package middleware

import (
    "log"
    "net/http"
    "time"
)

func LoggingMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()

        // Create a custom response writer to capture status and size
        wrw := &responseWriter{
            ResponseWriter: w,
            status:         http.StatusOK,
        }

        // Process request
        next.ServeHTTP(wrw, r)

        // Log request details including the query string, since lookups
        // are keyed entirely by query parameters
        duration := time.Since(start)
        log.Printf(
            "%s - [%s] %s %s %d %dB %v",
            r.RemoteAddr,
            time.Now().Format(time.RFC3339),
            r.Method,
            r.URL.RequestURI(),
            wrw.status,
            wrw.bytes,
            duration,
        )
    })
}

type responseWriter struct {
    http.ResponseWriter
    status int
    bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
    rw.status = code
    rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
    n, err := rw.ResponseWriter.Write(b)
    rw.bytes += n
    return n, err
}
