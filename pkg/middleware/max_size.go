package middleware

import (
	"fmt"
	"net/http"

	apperrors "roombook/pkg/errors"
)

// MaxRequestSize rejects bodies declared larger than maxBytes and caps the
// rest with http.MaxBytesReader. A non-positive limit disables the check.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if maxBytes <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				reject(w, apperrors.PayloadTooLarge(fmt.Sprintf("Request body exceeds %d bytes", maxBytes)))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
