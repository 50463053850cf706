package httpapi

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// corsMaxAgeSeconds caches preflight responses for one hour.
const corsMaxAgeSeconds = 3600

// DefaultCORSOrigin is the frontend origin allowed when none is configured.
const DefaultCORSOrigin = "http://localhost:5173"

// corsOrigin is the single allowed origin for the front door.
var corsOrigin = DefaultCORSOrigin

// SetCORSOrigin restricts CORS to the given origin. Empty restores the default.
func SetCORSOrigin(origin string) {
	if origin == "" {
		corsOrigin = DefaultCORSOrigin
		return
	}
	corsOrigin = origin
}
