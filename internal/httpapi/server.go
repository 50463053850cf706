package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"suggestd/internal/generator"
	"suggestd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Complete(ctx context.Context, req types.CompleteRequest) (generator.Result, error)
	Ready() bool
}

// NewMux builds the front-door router.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Single-origin CORS for the local editor frontend; preflight cached 1h.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeSeconds,
	}))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(MetricsMiddleware)

	r.Post("/api/complete", func(w http.ResponseWriter, r *http.Request) { handleComplete(svc, w, r) })

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleComplete drives the in-process generation pipeline.
//
// @Summary      Generate autocomplete suggestions
// @Accept       json
// @Produce      json
// @Param        request body types.CompleteRequest true "completion request"
// @Success      200 {object} types.CompleteResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /api/complete [post]
func handleComplete(svc Service, w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	lvl := requestLogLevel(r)
	if lvl >= LevelInfo {
		if zlog != nil {
			z := zlog.Info().Str("path", r.URL.Path).Str("text", clip(req.Text, 50))
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				z = z.Str("request_id", rid)
			}
			z.Msg("complete start")
		} else {
			log.Printf("complete start path=%s text=%q", r.URL.Path, clip(req.Text, 50))
		}
	}

	start := time.Now()
	// Join server base context with request context so shutdown is observed
	// between samples; an in-flight sample still runs to completion.
	joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	res, err := svc.Complete(joinedCtx, req)
	if err != nil {
		status := http.StatusInternalServerError
		if he, ok := err.(HTTPError); ok {
			status = he.StatusCode()
		}
		writeJSONError(w, status, err.Error())
		if lvl >= LevelError {
			if zlog != nil {
				z := zlog.Error().Int("status", status).Dur("dur", time.Since(start))
				if rid := middleware.GetReqID(r.Context()); rid != "" {
					z = z.Str("request_id", rid)
				}
				z.Err(err).Msg("complete end")
			} else {
				log.Printf("complete end status=%d dur=%s err=%v", status, time.Since(start), err)
			}
		}
		return
	}
	total := time.Since(start)

	w.Header().Set("Content-Type", "application/json")
	resp := types.CompleteResponse{
		Suggestions:            res.Suggestions,
		LatencyMS:              float64(total) / float64(time.Millisecond),
		ServerProcessingTimeMS: float64(res.GenerationTime) / float64(time.Millisecond),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	if lvl >= LevelInfo {
		if zlog != nil {
			z := zlog.Info().Str("status", "200").Int("suggestions", len(res.Suggestions)).
				Dur("generation", res.GenerationTime).Dur("total", total)
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				z = z.Str("request_id", rid)
			}
			z.Msg("complete end")
		} else {
			log.Printf("complete end status=200 suggestions=%d generation=%s total=%s",
				len(res.Suggestions), res.GenerationTime, total)
		}
	}
}

// clip bounds a log field to n bytes.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
