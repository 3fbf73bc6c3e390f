package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/horizonlabs/media-analytics-go/internal/metrics"
	"github.com/horizonlabs/media-analytics-go/internal/store"
	"github.com/horizonlabs/media-analytics-go/internal/utils"
)

var availableRoutes = []string{
	"/api/health",
	"/api/metadata",
	"/api/media-performance/partners",
	"/api/media-performance/partner-tactics",
	"/api/media-performance/trends",
	"/api/media-performance/channels",
	"/api/media-performance/global-metrics",
	"/api/media-performance/comparisons",
	"/api/media-performance/tickers",
}

func NewRouter(log *slog.Logger, svc *metrics.Service, ds *store.Dataset, defaultPeriod int) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.SecurityHeaders)
	mux.Use(utils.Metrics)

	mux.Handle("/metrics", utils.PromHandler())

	mux.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"message":     "Media performance API is running",
			"environment": env,
			"version":     "1.0.0",
		})
	})

	mux.Get("/api/metadata", func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.Metadata(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	})

	mux.Post("/api/reload", func(w http.ResponseWriter, r *http.Request) {
		n, err := ds.Reload(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reloaded": n})
	})

	mux.Route("/api/media-performance", func(r chi.Router) {
		r.Get("/partners", func(w http.ResponseWriter, r *http.Request) {
			view, err := svc.Partners(r.Context(), periodParam(r, defaultPeriod))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})

		r.Get("/partner-tactics", func(w http.ResponseWriter, r *http.Request) {
			view, err := svc.PartnerTactics(r.Context(), periodParam(r, defaultPeriod), r.URL.Query().Get("partner"))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})

		r.Get("/trends", func(w http.ResponseWriter, r *http.Request) {
			groupBy := r.URL.Query().Get("groupBy")
			if groupBy == "" {
				groupBy = "week"
			}
			view, err := svc.Trends(r.Context(), periodParam(r, defaultPeriod), groupBy)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})

		r.Get("/channels", func(w http.ResponseWriter, r *http.Request) {
			view, err := svc.Channels(r.Context(), periodParam(r, defaultPeriod))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})

		r.Get("/global-metrics", func(w http.ResponseWriter, r *http.Request) {
			view, err := svc.GlobalMetrics(r.Context(), periodParam(r, defaultPeriod))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})

		r.Get("/comparisons", func(w http.ResponseWriter, r *http.Request) {
			view, err := svc.Comparisons(r.Context(), periodParam(r, defaultPeriod))
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})

		r.Get("/tickers", func(w http.ResponseWriter, r *http.Request) {
			view, err := svc.Tickers(r.Context())
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, view)
		})
	})

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error":           "Route not found",
				"requestedPath":   r.URL.Path,
				"availableRoutes": availableRoutes,
			})
			return
		}
		http.NotFound(w, r)
	})

	return mux
}

// periodParam coerces the period query best-effort: non-numeric or
// non-positive values fall back to the default rather than erroring.
func periodParam(r *http.Request, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get("period"))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
