package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/himakhaitan/hexkv/engine"
	"github.com/himakhaitan/hexkv/pkg/config"
	"github.com/himakhaitan/hexkv/types"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. A bulk payload of 10k pairs is ~700KB.
const maxBodyBytes = 8 << 20

// NewMux constructs the HTTP mux with all routes
func NewMux(gw *engine.Gateway, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := gw.Health(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok"})
	})

	mux.HandleFunc("PUT /{key}", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Detail: "Unreadable body"})
			return
		}
		if err := gw.Write(r.Context(), r.PathValue("key"), strings.TrimSpace(string(body))); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})

	mux.HandleFunc("GET /{key}", func(w http.ResponseWriter, r *http.Request) {
		value, err := gw.Read(r.Context(), r.PathValue("key"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, value)
	})

	mux.HandleFunc("DELETE /{key}", func(w http.ResponseWriter, r *http.Request) {
		if err := gw.Delete(r.Context(), r.PathValue("key")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("POST /bulk", func(w http.ResponseWriter, r *http.Request) {
		var req engine.BulkRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Detail: "Invalid JSON object"})
			return
		}
		stored, err := gw.BulkWrite(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.BulkResponse{Stored: stored})
	})

	mux.HandleFunc("GET /stats/count", func(w http.ResponseWriter, r *http.Request) {
		n, err := gw.KeyCount(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.KeyCountResponse{KeyCount: n})
	})

	mux.HandleFunc("GET /stats/count/{pattern}", func(w http.ResponseWriter, r *http.Request) {
		pattern := r.PathValue("pattern")
		n, err := gw.PatternCount(r.Context(), pattern)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.PatternCountResponse{Pattern: pattern, Count: n})
	})

	mux.HandleFunc("GET /stats/info", func(w http.ResponseWriter, r *http.Request) {
		info, err := gw.ServerInfo(r.Context(), r.URL.Query().Get("section"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	})

	mux.HandleFunc("GET /stats/memory", func(w http.ResponseWriter, r *http.Request) {
		stats, err := gw.MemoryStats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	mux.HandleFunc("GET /stats/operations", func(w http.ResponseWriter, r *http.Request) {
		stats, err := gw.OperationStats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		snap, err := gw.AllStats(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	mux.HandleFunc("GET /metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	return Recover(logger)(Instrument(logger)(mux))
}

// statusFor maps gateway errors to HTTP status codes and details.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, engine.ErrInvalidFormat):
		return http.StatusBadRequest, "Invalid hex format"
	case errors.Is(err, engine.ErrEmptyPayload):
		return http.StatusBadRequest, "Empty payload"
	case errors.Is(err, engine.ErrNotFound):
		return http.StatusNotFound, "Key not found"
	case errors.Is(err, engine.ErrDeleteMismatch):
		return http.StatusInternalServerError, "Delete mismatch"
	case errors.Is(err, engine.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Store unavailable"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, detail := statusFor(err)
	writeJSON(w, status, types.ErrorResponse{Detail: detail})
}

// writeJSON encodes v before writing the header, so a value that cannot be
// encoded becomes a 500 instead of a truncated response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(types.ErrorResponse{Detail: "Internal Server Error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// NewHTTPServer constructs the http.Server with configured addr
func NewHTTPServer(handler http.Handler, cfg *config.Config) *http.Server {
	return &http.Server{Addr: cfg.Addr, Handler: handler}
}

// RegisterHooks starts and stops the server using fx Lifecycle
func RegisterHooks(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting hex key-value gateway", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("Server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping hex key-value gateway")
			return server.Shutdown(ctx)
		},
	})
}
