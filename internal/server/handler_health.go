package server

import (
	"context"
	"net/http"
	"runtime"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Store     string `json:"store"`
	API       string `json:"api"`
}

// Version is the console version reported by /health.
const Version = "0.1.0"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:    "healthy",
		Version:   Version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Store:     "ok",
		API:       s.api.BaseURL,
	}
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Error("store ping failed", "error", err)
		resp.Status = "degraded"
		resp.Store = "unreachable"
	}
	respondOK(w, reqID, resp)
}
