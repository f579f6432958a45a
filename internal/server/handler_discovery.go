package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "GlamGiant Console API",
		Version:     "v1",
		Description: "Identity and access information for the GlamGiant admin console",
		Endpoints: []endpointInfo{
			{"/api/v1/health", []string{"GET"}, "Console health and version"},
			{"/api/v1/whoami", []string{"GET"}, "Identity of the bearer token or session cookie"},
			{"/api/v1/views", []string{"GET"}, "Protected views and whether the caller may open them"},
			{"/api/v1/admin/sessions/cleanup", []string{"POST"}, "Delete expired browser sessions (admin)"},
		},
	})
}
