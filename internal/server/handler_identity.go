package server

import (
	"net/http"

	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/pkg/model"
)

type whoamiResponse struct {
	*model.Identity
	Dashboard string          `json:"dashboard"`
	Nav       []guard.NavLink `json:"nav"`
}

func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromContext(r.Context())
	respondOK(w, RequestIDFromContext(r.Context()), whoamiResponse{
		Identity:  id,
		Dashboard: guard.DashboardPath(id.Role),
		Nav:       guard.NavLinks(id),
	})
}

type viewAccess struct {
	Path         string       `json:"path"`
	Title        string       `json:"title"`
	AllowedRoles []model.Role `json:"allowed_roles"`
	Outcome      string       `json:"outcome"`
	Location     string       `json:"location,omitempty"`
}

func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromContext(r.Context())
	views := guard.Views()
	out := make([]viewAccess, 0, len(views))
	for _, d := range views {
		dec := guard.Check(d, id)
		out = append(out, viewAccess{
			Path:         d.Path,
			Title:        d.Title,
			AllowedRoles: d.AllowedRoles,
			Outcome:      dec.Outcome.String(),
			Location:     dec.Location,
		})
	}
	respondList(w, RequestIDFromContext(r.Context()), out, &model.Pagination{
		Total:      len(out),
		Page:       1,
		PageSize:   len(out),
		TotalPages: 1,
	})
}

type cleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

func (s *Server) handleSessionCleanup(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	n, err := s.ui.Sessions().CleanupExpiredSessions(r.Context())
	if err != nil {
		s.logger.Error("session cleanup failed", "error", err, "request_id", reqID)
		respondError(w, reqID, http.StatusInternalServerError, &model.APIError{
			Code:    model.ErrInternal,
			Message: "session cleanup failed",
		})
		return
	}
	s.logger.Info("expired sessions deleted", "count", n, "by", IdentityFromContext(r.Context()).ID)
	respondOK(w, reqID, cleanupResponse{Deleted: n})
}
