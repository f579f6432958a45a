// Package ui serves the GlamGiant console's server-rendered pages.
package ui

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/me/glamgiant/internal/cart"
	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/internal/store"
	"github.com/me/glamgiant/internal/table"
	"github.com/me/glamgiant/pkg/model"
)

// UI handles the web user interface.
type UI struct {
	api       *glamapi.Client
	sessions  *SessionManager
	carts     *cart.Registry
	logger    *slog.Logger
	startTime time.Time
	secure    bool
	pageSize  int

	// catalog memoizes product pages across requests; the product list is
	// the same for every viewer.
	catalog *table.View[model.Product]
}

// Config holds UI configuration.
type Config struct {
	Secure     bool          // Use secure cookies for HTTPS
	SessionTTL time.Duration // Browser session lifetime
	PageSize   int           // Rows per table page
}

// New creates a new UI handler.
func New(st store.Store, api *glamapi.Client, logger *slog.Logger, cfg Config) *UI {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = table.DefaultPageSize
	}
	return &UI{
		api:       api,
		sessions:  NewSessionManager(st, cfg.SessionTTL),
		carts:     cart.NewRegistry(),
		logger:    logger.With("component", "ui"),
		startTime: time.Now(),
		secure:    cfg.Secure,
		pageSize:  pageSize,
		catalog:   table.NewView(listing.Products(pageSize)),
	}
}

// Sessions returns the browser session manager.
func (ui *UI) Sessions() *SessionManager { return ui.sessions }

// page returns the template data every page shares.
func (ui *UI) page(r *http.Request, title string) map[string]any {
	id := IdentityFromRequest(r)
	q := r.URL.Query()
	return map[string]any{
		"Title":    title + " - GlamGiant",
		"Identity": id,
		"Nav":      guard.NavLinks(id),
		"Path":     r.URL.Path,
		"Flash":    q.Get("msg"),
		"Error":    q.Get("error"),
	}
}

func (ui *UI) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	var buf bytes.Buffer
	if err := renderTemplate(&buf, name, data); err != nil {
		ui.logger.Error("template render failed", "template", name, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError logs err and shows message. Upstream 404s render as not
// found; anything else is a 502 since the API server owns the data.
func (ui *UI) renderError(w http.ResponseWriter, r *http.Request, message string, err error) {
	if glamapi.IsStatus(err, http.StatusNotFound) {
		ui.renderNotFound(w, r, message)
		return
	}
	ui.logger.Error(message, "path", r.URL.Path, "error", err)
	data := ui.page(r, "Error")
	data["Message"] = message
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		data["Detail"] = apiErr.Message
	}
	ui.render(w, r, http.StatusBadGateway, "error", data)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	data := ui.page(r, "Not Found")
	data["Message"] = message
	ui.render(w, r, http.StatusNotFound, "error", data)
}

// redirectWith redirects to path with a flash message or error.
func redirectWith(w http.ResponseWriter, r *http.Request, path, key, msg string) {
	target := path
	if msg != "" {
		target += "?" + url.Values{key: {msg}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}
