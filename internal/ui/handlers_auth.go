package ui

import (
	"context"
	"errors"
	"net/http"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/internal/identity"
	"github.com/me/glamgiant/pkg/model"
)

// HandleHome sends signed-in users to their dashboard and everyone else to
// the login page.
func (ui *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	if id := IdentityFromRequest(r); id != nil {
		http.Redirect(w, r, guard.DashboardPath(id.Role), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if id := IdentityFromRequest(r); id != nil {
		http.Redirect(w, r, guard.DashboardPath(id.Role), http.StatusSeeOther)
		return
	}
	data := ui.page(r, "Login")
	data["Form"] = loginForm{}
	ui.render(w, r, http.StatusOK, "login", data)
}

// HandleLoginPost authenticates against the API. Every login starts a fresh
// browser session; the previous one, if any, is discarded.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, guard.LoginPath, "error", "Invalid request")
		return
	}
	form := loginForm{Email: formString(r, "email"), Password: r.PostFormValue("password")}
	if errs := (formErrors{}).check(form); errs != nil {
		data := ui.page(r, "Login")
		data["Form"] = form
		data["Errors"] = errs
		ui.render(w, r, http.StatusUnprocessableEntity, "login", data)
		return
	}

	ctx := r.Context()
	if old := SessionFromContext(ctx); old != nil && old.Browser != nil {
		ui.dropSession(ctx, old.Browser.ID)
		ui.carts.Clear(old.Browser.ID)
	}

	bs, err := ui.sessions.CreateSession(ctx)
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		redirectWith(w, r, guard.LoginPath, "error", "Session creation failed")
		return
	}
	ids := identity.NewSessionStore(ui.sessions.Values(bs), ui.api, ui.logger)
	id, err := ids.Login(ctx, form.Email, form.Password)
	if err != nil {
		ui.dropSession(ctx, bs.ID)
		var authErr *identity.AuthenticationError
		if errors.As(err, &authErr) {
			ui.logger.Warn("login failed", "email", form.Email, "error", err)
			data := ui.page(r, "Login")
			data["Form"] = loginForm{Email: form.Email}
			data["Error"] = "Invalid email or password"
			ui.render(w, r, http.StatusUnauthorized, "login", data)
			return
		}
		ui.renderError(w, r, "Login failed", err)
		return
	}

	SetSessionCookie(w, bs, ui.secure)
	ui.logger.Info("user logged in", "user_id", id.ID, "role", id.Role, "session", bs.ID[:13])
	http.Redirect(w, r, guard.DashboardPath(id.Role), http.StatusSeeOther)
}

// HandleLogout clears the identity and the browser session.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if sess := SessionFromContext(ctx); sess != nil {
		if err := sess.Identity.Logout(ctx); err != nil {
			ui.logger.Error("logout failed", "error", err)
		}
		if sess.Browser != nil {
			ui.carts.Clear(sess.Browser.ID)
			ui.dropSession(ctx, sess.Browser.ID)
		}
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, guard.LoginPath, http.StatusSeeOther)
}

// dropSession deletes a browser session. A failure only leaves a row for
// the expiry sweep, so it is logged and not surfaced.
func (ui *UI) dropSession(ctx context.Context, id string) {
	if err := ui.sessions.DeleteSession(ctx, id); err != nil {
		ui.logger.Warn("delete session failed", "session", id[:min(len(id), 13)], "error", err)
	}
}

// HandleRegister renders the sign-up form.
func (ui *UI) HandleRegister(w http.ResponseWriter, r *http.Request) {
	data := ui.page(r, "Register")
	data["Form"] = registerForm{}
	ui.render(w, r, http.StatusOK, "register", data)
}

// HandleRegisterPost creates a client account.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/register", "error", "Invalid request")
		return
	}
	form := registerForm{
		Name:     formString(r, "name"),
		Email:    formString(r, "email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
	}
	if errs := (formErrors{}).check(form); errs != nil {
		data := ui.page(r, "Register")
		data["Form"] = registerForm{Name: form.Name, Email: form.Email}
		data["Errors"] = errs
		ui.render(w, r, http.StatusUnprocessableEntity, "register", data)
		return
	}

	_, err := ui.api.Register(r.Context(), model.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     model.RoleClient,
	})
	if err != nil {
		ui.logger.Warn("registration failed", "email", form.Email, "error", err)
		data := ui.page(r, "Register")
		data["Form"] = registerForm{Name: form.Name, Email: form.Email}
		data["Error"] = glamapi.Message(err)
		ui.render(w, r, http.StatusUnprocessableEntity, "register", data)
		return
	}
	redirectWith(w, r, guard.LoginPath, "msg", "Account created, please sign in")
}

// HandleUnauthorized renders the access-denied page.
func (ui *UI) HandleUnauthorized(w http.ResponseWriter, r *http.Request) {
	data := ui.page(r, "Unauthorized")
	if id := IdentityFromRequest(r); id != nil {
		data["Home"] = guard.DashboardPath(id.Role)
	}
	ui.render(w, r, http.StatusForbidden, "unauthorized", data)
}

// HandleNotFound renders the 404 page.
func (ui *UI) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	ui.renderNotFound(w, r, "Page not found")
}
