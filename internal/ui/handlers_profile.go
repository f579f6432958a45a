package ui

import (
	"net/http"

	"github.com/me/glamgiant/internal/glamapi"
)

// HandleProfile shows the signed-in user's account.
func (ui *UI) HandleProfile(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromRequest(r)
	u, err := ui.client(r).GetUser(r.Context(), id.ID)
	if err != nil {
		ui.renderError(w, r, "Failed to load profile", err)
		return
	}
	data := ui.page(r, "Profile")
	data["User"] = u
	data["Form"] = profileForm{
		Name:              u.Name,
		Email:             u.Email,
		TestSubjectStatus: u.TestSubjectStatus,
		AllergicReactions: u.AllergicReactions,
	}
	ui.render(w, r, http.StatusOK, "profile", data)
}

// HandleProfileUpdate saves changed profile fields and then refreshes the
// session identity from the API so the new name and email show at once.
func (ui *UI) HandleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/profile", "error", "Invalid request")
		return
	}
	api := ui.client(r)
	sess := SessionFromContext(r.Context())
	id := sess.Current()

	u, err := api.GetUser(r.Context(), id.ID)
	if err != nil {
		ui.renderError(w, r, "Failed to load profile", err)
		return
	}
	form := profileForm{
		Name:              formString(r, "name"),
		Email:             formString(r, "email"),
		Password:          r.PostFormValue("password"),
		Confirm:           r.PostFormValue("confirm"),
		TestSubjectStatus: formBool(r, "test_subject_status"),
		AllergicReactions: formString(r, "allergic_reactions"),
	}
	if errs := (formErrors{}).check(form); errs != nil {
		data := ui.page(r, "Profile")
		data["User"] = u
		form.Password, form.Confirm = "", ""
		data["Form"] = form
		data["Errors"] = errs
		ui.render(w, r, http.StatusUnprocessableEntity, "profile", data)
		return
	}

	update := userDiff(u, form.Name, form.Email, form.Password, form.TestSubjectStatus, form.AllergicReactions)
	if update.Empty() {
		redirectWith(w, r, "/profile", "msg", "No changes")
		return
	}
	if _, err := api.UpdateUser(r.Context(), u.ID, update); err != nil {
		ui.logger.Warn("profile update failed", "user_id", u.ID, "error", err)
		redirectWith(w, r, "/profile", "error", "Failed to update profile: "+glamapi.Message(err))
		return
	}
	if _, err := sess.Identity.Refresh(r.Context(), api); err != nil {
		ui.logger.Error("refresh identity failed", "user_id", u.ID, "error", err)
		redirectWith(w, r, "/profile", "error", "Profile saved but the session could not be refreshed")
		return
	}
	ui.logger.Info("profile updated", "user_id", u.ID)
	redirectWith(w, r, "/profile", "msg", "Profile updated")
}
