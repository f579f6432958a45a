package ui

import (
	"net/http"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

const usersPath = "/users-management"

// HandleUsers renders the user list and the new-user form.
func (ui *UI) HandleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := ui.client(r).ListUsers(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load users", err)
		return
	}
	ui.renderUsers(w, r, http.StatusOK, users, userForm{Role: string(model.RoleClient)}, nil)
}

func (ui *UI) renderUsers(w http.ResponseWriter, r *http.Request, status int, users []model.User, form userForm, errs map[string]string) {
	st := parseTableState(r)
	res := listing.Users(ui.pageSize).Apply(users, st.Query())

	data := ui.page(r, "Users")
	data["Users"] = res.Items
	data["Table"] = newTableNav(usersPath, st, res)
	data["Form"] = form
	data["Errors"] = errs
	data["Roles"] = model.Roles()
	ui.render(w, r, status, "users", data)
}

// HandleUserCreate creates an account with any role.
func (ui *UI) HandleUserCreate(w http.ResponseWriter, r *http.Request) {
	form, ok := parseUserForm(w, r, usersPath)
	if !ok {
		return
	}
	if errs := (formErrors{}).check(form); errs != nil || form.Password == "" {
		if errs == nil {
			errs = map[string]string{}
		}
		if form.Password == "" {
			errs["password"] = "is required"
		}
		users, err := ui.client(r).ListUsers(r.Context())
		if err != nil {
			ui.renderError(w, r, "Failed to load users", err)
			return
		}
		form.Password = ""
		ui.renderUsers(w, r, http.StatusUnprocessableEntity, users, form, errs)
		return
	}

	role, _ := model.ParseRole(form.Role)
	u, err := ui.client(r).CreateUser(r.Context(), model.UserInput{
		Name:              form.Name,
		Email:             form.Email,
		Password:          form.Password,
		Role:              role,
		TestSubjectStatus: form.TestSubjectStatus,
		AllergicReactions: form.AllergicReactions,
	})
	if err != nil {
		ui.logger.Warn("create user failed", "email", form.Email, "error", err)
		redirectWith(w, r, usersPath, "error", "Failed to create user: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("user created", "user_id", u.ID, "role", u.Role, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, usersPath, "msg", "User "+u.Email+" created")
}

// HandleUserEdit renders the edit form for one user.
func (ui *UI) HandleUserEdit(w http.ResponseWriter, r *http.Request) {
	u, err := ui.client(r).GetUser(r.Context(), pathParam(r, "id"))
	if err != nil {
		ui.renderError(w, r, "User not found", err)
		return
	}
	data := ui.page(r, "Edit User")
	data["User"] = u
	data["Form"] = userForm{
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		TestSubjectStatus: u.TestSubjectStatus,
		AllergicReactions: u.AllergicReactions,
	}
	data["Roles"] = model.Roles()
	ui.render(w, r, http.StatusOK, "user_form", data)
}

// HandleUserUpdate sends only the fields that changed.
func (ui *UI) HandleUserUpdate(w http.ResponseWriter, r *http.Request) {
	api := ui.client(r)
	u, err := api.GetUser(r.Context(), pathParam(r, "id"))
	if err != nil {
		ui.renderError(w, r, "User not found", err)
		return
	}
	back := usersPath + "/" + u.ID + "/edit"
	form, ok := parseUserForm(w, r, back)
	if !ok {
		return
	}
	if errs := (formErrors{}).check(form); errs != nil {
		data := ui.page(r, "Edit User")
		data["User"] = u
		form.Password = ""
		data["Form"] = form
		data["Errors"] = errs
		data["Roles"] = model.Roles()
		ui.render(w, r, http.StatusUnprocessableEntity, "user_form", data)
		return
	}

	role, _ := model.ParseRole(form.Role)
	update := userDiff(u, form.Name, form.Email, form.Password, form.TestSubjectStatus, form.AllergicReactions)
	if role != u.Role {
		update.Role = &role
	}
	if update.Empty() {
		redirectWith(w, r, usersPath, "msg", "No changes")
		return
	}
	if _, err := api.UpdateUser(r.Context(), u.ID, update); err != nil {
		ui.logger.Warn("update user failed", "user_id", u.ID, "error", err)
		redirectWith(w, r, back, "error", "Failed to update user: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("user updated", "user_id", u.ID, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, usersPath, "msg", "User updated")
}

// HandleUserDelete removes an account. Admins cannot delete themselves.
func (ui *UI) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if id == IdentityFromRequest(r).ID {
		redirectWith(w, r, usersPath, "error", "You cannot delete your own account")
		return
	}
	if err := ui.client(r).DeleteUser(r.Context(), id); err != nil {
		ui.logger.Warn("delete user failed", "user_id", id, "error", err)
		redirectWith(w, r, usersPath, "error", "Failed to delete user: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("user deleted", "user_id", id, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, usersPath, "msg", "User deleted")
}

func parseUserForm(w http.ResponseWriter, r *http.Request, back string) (userForm, bool) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, back, "error", "Invalid request")
		return userForm{}, false
	}
	return userForm{
		Name:              formString(r, "name"),
		Email:             formString(r, "email"),
		Password:          r.PostFormValue("password"),
		Role:              formString(r, "role"),
		TestSubjectStatus: formBool(r, "test_subject_status"),
		AllergicReactions: formString(r, "allergic_reactions"),
	}, true
}

// userDiff builds an update holding only the fields that differ from u.
// An empty password means unchanged.
func userDiff(u *model.User, name, email, password string, testSubject bool, allergies string) model.UserUpdate {
	var up model.UserUpdate
	if name != u.Name {
		up.Name = &name
	}
	if email != u.Email {
		up.Email = &email
	}
	if password != "" {
		up.Password = &password
	}
	if testSubject != u.TestSubjectStatus {
		up.TestSubjectStatus = &testSubject
	}
	if allergies != u.AllergicReactions {
		up.AllergicReactions = &allergies
	}
	return up
}
