package transport

import (
	"net/http"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	utilsContext "github.com/dikiindrasaputra/omahjajanwatir/utils/context"
	validatorx "github.com/dikiindrasaputra/omahjajanwatir/utils/validator"
)

// Index renders the landing page
func (rh *RestHandler) Index(w http.ResponseWriter, r *http.Request) {
	rh.render(w, r, "index", nil)
}

// SignupForm renders the registration form
func (rh *RestHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utilsContext.GetIdentity(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	rh.render(w, r, "signup", nil)
}

// Signup creates the auth account plus its profile row. Any blank field
// re-renders the form without touching the remote store.
func (rh *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetIdentity(ctx); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		rh.render(w, r, "signup", nil, model.Flash{Category: "error", Message: "Semua kolom harus diisi."})
		return
	}

	req := &model.SignupRequest{
		Email:       r.PostFormValue("email"),
		Password:    r.PostFormValue("password"),
		Username:    r.PostFormValue("username"),
		NamaLengkap: r.PostFormValue("nama_lengkap"),
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		rh.render(w, r, "signup", nil, model.Flash{Category: "error", Message: "Semua kolom harus diisi."})
		return
	}

	if err := rh.AuthApp.SignUp(ctx, req); err != nil {
		rh.render(w, r, "signup", nil, model.Flash{Category: "error", Message: err.Error()})
		return
	}

	rh.redirectWithFlash(w, r, "/login", "success", "Yeay! pendaftaran berhasil")
}

// LoginForm renders the login form
func (rh *RestHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utilsContext.GetIdentity(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	rh.render(w, r, "login", nil)
}

// Login authenticates against the hosted provider and sets the session
// cookie.
func (rh *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetIdentity(ctx); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		rh.render(w, r, "login", nil, model.Flash{Category: "error", Message: "Email dan password harus diisi."})
		return
	}

	req := &model.LoginRequest{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		rh.render(w, r, "login", nil, model.Flash{Category: "error", Message: "Email dan password harus diisi."})
		return
	}

	token, err := rh.AuthApp.Login(ctx, req)
	if err != nil {
		rh.render(w, r, "login", nil, model.Flash{Category: "error", Message: err.Error()})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(rh.Config.Auth.SessionExpTime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	rh.redirectWithFlash(w, r, "/dashboard", "success", "Login berhasil!")
}

// Logout drops the session and clears the cookie
func (rh *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sessionID, ok := utilsContext.GetSessionID(ctx); ok {
		rh.AuthApp.Logout(ctx, sessionID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	setFlashCookie(w, []model.Flash{{Category: "info", Message: "Terimakasih udah mampir"}})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Profile renders the current user's profile
func (rh *RestHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utilsContext.GetIdentity(ctx)

	profile, err := rh.ProfileApp.Get(ctx, identity.ID)
	if err != nil {
		rh.render(w, r, "profile", nil, model.Flash{Category: "error", Message: err.Error()})
		return
	}
	rh.render(w, r, "profile", profile)
}

// UpdateProfile applies the submitted profile changes
func (rh *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := utilsContext.GetIdentity(ctx)

	if err := r.ParseForm(); err != nil {
		rh.redirectWithFlash(w, r, "/profile", "error", "permintaan tidak valid")
		return
	}

	req := &model.ProfileUpdateRequest{
		Username:    r.PostFormValue("username"),
		NamaLengkap: r.PostFormValue("nama_lengkap"),
		AvatarURL:   r.PostFormValue("avatar_url"),
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		rh.redirectWithFlash(w, r, "/profile", "error", "permintaan tidak valid")
		return
	}

	if err := rh.ProfileApp.Update(ctx, identity.ID, req); err != nil {
		rh.redirectWithFlash(w, r, "/profile", "error", err.Error())
		return
	}

	rh.redirectWithFlash(w, r, "/profile", "success", "Profil keren kamu udah jadi")
}
