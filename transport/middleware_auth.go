package transport

import (
	"net/http"

	"github.com/dikiindrasaputra/omahjajanwatir/constant"
	"github.com/dikiindrasaputra/omahjajanwatir/model"
	utilsContext "github.com/dikiindrasaputra/omahjajanwatir/utils/context"
	"github.com/gorilla/mux"
)

// SessionMiddleware resolves the current user from the session cookie. A
// cookie that fails validation, or a validated user whose profile cannot
// be read, both count as "not logged in" rather than an error.
// Protected paths without an identity redirect to /login with a flash.
func (rh *RestHandler) SessionMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if cookie, err := r.Cookie(constant.SessionCookieName); err == nil && cookie.Value != "" {
				sessionID, userID, err := rh.AuthApp.ValidateSession(ctx, cookie.Value)
				if err == nil {
					if identity, ok := rh.AuthApp.LoadIdentity(ctx, userID); ok {
						ctx = utilsContext.WithIdentity(ctx, identity)
						ctx = utilsContext.WithSessionID(ctx, sessionID)
					}
				}
			}

			if _, ok := utilsContext.GetIdentity(ctx); !ok && !isPublicPath(r.URL.Path) {
				setFlashCookie(w, []model.Flash{{Category: "info", Message: "Login dulu, ya Bestiee"}})
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
