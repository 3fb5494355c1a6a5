package transport

import (
	"embed"
	"encoding/base64"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/dikiindrasaputra/omahjajanwatir/model"
	utilsContext "github.com/dikiindrasaputra/omahjajanwatir/utils/context"
	"github.com/dikiindrasaputra/omahjajanwatir/utils/logger"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

var wib = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}()

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"format_datetime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.In(wib).Format("02 January 2006 15:04:05") + " WIB"
	},
}).ParseFS(templatesFS, "templates/*.html"))

// pageData is the envelope every template receives.
type pageData struct {
	Identity *model.Identity
	Flashes  []model.Flash
	Data     any
}

const flashCookieName = "flash"

// render executes a template with the current identity and any pending
// flash messages; extra flashes are shown on this page without a redirect.
func (rh *RestHandler) render(w http.ResponseWriter, r *http.Request, name string, data any, extra ...model.Flash) {
	pd := pageData{Data: data}
	if identity, ok := utilsContext.GetIdentity(r.Context()); ok {
		pd.Identity = &identity
	}
	pd.Flashes = append(rh.popFlashes(w, r), extra...)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name+".html", pd); err != nil {
		logger.Error("render template failed", zap.String("template", name), zap.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// addFlash queues a one-shot message for the next rendered page: in Redis
// for an authenticated session, in a short-lived cookie otherwise.
func (rh *RestHandler) addFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	flash := model.Flash{Category: category, Message: message}

	if sessionID, ok := utilsContext.GetSessionID(r.Context()); ok {
		if err := rh.RedisRepo.PushFlash(r.Context(), sessionID, flash); err == nil {
			return
		}
	}
	setFlashCookie(w, append(readFlashCookie(r), flash))
}

// popFlashes drains pending messages from both stores.
func (rh *RestHandler) popFlashes(w http.ResponseWriter, r *http.Request) []model.Flash {
	var flashes []model.Flash

	if sessionID, ok := utilsContext.GetSessionID(r.Context()); ok {
		if fs, err := rh.RedisRepo.PopFlashes(r.Context(), sessionID); err == nil {
			flashes = append(flashes, fs...)
		}
	}

	if fs := readFlashCookie(r); len(fs) > 0 {
		flashes = append(flashes, fs...)
		clearFlashCookie(w)
	}

	return flashes
}

func setFlashCookie(w http.ResponseWriter, flashes []model.Flash) {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
	})
}

func readFlashCookie(r *http.Request) []model.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flashes []model.Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}

func clearFlashCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// redirectWithFlash queues a flash and sends the browser elsewhere.
func (rh *RestHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, category, message string) {
	rh.addFlash(w, r, category, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
