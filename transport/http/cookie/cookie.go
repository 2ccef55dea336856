package cookie

import (
	"net/http"
	"time"

	"inn/config"
)

// SetSession writes the session token as an HTTP-only cookie.
func SetSession(w http.ResponseWriter, cfg *config.Config, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   cfg.Session.Domain,
		MaxAge:   cfg.Session.ExpireMin * 60,
		Secure:   cfg.Session.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.Session.SameSite),
	})
}

// ClearSession expires the session cookie.
func ClearSession(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   cfg.Session.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   cfg.Session.Secure,
		HttpOnly: true,
		SameSite: sameSite(cfg.Session.SameSite),
	})
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
