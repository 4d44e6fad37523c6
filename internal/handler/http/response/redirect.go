package response

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/dashboard"
)

const (
	FlashCookieName = "flash"

	FlashSuccess = "success"
	FlashError   = "error"
)

// Redirect answers with 303 See Other to location and carries an optional flash message
// for the next request in a short-lived cookie.
func Redirect(w http.ResponseWriter, location string, flash *dashboard.FlashMessage) {
	success := true
	message := ""
	if flash != nil {
		setFlash(w, *flash)
		success = flash.Level != FlashError
		message = flash.Message
	}

	w.Header().Set("Location", location)
	writeJSON(w, http.StatusSeeOther, Response{
		Success: success,
		Message: message,
		Data:    RedirectData{Redirect: location},
	})
}

func setFlash(w http.ResponseWriter, flash dashboard.FlashMessage) {
	raw, err := json.Marshal([]dashboard.FlashMessage{flash})
	if err != nil {
		slog.Error("flash encode error", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsumeFlash returns pending flash messages and clears the cookie.
func ConsumeFlash(w http.ResponseWriter, r *http.Request) []dashboard.FlashMessage {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var messages []dashboard.FlashMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}
