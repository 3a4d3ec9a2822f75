package handlers

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	applog "cookbook/internal/log"
	"cookbook/internal/views/pages"
)

// lockEnabled reports whether the optional app passcode is configured.
func lockEnabled() bool {
	return len(passcodeHash) > 0
}

// Unlocked returns true when the current session may access the app screens.
// With no passcode configured every session is unlocked.
func Unlocked(r *http.Request) bool {
	if !lockEnabled() {
		return true
	}
	if sessionManager == nil {
		return false
	}
	return sessionManager.GetBool(r.Context(), sessionUnlockedKey)
}

// RequireUnlocked gates the app screens behind the passcode when one is set.
func RequireUnlocked(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !Unlocked(r) {
			redirectToUnlock(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Unlock renders the passcode gate and processes submissions.
func Unlock(w http.ResponseWriter, r *http.Request) {
	if !lockEnabled() {
		redirectToApp(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if Unlocked(r) {
			redirectToApp(w, r)
			return
		}
		message := ""
		if sessionManager != nil {
			message = sessionManager.PopString(r.Context(), sessionLockMessageKey)
		}
		renderUnlock(w, r, message)
	case http.MethodPost:
		if sessionManager == nil {
			http.Error(w, "unlock not available", http.StatusServiceUnavailable)
			return
		}
		if err := r.ParseForm(); err != nil {
			applog.Debug(r.Context(), "failed to parse unlock form", "error", err)
			http.Error(w, "invalid form submission", http.StatusBadRequest)
			return
		}

		passcode := r.PostFormValue("passcode")
		if err := bcrypt.CompareHashAndPassword(passcodeHash, []byte(passcode)); err != nil {
			applog.Debug(r.Context(), "unlock attempt rejected")
			renderUnlock(w, r, "Wrong passcode. Please try again.")
			return
		}

		if err := sessionManager.RenewToken(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to renew session token", "error", err)
			renderUnlock(w, r, "We were unable to unlock the app. Please try again.")
			return
		}
		sessionManager.Put(r.Context(), sessionUnlockedKey, true)
		redirectToApp(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Relock clears the unlocked flag and returns to the passcode gate.
func Relock(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager != nil {
		if err := sessionManager.Destroy(r.Context()); err != nil {
			applog.Error(r.Context(), "failed to destroy session", "error", err)
		}
	}
	redirectToUnlock(w, r)
}

func renderUnlock(w http.ResponseWriter, r *http.Request, message string) {
	if err := pages.Unlock(message, currentTheme(r)).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render unlock screen", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func redirectToUnlock(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/unlock")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/unlock", http.StatusSeeOther)
}

func redirectToApp(w http.ResponseWriter, r *http.Request) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/app")
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}
