// Package handlers contains the HTTP screens: list, detail, form, unlock,
// preferences, and the JSON endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"cookbook/internal/kvstore"
	applog "cookbook/internal/log"
	"cookbook/internal/recipes"
	"cookbook/internal/views/theme"
)

const (
	sessionUnlockedKey    = "lock:open"
	sessionLockMessageKey = "lock:message"
	sessionAlertKey       = "alert:message"
	sessionThemeKey       = "prefs:theme"

	sessionListQueryKey     = "list:query"
	sessionListFavoritesKey = "list:favorites"
	sessionListSortKey      = "list:sort"
	sessionListDescKey      = "list:desc"
)

// preferencesStoreKey is where the preferences blob lives in the key-value
// store, next to the two recipe collections.
const preferencesStoreKey = "preferences"

var (
	sessionManager *scs.SessionManager
	repository     *recipes.Repository
	store          kvstore.Store
	passcodeHash   []byte
)

// Configure installs the shared dependencies used by the HTTP handlers. An
// empty passcode hash disables the lock screen.
func Configure(sm *scs.SessionManager, repo *recipes.Repository, kv kvstore.Store, hash []byte) {
	sessionManager = sm
	repository = repo
	store = kv
	passcodeHash = hash
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// putAlert stores a flash message rendered by the next screen.
func putAlert(r *http.Request, message string) {
	if sessionManager == nil {
		return
	}
	sessionManager.Put(r.Context(), sessionAlertKey, message)
}

// popAlert retrieves and clears the pending flash message.
func popAlert(r *http.Request) string {
	if sessionManager == nil {
		return ""
	}
	return sessionManager.PopString(r.Context(), sessionAlertKey)
}

type storedPreferences struct {
	Theme string `json:"theme"`
}

// currentTheme resolves the active theme: session first, then the persisted
// preferences blob, then the default.
func currentTheme(r *http.Request) theme.WorkspaceTheme {
	if sessionManager != nil {
		if key := sessionManager.GetString(r.Context(), sessionThemeKey); key != "" {
			return theme.Resolve(key)
		}
	}
	if store != nil {
		if value, ok, err := store.Get(r.Context(), preferencesStoreKey); err == nil && ok {
			var prefs storedPreferences
			if err := json.Unmarshal([]byte(value), &prefs); err == nil {
				return theme.Resolve(prefs.Theme)
			}
		}
	}
	return theme.Resolve(theme.DefaultKey)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
