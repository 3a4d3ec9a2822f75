package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	applog "cookbook/internal/log"
	"cookbook/internal/views/theme"
)

type preferencesResponse struct {
	Theme string `json:"theme"`
}

// UpdatePreferences persists the selected theme for this installation. The
// choice lives in the session for the current visit and in the store's
// preferences entry so it survives restarts.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := strings.TrimSpace(r.FormValue("theme"))
	themeConfig := theme.Resolve(themeValue)
	if themeConfig.Key == "" {
		applog.Debug(r.Context(), "received invalid theme selection", "value", themeValue)
		http.Error(w, "invalid theme selection", http.StatusBadRequest)
		return
	}

	if store == nil {
		applog.Debug(r.Context(), "store not configured; skipping preference persistence")
	} else {
		payload, err := json.Marshal(storedPreferences{Theme: themeConfig.Key})
		if err == nil {
			err = store.Set(r.Context(), preferencesStoreKey, string(payload))
		}
		if err != nil {
			applog.Error(r.Context(), "failed to persist preferences", "error", err)
			http.Error(w, "failed to save preferences", http.StatusInternalServerError)
			return
		}
	}

	if sessionManager != nil {
		sessionManager.Put(r.Context(), sessionThemeKey, themeConfig.Key)
	}

	writeJSON(w, http.StatusOK, preferencesResponse{Theme: themeConfig.Key})
}
