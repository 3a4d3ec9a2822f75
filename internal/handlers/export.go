package handlers

import (
	"encoding/json"
	"net/http"

	applog "cookbook/internal/log"
)

// ExportRecipes streams the canonical collection as a JSON download, the
// same shape the store persists.
func ExportRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if repository == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "export not available")
		return
	}

	all := repository.List(r.Context())
	applog.Info(r.Context(), "exporting recipes", "count", len(all))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="recipes.json"`)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(all); err != nil {
		applog.Error(r.Context(), "failed to encode export", "error", err)
	}
}
