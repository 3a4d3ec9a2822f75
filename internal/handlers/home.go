package handlers

import "net/http"

// Home sends visitors from the root path to the list screen. Unknown paths
// fall through to a 404 rather than the list, so typos stay visible.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/app", http.StatusSeeOther)
}
