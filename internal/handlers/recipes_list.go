package handlers

import (
	"net/http"

	applog "cookbook/internal/log"
	"cookbook/internal/recipes"
	"cookbook/internal/views/pages"
)

// RecipeList renders the list screen. Every GET re-reads the store, which is
// the app's refresh contract: navigating back to the list always shows the
// latest persisted state.
func RecipeList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if repository == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	filters := resolveListFilters(r)

	all := repository.List(r.Context())
	favorites := repository.FavoriteIDs(r.Context())
	visible := recipes.Apply(all, favorites, filters)

	applog.Debug(r.Context(), "list screen rendered",
		"total", len(all),
		"visible", len(visible),
		"query", filters.Query,
		"favoritesOnly", filters.FavoritesOnly,
	)

	view := pages.ListView{
		Recipes:   visible,
		Favorites: favorites,
		Filters:   filters,
		Alert:     popAlert(r),
		Theme:     currentTheme(r),
	}

	var err error
	if isHTMX(r) {
		err = pages.ListPartial(view).Render(r.Context(), w)
	} else {
		err = pages.List(view).Render(r.Context(), w)
	}
	if err != nil {
		applog.Error(r.Context(), "failed to render list screen", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// resolveListFilters merges the request's query parameters with the
// session-held view state. A request that carries parameters replaces the
// stored state; a bare GET reuses it, so the list keeps its search, sort,
// and favorites settings across navigation.
func resolveListFilters(r *http.Request) recipes.ListFilters {
	if r.URL.RawQuery == "" {
		return storedListFilters(r)
	}

	params := r.URL.Query()
	filters := recipes.ListFilters{
		Query:         params.Get("q"),
		FavoritesOnly: params.Get("favorites") != "",
		Sort:          recipes.ParseSortKey(params.Get("sort")),
		Descending:    params.Get("dir") == "desc",
	}
	rememberListFilters(r, filters)
	return filters
}

func storedListFilters(r *http.Request) recipes.ListFilters {
	if sessionManager == nil {
		return recipes.ListFilters{}
	}
	ctx := r.Context()
	return recipes.ListFilters{
		Query:         sessionManager.GetString(ctx, sessionListQueryKey),
		FavoritesOnly: sessionManager.GetBool(ctx, sessionListFavoritesKey),
		Sort:          recipes.ParseSortKey(sessionManager.GetString(ctx, sessionListSortKey)),
		Descending:    sessionManager.GetBool(ctx, sessionListDescKey),
	}
}

func rememberListFilters(r *http.Request, filters recipes.ListFilters) {
	if sessionManager == nil {
		return
	}
	ctx := r.Context()
	sessionManager.Put(ctx, sessionListQueryKey, filters.Query)
	sessionManager.Put(ctx, sessionListFavoritesKey, filters.FavoritesOnly)
	sessionManager.Put(ctx, sessionListSortKey, string(filters.Sort))
	sessionManager.Put(ctx, sessionListDescKey, filters.Descending)
}
