package server

import (
	"context"
	"net/http"

	"cookbook/internal/handlers"
	applog "cookbook/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/unlock", handlers.Unlock)
	mux.HandleFunc("/relock", handlers.Relock)
	applog.Debug(context.Background(), "route registered", "path", "/unlock")
	mux.Handle("/app", handlers.RequireUnlocked(http.HandlerFunc(handlers.RecipeList)))
	mux.Handle("/app/", handlers.RequireUnlocked(http.HandlerFunc(handlers.RecipeList)))
	mux.Handle("/app/recipes", handlers.RequireUnlocked(http.HandlerFunc(handlers.RecipeResource)))
	mux.Handle("/app/recipes/", handlers.RequireUnlocked(http.HandlerFunc(handlers.RecipeResource)))
	mux.Handle("/app/preferences/update", handlers.RequireUnlocked(http.HandlerFunc(handlers.UpdatePreferences)))
	mux.Handle("/app/export", handlers.RequireUnlocked(http.HandlerFunc(handlers.ExportRecipes)))
	applog.Debug(context.Background(), "route registered", "path", "/app", "protected", true)
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true)
	return mux
}
