package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tundeakins/quote-widget-api/internal/widget"
	"github.com/tundeakins/quote-widget-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)

	r.Route("/quote-widget-api/v1", func(r chi.Router) {
		r.Get("/", s.ServerIsWorking)
		s.loadWidgetRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Quote Widget api"
	response.Success(w, resp, "Success")
}

func (s *Server) loadWidgetRoutes(router chi.Router) {
	widgetHandler := widget.NewWidgetHandler(s.service)

	router.Route("/widgets/{widgetID}", func(r chi.Router) {
		r.Get("/", widgetHandler.GetDisplayHandler)
		r.Post("/refresh", widgetHandler.RefreshHandler)
		r.Patch("/save", widgetHandler.ToggleSavedHandler)
		r.Get("/config", widgetHandler.GetConfigHandler)
		r.Put("/config", widgetHandler.UpdateConfigHandler)
		r.Delete("/", widgetHandler.DeleteWidgetHandler)
	})

	router.Route("/saved-quotes", func(r chi.Router) {
		r.Get("/", widgetHandler.GetSavedQuotesHandler)
		r.Delete("/{position}", widgetHandler.DeleteSavedQuoteHandler)
		r.Get("/{position}/share", widgetHandler.ShareSavedQuoteHandler)
	})
}
