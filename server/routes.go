package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(app.Log))
	r.Use(middleware.Recoverer)

	app.setupRoutes(r)
	return r
}

func (app *Application) setupRoutes(r chi.Router) {
	r.Get("/healthz", app.HandleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/messages", app.HandleMessage)
		r.Post("/parse", app.HandleParse)
		r.Post("/classify", app.HandleClassify)
		r.Get("/amount", app.HandleAmount)
		r.Get("/categories", app.HandleCategories)
	})
}
