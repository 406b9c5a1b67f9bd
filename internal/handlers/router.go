package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler, metricsPath string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Instrument)

	if metricsPath != "" {
		r.Handle(metricsPath, promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		// тендеры
		r.Get("/tenders/{tenderId}/components", h.GetComponentsHandler)
		r.Get("/tenders/{tenderId}/comments", h.GetTechnicalCommentsHandler)
		r.Post("/tenders/{tenderId}/assign", h.AssignHandler)
		// планы
		r.Get("/plans", h.GetPlanHandler)
		r.Get("/plans/general", h.GetGeneralPlanHandler)
		r.Get("/plans/individual", h.GetIndividualPlanHandler)
		r.Get("/plans/assignable", h.GetAssignablePlanHandler)
		// сессии диалогов
		r.Get("/sessions/{chatId}", h.GetSessionHandler)
		r.Put("/sessions/{chatId}", h.SetSessionAwaitingHandler)
		r.Delete("/sessions/{chatId}", h.ClearSessionHandler)
	})
	return r
}
