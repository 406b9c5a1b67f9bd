package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"procplan/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// Handler оборачивает движок планирования и хранилище сессий
type Handler struct {
	Plans    PlanService
	Sessions session.Store
	log      *logrus.Entry
}

// NewHandler создает новый Handler
func NewHandler(plans PlanService, sessions session.Store, log *logrus.Entry) *Handler {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Handler{Plans: plans, Sessions: sessions, log: log.WithField("component", "http")}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// tenderIDParam читает положительный tenderId из пути
func tenderIDParam(r *http.Request) (int, bool) {
	tenderID, err := strconv.Atoi(chi.URLParam(r, "tenderId"))
	if err != nil || tenderID <= 0 {
		return 0, false
	}
	return tenderID, true
}
