package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type sessionResponse struct {
	ChatID   int64 `json:"chatId"`
	Awaiting bool  `json:"awaiting"`
}

func chatIDParam(r *http.Request) (int64, bool) {
	chatID, err := strconv.ParseInt(chi.URLParam(r, "chatId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return chatID, true
}

func (h *Handler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(r)
	if !ok {
		http.Error(w, "Invalid chatId", http.StatusBadRequest)
		return
	}
	awaiting, err := h.Sessions.Awaiting(r.Context(), chatID)
	if err != nil {
		h.log.WithError(err).Error("failed to read session")
		http.Error(w, "Failed to read session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ChatID: chatID, Awaiting: awaiting})
}

func (h *Handler) SetSessionAwaitingHandler(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(r)
	if !ok {
		http.Error(w, "Invalid chatId", http.StatusBadRequest)
		return
	}
	if err := h.Sessions.SetAwaiting(r.Context(), chatID); err != nil {
		h.log.WithError(err).Error("failed to update session")
		http.Error(w, "Failed to update session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{ChatID: chatID, Awaiting: true})
}

func (h *Handler) ClearSessionHandler(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatIDParam(r)
	if !ok {
		http.Error(w, "Invalid chatId", http.StatusBadRequest)
		return
	}
	if err := h.Sessions.Clear(r.Context(), chatID); err != nil {
		h.log.WithError(err).Error("failed to clear session")
		http.Error(w, "Failed to clear session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
