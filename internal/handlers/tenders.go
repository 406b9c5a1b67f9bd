package handlers

import (
	"errors"
	"net/http"
	"strings"

	"procplan/internal/plan"

	"github.com/sirupsen/logrus"
)

// GetComponentsHandler возвращает комплектующие тендера по заголовкам
func (h *Handler) GetComponentsHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, ok := tenderIDParam(r)
	if !ok {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	groups, err := h.Plans.Hierarchy(r.Context(), tenderID)
	if err != nil {
		h.log.WithError(err).WithField("tender_id", tenderID).Error("failed to build hierarchy")
		http.Error(w, "Failed to get components", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

// GetTechnicalCommentsHandler возвращает технические комментарии тендера
func (h *Handler) GetTechnicalCommentsHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, ok := tenderIDParam(r)
	if !ok {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	comments, err := h.Plans.TechnicalComments(r.Context(), tenderID)
	if err != nil {
		h.log.WithError(err).WithField("tender_id", tenderID).Error("failed to get comments")
		http.Error(w, "Failed to get comments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// AssignHandler закрепляет сотрудника username за тендером
func (h *Handler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	tenderID, ok := tenderIDParam(r)
	if !ok {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		http.Error(w, "Missing username parameter", http.StatusBadRequest)
		return
	}

	assignment, err := h.Plans.Assign(r.Context(), username, tenderID)
	var failure *plan.PersistenceFailure
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, assignment)
	case errors.Is(err, plan.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, plan.ErrAlreadyAssigned):
		http.Error(w, "Employee is already assigned to tender", http.StatusConflict)
	case errors.Is(err, plan.ErrEmployeeNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	case errors.Is(err, plan.ErrTenderNotFound):
		http.Error(w, "Tender not found", http.StatusNotFound)
	case errors.As(err, &failure):
		h.log.WithError(err).WithFields(logrus.Fields{"tender_id": failure.TenderID, "username": username}).Error("assignment failed")
		http.Error(w, "Failed to assign employee", http.StatusInternalServerError)
	default:
		h.log.WithError(err).Error("assignment failed")
		http.Error(w, "Failed to assign employee", http.StatusInternalServerError)
	}
}
