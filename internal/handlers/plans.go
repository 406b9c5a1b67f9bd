package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"procplan/internal/plan"
)

// GetGeneralPlanHandler - тендеры-кандидаты с текущими исполнителями
func (h *Handler) GetGeneralPlanHandler(w http.ResponseWriter, r *http.Request) {
	h.servePlan(w, r, plan.PlanQuery{})
}

// GetIndividualPlanHandler - тендеры, за которыми закреплён сотрудник employeeId
func (h *Handler) GetIndividualPlanHandler(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(r.URL.Query().Get("employeeId"))
	if err != nil || employeeID <= 0 {
		http.Error(w, "Invalid employeeId", http.StatusBadRequest)
		return
	}
	h.servePlan(w, r, plan.PlanQuery{EmployeeID: &employeeID})
}

// GetAssignablePlanHandler - тендеры без допустимого исполнителя
func (h *Handler) GetAssignablePlanHandler(w http.ResponseWriter, r *http.Request) {
	h.servePlan(w, r, plan.PlanQuery{AssignableOnly: true})
}

// GetPlanHandler принимает селекторы режима как есть: employeeId и assignable
func (h *Handler) GetPlanHandler(w http.ResponseWriter, r *http.Request) {
	var q plan.PlanQuery

	if s := r.URL.Query().Get("employeeId"); s != "" {
		employeeID, err := strconv.Atoi(s)
		if err != nil || employeeID <= 0 {
			http.Error(w, "Invalid employeeId", http.StatusBadRequest)
			return
		}
		q.EmployeeID = &employeeID
	}
	if s := r.URL.Query().Get("assignable"); s != "" {
		assignable, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "Invalid assignable", http.StatusBadRequest)
			return
		}
		q.AssignableOnly = assignable
	}
	ids, ok := parseTenderIDs(r.URL.Query()["tenderId"])
	if !ok {
		http.Error(w, "Invalid tenderId", http.StatusBadRequest)
		return
	}
	q.TenderIDs = ids

	h.servePlan(w, r, q)
}

func (h *Handler) servePlan(w http.ResponseWriter, r *http.Request, q plan.PlanQuery) {
	wp, err := h.Plans.Plan(r.Context(), q)
	if errors.Is(err, plan.ErrAmbiguousQuery) {
		http.Error(w, "employeeId and assignable cannot be combined", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.log.WithError(err).WithField("mode", string(q.Mode())).Error("failed to build plan")
		http.Error(w, "Failed to build plan", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, wp)
}

// parseTenderIDs разбирает повторяющийся tenderId; без параметра - nil (кандидаты из БД)
func parseTenderIDs(values []string) ([]int, bool) {
	if len(values) == 0 {
		return nil, true
	}
	ids := make([]int, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || id <= 0 {
				return nil, false
			}
			ids = append(ids, id)
		}
	}
	return ids, true
}
