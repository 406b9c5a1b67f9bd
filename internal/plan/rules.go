package plan

import (
	"errors"
	"strings"

	"procplan/models"
)

const (
	DefaultCandidateStatus = "won, stage 2"
	DefaultReserveState    = "in reserve"
	DefaultEngineerRole    = "production engineer"
)

// Категории заголовков, которые не резервируются на складе.
var DefaultExemptCategories = []string{"office equipment", "miscellaneous"}

// Rules - настраиваемые метки, по которым движок отбирает тендеры и сотрудников.
type Rules struct {
	CandidateStatuses []string
	ReserveState      string
	EngineerRole      string
	ExemptCategories  []string
}

func DefaultRules() Rules {
	return Rules{
		CandidateStatuses: []string{DefaultCandidateStatus},
		ReserveState:      DefaultReserveState,
		EngineerRole:      DefaultEngineerRole,
		ExemptCategories:  append([]string(nil), DefaultExemptCategories...),
	}
}

// Normalized обрезает пробелы, убирает пустые и повторяющиеся значения
// и подставляет значения по умолчанию вместо незаданных.
func (r Rules) Normalized() Rules {
	def := DefaultRules()
	out := Rules{
		CandidateStatuses: normalizeLabels(r.CandidateStatuses),
		ReserveState:      strings.TrimSpace(r.ReserveState),
		EngineerRole:      strings.TrimSpace(r.EngineerRole),
		ExemptCategories:  normalizeLabels(r.ExemptCategories),
	}
	if len(out.CandidateStatuses) == 0 {
		out.CandidateStatuses = def.CandidateStatuses
	}
	if out.ReserveState == "" {
		out.ReserveState = def.ReserveState
	}
	if out.EngineerRole == "" {
		out.EngineerRole = def.EngineerRole
	}
	if r.ExemptCategories == nil {
		out.ExemptCategories = def.ExemptCategories
	}
	return out
}

func (r Rules) Validate() error {
	for _, s := range r.CandidateStatuses {
		if strings.TrimSpace(s) == "" {
			return errors.New("plan rules: candidate status must not be blank")
		}
	}
	for _, c := range r.ExemptCategories {
		if strings.TrimSpace(c) == "" {
			return errors.New("plan rules: exempt category must not be blank")
		}
	}
	return nil
}

func (r Rules) IsExempt(category string) bool {
	category = strings.TrimSpace(category)
	for _, c := range r.ExemptCategories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// StatesMatch сообщает, что все учитываемые позиции находятся в состоянии target.
// Позиции под заголовками исключённых категорий пропускаются. Пустой набор
// учитываемых позиций, позиция без заголовка или без состояния дают false.
func (r Rules) StatesMatch(components []models.Component, target string) bool {
	categories := make(map[int]string)
	for _, c := range components {
		if !c.IsHeader {
			continue
		}
		if _, seen := categories[c.ID]; !seen {
			categories[c.ID] = c.HeaderCategory
		}
	}

	qualifying := 0
	for _, c := range components {
		if c.IsHeader {
			continue
		}
		if c.ParentID == nil {
			return false
		}
		category, ok := categories[*c.ParentID]
		if !ok {
			return false
		}
		if r.IsExempt(category) {
			continue
		}
		if c.State == nil || c.State.Kind != target {
			return false
		}
		qualifying++
	}
	return qualifying > 0
}

func normalizeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
