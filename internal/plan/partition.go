package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"procplan/models"

	"github.com/sirupsen/logrus"
)

type Mode string

const (
	ModeGeneral      Mode = "general"
	ModeIndividual   Mode = "individual"
	ModeAssignable   Mode = "assignable"
	ModeUndetermined Mode = "undetermined"
)

// PlanQuery выбирает режим плана. Без селекторов - общий план,
// EmployeeID - личный план, AssignableOnly - свободные тендеры.
// TenderIDs == nil означает "взять кандидатов из хранилища".
type PlanQuery struct {
	TenderIDs      []int
	EmployeeID     *int
	AssignableOnly bool
}

func (q PlanQuery) Mode() Mode {
	switch {
	case q.EmployeeID != nil && q.AssignableOnly:
		return ModeUndetermined
	case q.EmployeeID != nil:
		return ModeIndividual
	case q.AssignableOnly:
		return ModeAssignable
	default:
		return ModeGeneral
	}
}

// WorkPlan - производный план, не кэшируется. Для общего плана заполнен
// Assignees, для личного и свободного - TenderIDs.
type WorkPlan struct {
	Mode      Mode              `json:"mode"`
	Assignees map[int]Assignees `json:"-"`
	TenderIDs []int             `json:"-"`
}

// MarshalJSON пишет только поле, которое заполняет режим; пустой план
// сериализуется как {} или [], а не пропуском поля.
func (p WorkPlan) MarshalJSON() ([]byte, error) {
	switch p.Mode {
	case ModeGeneral:
		assignees := p.Assignees
		if assignees == nil {
			assignees = map[int]Assignees{}
		}
		return json.Marshal(struct {
			Mode      Mode              `json:"mode"`
			Assignees map[int]Assignees `json:"assignees"`
		}{p.Mode, assignees})
	case ModeIndividual, ModeAssignable:
		ids := p.TenderIDs
		if ids == nil {
			ids = []int{}
		}
		return json.Marshal(struct {
			Mode      Mode  `json:"mode"`
			TenderIDs []int `json:"tenderIds"`
		}{p.Mode, ids})
	default:
		return json.Marshal(struct {
			Mode Mode `json:"mode"`
		}{p.Mode})
	}
}

// Plan строит план в выбранном режиме. Одновременный запрос личного плана
// и свободных тендеров отклоняется с ErrAmbiguousQuery.
func (e *Engine) Plan(ctx context.Context, q PlanQuery) (WorkPlan, error) {
	mode := q.Mode()
	planQueries.WithLabelValues(string(mode)).Inc()
	if mode == ModeUndetermined {
		return WorkPlan{Mode: ModeUndetermined}, ErrAmbiguousQuery
	}

	tenderIDs := q.TenderIDs
	if tenderIDs == nil {
		candidates, err := e.Candidates(ctx)
		if err != nil {
			return WorkPlan{Mode: mode}, err
		}
		tenderIDs = make([]int, 0, len(candidates))
		for _, t := range candidates {
			tenderIDs = append(tenderIDs, t.ID)
		}
	}

	switch mode {
	case ModeIndividual:
		return WorkPlan{Mode: mode, TenderIDs: e.individualPlan(ctx, tenderIDs, *q.EmployeeID)}, nil
	case ModeAssignable:
		return WorkPlan{Mode: mode, TenderIDs: e.assignablePlan(ctx, tenderIDs)}, nil
	default:
		return WorkPlan{Mode: mode, Assignees: e.generalPlan(ctx, tenderIDs)}, nil
	}
}

func (e *Engine) generalPlan(ctx context.Context, tenderIDs []int) map[int]Assignees {
	plan := make(map[int]Assignees, len(tenderIDs))
	if len(tenderIDs) == 0 {
		return plan
	}
	allow := e.allowedOrNil(ctx)
	for _, id := range tenderIDs {
		plan[id] = e.assignees(ctx, id, allow)
	}
	return plan
}

// individualPlan не учитывает роль: назначенный сотрудник видит свои тендеры всегда.
func (e *Engine) individualPlan(ctx context.Context, tenderIDs []int, employeeID int) []int {
	result := []int{}
	for _, id := range tenderIDs {
		assocs, err := e.gw.AssociationsByTender(ctx, id)
		if err != nil {
			e.log.WithError(err).WithFields(logrus.Fields{"tender_id": id}).Warn("cannot load tender employees")
			continue
		}
		for _, a := range assocs {
			if a.EmployeeID == employeeID {
				result = append(result, id)
				break
			}
		}
	}
	return result
}

// assignablePlan оставляет тендеры с известным пустым списком допустимых исполнителей.
func (e *Engine) assignablePlan(ctx context.Context, tenderIDs []int) []int {
	result := []int{}
	general := e.generalPlan(ctx, tenderIDs)
	for _, id := range tenderIDs {
		if general[id].Empty() {
			result = append(result, id)
		}
	}
	return result
}

// Candidates - тендеры в статусах-кандидатах, у которых все учитываемые
// позиции в резерве. Тендер, чьи позиции не удалось прочитать, пропускается.
func (e *Engine) Candidates(ctx context.Context) ([]models.Tender, error) {
	seen := make(map[int]struct{})
	candidates := []models.Tender{}
	for _, status := range e.rules.CandidateStatuses {
		tenders, err := e.gw.TendersByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("tenders in status %q: %w", status, err)
		}
		for _, t := range tenders {
			if _, ok := seen[t.ID]; ok {
				continue
			}
			seen[t.ID] = struct{}{}

			components, err := e.gw.ComponentsByTender(ctx, t.ID)
			if err != nil {
				e.log.WithError(err).WithFields(logrus.Fields{"tender_id": t.ID}).Warn("cannot load tender components")
				continue
			}
			if e.rules.StatesMatch(components, e.rules.ReserveState) {
				candidates = append(candidates, t)
			}
		}
	}
	return candidates, nil
}
