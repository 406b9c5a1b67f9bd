package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"procplan/models"

	"github.com/sirupsen/logrus"
)

// AllowSet - имена пользователей, которым разрешено брать тендеры в работу.
type AllowSet map[string]struct{}

func NewAllowSet(usernames ...string) AllowSet {
	s := make(AllowSet, len(usernames))
	for _, u := range usernames {
		s[u] = struct{}{}
	}
	return s
}

func (s AllowSet) Contains(username string) bool {
	_, ok := s[username]
	return ok
}

// Assignees - результат фильтрации с тремя исходами: неизвестно,
// известно и пусто, известен список id сотрудников.
type Assignees struct {
	ids   []int
	known bool
}

func UnknownAssignees() Assignees {
	return Assignees{}
}

func KnownAssignees(ids []int) Assignees {
	if ids == nil {
		ids = []int{}
	}
	return Assignees{ids: ids, known: true}
}

func (a Assignees) Known() bool {
	return a.known
}

// Empty истинно только для известного пустого списка.
func (a Assignees) Empty() bool {
	return a.known && len(a.ids) == 0
}

func (a Assignees) IDs() []int {
	if !a.known {
		return nil
	}
	return append([]int{}, a.ids...)
}

func (a Assignees) MarshalJSON() ([]byte, error) {
	if !a.known {
		return []byte("null"), nil
	}
	return json.Marshal(a.ids)
}

// FilterAssociations оставляет id сотрудников, чьи имена входят в allow.
// nil вместо списка связей или набора разрешённых даёт неизвестный результат.
func FilterAssociations(assocs []models.TenderAssignment, allow AllowSet) Assignees {
	if assocs == nil || allow == nil {
		return UnknownAssignees()
	}
	ids := []int{}
	for _, a := range assocs {
		if allow.Contains(a.Username) {
			ids = append(ids, a.EmployeeID)
		}
	}
	return KnownAssignees(ids)
}

// AllowedUsers перечитывает доступных сотрудников с ролью инженера.
func (e *Engine) AllowedUsers(ctx context.Context) (AllowSet, error) {
	employees, err := e.gw.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("employees: %w", err)
	}
	allow := AllowSet{}
	for _, emp := range employees {
		if emp.IsAvailable && emp.Position.Kind == e.rules.EngineerRole {
			allow[emp.Username] = struct{}{}
		}
	}
	return allow, nil
}

// EligibleAssignees - назначенные на тендер сотрудники с допустимой ролью.
// Любая ошибка чтения даёт неизвестный результат, а не ошибку.
func (e *Engine) EligibleAssignees(ctx context.Context, tenderID int) Assignees {
	return e.assignees(ctx, tenderID, e.allowedOrNil(ctx))
}

func (e *Engine) allowedOrNil(ctx context.Context) AllowSet {
	allow, err := e.AllowedUsers(ctx)
	if err != nil {
		e.log.WithError(err).Warn("cannot resolve allowed users")
		return nil
	}
	return allow
}

func (e *Engine) assignees(ctx context.Context, tenderID int, allow AllowSet) Assignees {
	assocs, err := e.gw.AssociationsByTender(ctx, tenderID)
	if err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{"tender_id": tenderID}).Warn("cannot load tender employees")
		return UnknownAssignees()
	}
	if assocs == nil {
		// связи ещё не заведены - значит, назначений нет
		assocs = []models.TenderAssignment{}
	}
	return FilterAssociations(assocs, allow)
}
