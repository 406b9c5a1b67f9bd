package plan_test

import (
	"context"
	"errors"
	"sync"

	"procplan/internal/plan"
	"procplan/models"

	"github.com/shopspring/decimal"
)

// MockGateway реализует plan.Gateway в памяти
type MockGateway struct {
	mu sync.Mutex

	components map[int][]models.Component
	comments   map[int][]models.Comment
	tenders    []models.Tender
	employees  []models.Employee
	assocs     map[int][]models.TenderAssignment

	componentsErr error
	employeesErr  error
	assocErr      map[int]error
	insertErr     error

	IsAssignedFunc func(ctx context.Context, username string, tenderID int) (bool, error)
	nextAssocID    int
}

func newMockGateway() *MockGateway {
	return &MockGateway{
		components: map[int][]models.Component{},
		comments:   map[int][]models.Comment{},
		assocs:     map[int][]models.TenderAssignment{},
		assocErr:   map[int]error{},
	}
}

func (m *MockGateway) ComponentsByTender(ctx context.Context, tenderID int) ([]models.Component, error) {
	if m.componentsErr != nil {
		return nil, m.componentsErr
	}
	return m.components[tenderID], nil
}

func (m *MockGateway) CommentsByTender(ctx context.Context, tenderID int, technicalOnly bool) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments[tenderID] {
		if technicalOnly && !c.IsTechnical {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *MockGateway) TendersByStatus(ctx context.Context, status string) ([]models.Tender, error) {
	out := []models.Tender{}
	for _, t := range m.tenders {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MockGateway) TenderByID(ctx context.Context, tenderID int) (*models.Tender, error) {
	for _, t := range m.tenders {
		if t.ID == tenderID {
			t := t
			return &t, nil
		}
	}
	return nil, plan.ErrTenderNotFound
}

func (m *MockGateway) Employees(ctx context.Context) ([]models.Employee, error) {
	if m.employeesErr != nil {
		return nil, m.employeesErr
	}
	return m.employees, nil
}

func (m *MockGateway) EmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	for _, e := range m.employees {
		if e.Username == username {
			e := e
			return &e, nil
		}
	}
	return nil, plan.ErrEmployeeNotFound
}

func (m *MockGateway) AssociationsByTender(ctx context.Context, tenderID int) ([]models.TenderAssignment, error) {
	if err := m.assocErr[tenderID]; err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.TenderAssignment(nil), m.assocs[tenderID]...), nil
}

func (m *MockGateway) IsAssigned(ctx context.Context, username string, tenderID int) (bool, error) {
	if m.IsAssignedFunc != nil {
		return m.IsAssignedFunc(ctx, username, tenderID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.assocs[tenderID] {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// InsertAssociation ведёт себя как уникальный индекс (tender_id, employee_id)
func (m *MockGateway) InsertAssociation(ctx context.Context, a *models.TenderAssignment) (bool, error) {
	if m.insertErr != nil {
		return false, m.insertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.assocs[a.TenderID] {
		if existing.EmployeeID == a.EmployeeID {
			return false, nil
		}
	}
	m.nextAssocID++
	a.ID = m.nextAssocID
	m.assocs[a.TenderID] = append(m.assocs[a.TenderID], *a)
	return true, nil
}

func (m *MockGateway) assocCount(tenderID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.assocs[tenderID])
}

var errDB = errors.New("connection refused")

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func header(id int, category string) models.Component {
	return models.Component{ID: id, IsHeader: true, HeaderCategory: category}
}

func item(id, parent int, name, state string) models.Component {
	c := models.Component{ID: id, ParentID: intPtr(parent), PurchaseCount: decimal.NewFromInt(1)}
	if name != "" {
		c.PurchaseName = strPtr(name)
	}
	if state != "" {
		c.State = &models.ComponentState{Kind: state}
	}
	return c
}

func engineer(id int, username string) models.Employee {
	return models.Employee{ID: id, Username: username, Position: models.Position{Kind: plan.DefaultEngineerRole}, IsAvailable: true}
}

func assoc(tenderID, employeeID int, username string) models.TenderAssignment {
	return models.TenderAssignment{TenderID: tenderID, EmployeeID: employeeID, Username: username}
}
