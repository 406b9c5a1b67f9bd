package db

import (
	"context"
	"database/sql"

	"procplan/internal/plan"
	"procplan/models"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var _ plan.Gateway = (*Storage)(nil)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Component (Комплектующая)

// componentRow - плоская строка выборки, nullable-колонки разворачиваются в models.Component
type componentRow struct {
	ID             int                 `db:"id"`
	TenderID       int                 `db:"tender_id"`
	ParentID       sql.NullInt64       `db:"parent_id"`
	IsHeader       bool                `db:"is_header"`
	HeaderCategory sql.NullString      `db:"header_category"`
	PurchaseName   sql.NullString      `db:"purchase_name"`
	PurchaseCount  decimal.NullDecimal `db:"purchase_count"`
	AssemblyNote   sql.NullString      `db:"assembly_note"`
	StateKind      sql.NullString      `db:"state_kind"`
}

func (r componentRow) toModel() models.Component {
	c := models.Component{
		ID:             r.ID,
		TenderID:       r.TenderID,
		IsHeader:       r.IsHeader,
		HeaderCategory: r.HeaderCategory.String,
		PurchaseCount:  r.PurchaseCount.Decimal,
	}
	if r.ParentID.Valid {
		parentID := int(r.ParentID.Int64)
		c.ParentID = &parentID
	}
	if r.PurchaseName.Valid {
		name := r.PurchaseName.String
		c.PurchaseName = &name
	}
	if r.AssemblyNote.Valid {
		note := r.AssemblyNote.String
		c.AssemblyNote = &note
	}
	if r.StateKind.Valid {
		c.State = &models.ComponentState{Kind: r.StateKind.String}
	}
	return c
}

// ComponentsByTender возвращает неудалённые комплектующие тендера в порядке id
func (s *Storage) ComponentsByTender(ctx context.Context, tenderID int) ([]models.Component, error) {
	query := `
        SELECT c.id, c.tender_id, c.parent_id, c.is_header, c.header_category,
               c.purchase_name, c.purchase_count, c.assembly_note, st.kind AS state_kind
        FROM component_calculation c
        LEFT JOIN component_state st ON st.id = c.state_id
        WHERE c.tender_id = $1 AND c.is_deleted = FALSE
        ORDER BY c.id`
	rows := []componentRow{}
	if err := s.db.SelectContext(ctx, &rows, query, tenderID); err != nil {
		return nil, errors.Wrap(err, "failed to query components")
	}
	components := make([]models.Component, 0, len(rows))
	for _, r := range rows {
		components = append(components, r.toModel())
	}
	return components, nil
}

// Comment (Комментарий)

func (s *Storage) CommentsByTender(ctx context.Context, tenderID int, technicalOnly bool) ([]models.Comment, error) {
	query := `
        SELECT id, tender_id, text, is_technical
        FROM comment
        WHERE tender_id = $1 AND ($2 = FALSE OR is_technical)
        ORDER BY id`
	comments := []models.Comment{}
	if err := s.db.SelectContext(ctx, &comments, query, tenderID, technicalOnly); err != nil {
		return nil, errors.Wrap(err, "failed to query comments")
	}
	return comments, nil
}

// Tender (Тендер)

func (s *Storage) TendersByStatus(ctx context.Context, status string) ([]models.Tender, error) {
	query := `SELECT id, name, status FROM tender WHERE status = $1 ORDER BY id`
	tenders := []models.Tender{}
	if err := s.db.SelectContext(ctx, &tenders, query, status); err != nil {
		return nil, errors.Wrap(err, "failed to query tenders")
	}
	return tenders, nil
}

func (s *Storage) TenderByID(ctx context.Context, id int) (*models.Tender, error) {
	t := &models.Tender{}
	query := `SELECT id, name, status FROM tender WHERE id = $1`
	err := s.db.GetContext(ctx, t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, plan.ErrTenderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tender")
	}
	return t, nil
}

// Employee (Сотрудник)

const employeeColumns = `e.id, e.username, e.is_available, COALESCE(p.kind, '') AS "position.kind"`

func (s *Storage) Employees(ctx context.Context) ([]models.Employee, error) {
	query := `
        SELECT ` + employeeColumns + `
        FROM employee e
        LEFT JOIN position p ON p.id = e.position_id
        ORDER BY e.id`
	employees := []models.Employee{}
	if err := s.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, errors.Wrap(err, "failed to query employees")
	}
	return employees, nil
}

func (s *Storage) EmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	e := &models.Employee{}
	query := `
        SELECT ` + employeeColumns + `
        FROM employee e
        LEFT JOIN position p ON p.id = e.position_id
        WHERE e.username = $1`
	err := s.db.GetContext(ctx, e, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, plan.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get employee")
	}
	return e, nil
}

// TenderAssignment (Связь тендер-сотрудник)

func (s *Storage) AssociationsByTender(ctx context.Context, tenderID int) ([]models.TenderAssignment, error) {
	query := `
        SELECT te.id, te.tender_id, te.employee_id, e.username
        FROM tender_employee te
        JOIN employee e ON e.id = te.employee_id
        WHERE te.tender_id = $1
        ORDER BY te.id`
	assocs := []models.TenderAssignment{}
	if err := s.db.SelectContext(ctx, &assocs, query, tenderID); err != nil {
		return nil, errors.Wrap(err, "failed to query tender employees")
	}
	return assocs, nil
}

func (s *Storage) IsAssigned(ctx context.Context, username string, tenderID int) (bool, error) {
	var count int
	query := `
        SELECT COUNT(1)
        FROM tender_employee te
        JOIN employee e ON e.id = te.employee_id
        WHERE e.username = $1 AND te.tender_id = $2`
	if err := s.db.GetContext(ctx, &count, query, username, tenderID); err != nil {
		return false, errors.Wrap(err, "failed to check assignment")
	}
	return count > 0, nil
}

// InsertAssociation вставляет связь; false без ошибки - такая пара уже есть
// (уникальный индекс tender_employee(tender_id, employee_id))
func (s *Storage) InsertAssociation(ctx context.Context, a *models.TenderAssignment) (bool, error) {
	query := `
        INSERT INTO tender_employee (tender_id, employee_id)
        VALUES ($1, $2)
        ON CONFLICT (tender_id, employee_id) DO NOTHING
        RETURNING id`
	err := s.db.QueryRowxContext(ctx, query, a.TenderID, a.EmployeeID).Scan(&a.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to insert tender employee")
	}
	return true, nil
}
