package plan

import (
	"context"

	"procplan/models"
)

// Gateway - слой хранения, из которого движок читает снимки данных.
// Реализация должна исключать удалённые комплектующие и отклонять
// повторную вставку одной и той же пары тендер-сотрудник.
type Gateway interface {
	ComponentsByTender(ctx context.Context, tenderID int) ([]models.Component, error)
	CommentsByTender(ctx context.Context, tenderID int, technicalOnly bool) ([]models.Comment, error)
	TendersByStatus(ctx context.Context, status string) ([]models.Tender, error)
	TenderByID(ctx context.Context, tenderID int) (*models.Tender, error)

	Employees(ctx context.Context) ([]models.Employee, error)
	EmployeeByUsername(ctx context.Context, username string) (*models.Employee, error)

	AssociationsByTender(ctx context.Context, tenderID int) ([]models.TenderAssignment, error)
	IsAssigned(ctx context.Context, username string, tenderID int) (bool, error)
	// InsertAssociation возвращает false без ошибки, если пара уже существует.
	InsertAssociation(ctx context.Context, a *models.TenderAssignment) (bool, error)
}
