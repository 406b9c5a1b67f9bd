package handlers

import (
	"context"

	"procplan/internal/plan"
	"procplan/models"
)

// PlanService - операции движка планирования, которые нужны обработчикам
type PlanService interface {
	Hierarchy(ctx context.Context, tenderID int) ([]plan.HeaderGroup, error)
	TechnicalComments(ctx context.Context, tenderID int) ([]models.Comment, error)
	Plan(ctx context.Context, q plan.PlanQuery) (plan.WorkPlan, error)
	Assign(ctx context.Context, username string, tenderID int) (*models.TenderAssignment, error)
}

var _ PlanService = (*plan.Engine)(nil)
