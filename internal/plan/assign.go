package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"procplan/models"

	"github.com/sirupsen/logrus"
)

// Assign закрепляет сотрудника за тендером. Повторное назначение той же пары
// возвращает ErrAlreadyAssigned; гонку между проверкой и вставкой закрывает
// уникальный индекс хранилища.
func (e *Engine) Assign(ctx context.Context, username string, tenderID int) (*models.TenderAssignment, error) {
	username = strings.TrimSpace(username)
	if username == "" || tenderID <= 0 {
		recordAssignment(assignResultInvalid)
		return nil, fmt.Errorf("%w: username and positive tender id are required", ErrInvalidInput)
	}
	log := e.log.WithFields(logrus.Fields{"username": username, "tender_id": tenderID})

	assigned, err := e.gw.IsAssigned(ctx, username, tenderID)
	if err != nil {
		recordAssignment(assignResultFailed)
		return nil, &PersistenceFailure{TenderID: tenderID, Err: err}
	}
	if assigned {
		recordAssignment(assignResultDuplicate)
		return nil, ErrAlreadyAssigned
	}

	employee, err := e.gw.EmployeeByUsername(ctx, username)
	if err != nil {
		return nil, e.lookupFailure(tenderID, err, ErrEmployeeNotFound)
	}
	tender, err := e.gw.TenderByID(ctx, tenderID)
	if err != nil {
		return nil, e.lookupFailure(tenderID, err, ErrTenderNotFound)
	}

	a := &models.TenderAssignment{
		TenderID:   tender.ID,
		EmployeeID: employee.ID,
		Username:   employee.Username,
	}
	inserted, err := e.gw.InsertAssociation(ctx, a)
	if err != nil {
		recordAssignment(assignResultFailed)
		log.WithError(err).Error("assignment write failed")
		return nil, &PersistenceFailure{TenderID: tenderID, Err: err}
	}
	if !inserted {
		recordAssignment(assignResultDuplicate)
		return nil, ErrAlreadyAssigned
	}

	recordAssignment(assignResultCreated)
	log.WithField("employee_id", employee.ID).Info("employee assigned to tender")
	return a, nil
}

func (e *Engine) lookupFailure(tenderID int, err, notFound error) error {
	if errors.Is(err, notFound) {
		recordAssignment(assignResultNotFound)
		return notFound
	}
	recordAssignment(assignResultFailed)
	return &PersistenceFailure{TenderID: tenderID, Err: err}
}
