package plan_test

import (
	"context"
	"sync"
	"testing"

	"procplan/internal/plan"
	"procplan/models"

	"github.com/stretchr/testify/require"
)

func assignFixture() *MockGateway {
	gw := newMockGateway()
	gw.employees = []models.Employee{engineer(1, "alice")}
	gw.tenders = []models.Tender{{ID: 10, Status: plan.DefaultCandidateStatus}}
	return gw
}

func TestAssignTwice(t *testing.T) {
	gw := assignFixture()
	engine := plan.NewEngine(gw, plan.DefaultRules(), nil)

	a, err := engine.Assign(context.Background(), "alice", 10)
	require.NoError(t, err)
	require.Equal(t, 10, a.TenderID)
	require.Equal(t, 1, a.EmployeeID)
	require.NotZero(t, a.ID)

	_, err = engine.Assign(context.Background(), "alice", 10)
	require.ErrorIs(t, err, plan.ErrAlreadyAssigned)
	require.Equal(t, 1, gw.assocCount(10))
}

func TestAssignRaceRejectedByStorage(t *testing.T) {
	gw := assignFixture()
	// обе проверки видят "ещё не назначен"
	gw.IsAssignedFunc = func(ctx context.Context, username string, tenderID int) (bool, error) {
		return false, nil
	}
	engine := plan.NewEngine(gw, plan.DefaultRules(), nil)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := engine.Assign(context.Background(), "alice", 10)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if err == plan.ErrAlreadyAssigned {
				conflicts++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, succeeded)
	require.Equal(t, 7, conflicts)
	require.Equal(t, 1, gw.assocCount(10))
}

func TestAssignNotFound(t *testing.T) {
	engine := plan.NewEngine(assignFixture(), plan.DefaultRules(), nil)

	_, err := engine.Assign(context.Background(), "nobody", 10)
	require.ErrorIs(t, err, plan.ErrEmployeeNotFound)

	_, err = engine.Assign(context.Background(), "alice", 99)
	require.ErrorIs(t, err, plan.ErrTenderNotFound)
}

func TestAssignInvalidInput(t *testing.T) {
	engine := plan.NewEngine(assignFixture(), plan.DefaultRules(), nil)

	_, err := engine.Assign(context.Background(), "  ", 10)
	require.ErrorIs(t, err, plan.ErrInvalidInput)

	_, err = engine.Assign(context.Background(), "alice", 0)
	require.ErrorIs(t, err, plan.ErrInvalidInput)
}

func TestAssignPersistenceFailure(t *testing.T) {
	gw := assignFixture()
	gw.insertErr = errDB
	engine := plan.NewEngine(gw, plan.DefaultRules(), nil)

	_, err := engine.Assign(context.Background(), "alice", 10)
	var failure *plan.PersistenceFailure
	require.ErrorAs(t, err, &failure)
	require.Equal(t, 10, failure.TenderID)
	require.ErrorIs(t, err, errDB)
	require.Contains(t, err.Error(), "tender 10")
	require.Equal(t, 0, gw.assocCount(10))
}
