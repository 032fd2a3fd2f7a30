package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"erpforms/internal/model"
	"erpforms/internal/repository"
	"erpforms/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ConcurrentCreationsGetDistinctIDs(t *testing.T) {
	f := newFixture(t)
	svc := NewCatalogService(f.deps, f.records)

	const n = 20
	var wg sync.WaitGroup
	ids := make(chan int64, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.CreateDepartment(context.Background(), CreateNamedRequest{Name: fmt.Sprintf("Dept %d", i)})
			if err != nil {
				errs <- err
				return
			}
			ids <- res.Record.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, int64(n), f.count(t, &model.Department{}))
	assert.Equal(t, int64(n), f.count(t, &model.AuditLog{}))
}

func TestCreate_AuditFailureRollsBackRecord(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Migrator().DropTable(&model.AuditLog{}))
	svc := NewCatalogService(f.deps, f.records)

	_, err := svc.CreateDepartment(context.Background(), CreateNamedRequest{Name: "Dyeing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write audit log")
	assert.Zero(t, f.count(t, &model.Department{}))
	assert.Empty(t, f.events.events)
}

// opaqueDepartment is stored like a department but cannot be encoded for the audit trail.
type opaqueDepartment struct {
	model.Department
}

func (opaqueDepartment) MarshalJSON() ([]byte, error) {
	return nil, errors.New("not encodable")
}

func TestCreate_AuditEncodingFailureRollsBackRecord(t *testing.T) {
	f := newFixture(t)
	deps := f.deps.withDefaults()
	dept := &opaqueDepartment{Department: model.Department{Name: "Dyeing"}}

	_, err := create(context.Background(), deps, creation[opaqueDepartment]{
		entity:  model.EntityDepartment,
		label:   "Department",
		repo:    repository.NewRecordRepository[opaqueDepartment](f.db),
		record:  dept,
		v:       validation.New(deps.Now),
		assign:  func(n int64, _ string) { dept.ID = n },
		summary: func() Created { return Created{Entity: model.EntityDepartment, ID: dept.ID, Name: dept.Name} },
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode audit details")
	assert.Zero(t, f.count(t, &model.Department{}))
	assert.Zero(t, f.count(t, &model.AuditLog{}))
	assert.Empty(t, f.events.events)
}
