package service

import (
	"context"
	"encoding/json"
	"testing"

	"erpforms/internal/model"
	"erpforms/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedSupplier(t, 1, "Acme Textiles", model.PartnerStatusActive)
	f.seedSupplier(t, 2, "Bravo Chemicals", model.PartnerStatusActive)
	svc := NewLookupService(repository.NewLookupRepository(f.db))

	res, err := svc.Lookup(ctx, "suppliers", "acme")
	require.NoError(t, err)
	suppliers, ok := res.([]model.SupplierLookup)
	require.True(t, ok)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "SUP-0001", suppliers[0].Code)

	res, err = svc.Lookup(ctx, "departments", "")
	require.NoError(t, err)
	assert.Empty(t, res)

	_, err = svc.Lookup(ctx, "invoices", "")
	assert.ErrorIs(t, err, ErrUnknownLookup)

	assert.Contains(t, svc.Names(), "purchase-orders")
	assert.Len(t, svc.Choices(), len(model.AllChoiceSets()))
}

func TestAuditService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	catalog := NewCatalogService(f.deps, f.records)
	for _, name := range []string{"Dyeing", "Finishing", "Stores"} {
		_, err := catalog.CreateDepartment(WithActor(ctx, "u-1"), CreateNamedRequest{Name: name})
		require.NoError(t, err)
	}
	_, err := catalog.CreateInventoryCategory(ctx, CreateNamedRequest{Name: "Chemicals"})
	require.NoError(t, err)

	svc := NewAuditService(f.deps.Audit)

	logs, total, err := svc.GetAuditLogs(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, logs, 2)
	assert.Equal(t, "Chemicals", logs[0].EntityName)
	assert.Equal(t, "System", logs[0].Actor)
	assert.JSONEq(t, `"Chemicals"`, string(mustField(t, logs[0].Details, "name")))

	logs, total, err = svc.GetAuditLogs(ctx, model.EntityDepartment, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "u-1", logs[0].Actor)
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	return m[key]
}
