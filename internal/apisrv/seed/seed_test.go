package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/db/memdb"
	"github.com/bizgrid/bizgrid/internal/apisrv/pagination"
)

const manifestDoc = `
tenants:
  - id: Tseed00001
    name: Acme
    accounts:
      - name: Acme HQ
        industry: logistics
    leads:
      - name: Jamie
        email: jamie@example.com
      - name: Robin
        status: contacted
    assistants:
      - name: Sales Coach
        model: gpt-4o-mini
        instructions: Coach reps on follow-ups.
  - name: Unnamed Tenant
`

func writeManifest(t *testing.T, doc string) string {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	store := memdb.New()
	ctx := context.Background()

	require.NoError(t, Load(ctx, store, writeManifest(t, manifestDoc)))

	tenant, err := store.GetTenant(ctx, apicommon.TenantId("Tseed00001"))
	require.Nil(t, err)
	assert.Equal(t, "Acme", tenant.Name)

	accounts, total, err := store.ListAccounts(ctx, tenant.TenantID, pagination.Page{Limit: 10})
	require.Nil(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Acme HQ", accounts[0].Name)

	leads, total, err := store.ListLeads(ctx, tenant.TenantID, pagination.Page{Limit: 10})
	require.Nil(t, err)
	assert.Equal(t, 2, total)
	for _, lead := range leads {
		assert.NotEmpty(t, lead.Status, "seeded leads always carry a status")
	}

	assistants, err := store.ListAssistants(ctx, tenant.TenantID)
	require.Nil(t, err)
	require.Len(t, assistants, 1)
	assert.Equal(t, "Sales Coach", assistants[0].Name)
	assert.Equal(t, "gpt-4o-mini", assistants[0].Model)
}

func TestLoadIsIdempotent(t *testing.T) {
	store := memdb.New()
	ctx := context.Background()
	path := writeManifest(t, manifestDoc)

	require.NoError(t, Load(ctx, store, path))
	require.NoError(t, Load(ctx, store, path), "re-seeding an existing tenant is not an error")

	_, total, err := store.ListLeads(ctx, apicommon.TenantId("Tseed00001"), pagination.Page{Limit: 10})
	require.Nil(t, err)
	assert.Equal(t, 2, total, "existing tenants are skipped, not re-seeded")
}

func TestLoadRejectsBadManifest(t *testing.T) {
	store := memdb.New()
	ctx := context.Background()

	assert.Error(t, Load(ctx, store, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, Load(ctx, store, writeManifest(t, "tenants:\n  - id: bad id\n")))
	assert.Error(t, Load(ctx, store, writeManifest(t, "{ not yaml")))
}
