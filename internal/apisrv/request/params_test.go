package request

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizgrid/bizgrid/internal/apisrv/config"
)

func values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestTenantFromQuery(t *testing.T) {
	tenant, err := TenantFromQuery(values("tenant_id", "Tcustomer1"))
	require.Nil(t, err)
	assert.Equal(t, "Tcustomer1", tenant.String())

	// UUIDs are accepted as tenant ids too.
	tenant, err = TenantFromQuery(values("tenant_id", "2d45ec1a-9f6e-4f3c-8b7a-1c2d3e4f5a6b"))
	require.Nil(t, err)
	assert.NotEmpty(t, tenant)

	_, err = TenantFromQuery(values())
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "tenant_id")
	assert.Contains(t, err.Error(), "required")

	// Empty behaves exactly like absent.
	_, emptyErr := TenantFromQuery(values("tenant_id", ""))
	require.NotNil(t, emptyErr)
	assert.Equal(t, err.Error(), emptyErr.Error())

	_, err = TenantFromQuery(values("tenant_id", "short"))
	assert.NotNil(t, err)
}

func TestTenantFromQueryOrBody(t *testing.T) {
	// Query wins over body.
	tenant, err := TenantFromQueryOrBody(values("tenant_id", "Tqueryten1"), "Tbodytenant")
	require.Nil(t, err)
	assert.Equal(t, "Tqueryten1", tenant.String())

	tenant, err = TenantFromQueryOrBody(values(), "Tbodytenant")
	require.Nil(t, err)
	assert.Equal(t, "Tbodytenant", tenant.String())

	_, err = TenantFromQueryOrBody(values(), "")
	assert.NotNil(t, err)
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage(values())
	require.Nil(t, err)
	assert.Equal(t, config.Config().DefaultPageLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)

	page, err = ParsePage(values("limit", "10", "offset", "30"))
	require.Nil(t, err)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 30, page.Offset)

	// Oversized limit clamps to the configured maximum.
	page, err = ParsePage(values("limit", "999999"))
	require.Nil(t, err)
	assert.Equal(t, config.Config().MaxPageLimit, page.Limit)

	for _, bad := range [][]string{
		{"limit", "-1"},
		{"offset", "-1"},
		{"limit", "abc"},
		{"offset", "1.5"},
	} {
		_, err = ParsePage(values(bad...))
		assert.NotNil(t, err, "expected rejection for %v", bad)
	}
}

func TestParseResourceID(t *testing.T) {
	id, err := ParseResourceID("2d45ec1a-9f6e-4f3c-8b7a-1c2d3e4f5a6b")
	require.Nil(t, err)
	assert.Equal(t, "2d45ec1a-9f6e-4f3c-8b7a-1c2d3e4f5a6b", id.String())

	_, err = ParseResourceID("42")
	assert.NotNil(t, err)
}

func TestParseAuditFilter(t *testing.T) {
	filter, err := ParseAuditFilter(values(
		"action", "create",
		"entity_type", "lead",
		"user_id", "ops@example.com",
		"from", "2026-08-01T00:00:00Z",
		"to", "2026-08-25T00:00:00Z",
	))
	require.Nil(t, err)
	assert.Equal(t, "create", filter.Action)
	assert.Equal(t, "lead", filter.EntityType)
	assert.Equal(t, "ops@example.com", filter.ActorID)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), filter.From.UTC())

	_, err = ParseAuditFilter(values("from", "last tuesday"))
	assert.NotNil(t, err)
}
