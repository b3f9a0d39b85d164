package apicommon

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const tenantCodeLen = 10

// NewTenantId generates a short tenant code. Nanoid collisions are improbable
// at this length but uniqueness is still enforced by the store.
func NewTenantId() TenantId {
	id, err := gonanoid.New(tenantCodeLen)
	if err != nil {
		return ""
	}
	return TenantId("T" + id)
}
