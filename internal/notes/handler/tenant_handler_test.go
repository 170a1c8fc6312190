package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
)

func TestUpgradeRequiresAdmin(t *testing.T) {
	db := setupDB(t)
	e := newServer()

	tenant := seedTenant(t, db, "acme", model.PlanFree)
	member := seedUser(t, db, tenant, "member@acme.test", "pw", model.RoleMember)

	// A member is rejected even for their own tenant's slug.
	rec := doJSON(e, http.MethodPost, "/tenants/acme/upgrade", tokenFor(t, member, tenant), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The tenant stays on FREE.
	var check model.Tenant
	require.NoError(t, db.Where("slug = ?", "acme").First(&check).Error)
	assert.Equal(t, model.PlanFree, check.Plan)
}

func TestUpgradeRejectsForeignTenant(t *testing.T) {
	db := setupDB(t)
	e := newServer()

	acme := seedTenant(t, db, "acme", model.PlanFree)
	globex := seedTenant(t, db, "globex", model.PlanFree)
	acmeAdmin := seedUser(t, db, acme, "admin@acme.test", "pw", model.RoleAdmin)

	// An ADMIN elsewhere cannot upgrade another tenant.
	rec := doJSON(e, http.MethodPost, "/tenants/globex/upgrade", tokenFor(t, acmeAdmin, acme), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var check model.Tenant
	require.NoError(t, db.Where("id = ?", globex.ID).First(&check).Error)
	assert.Equal(t, model.PlanFree, check.Plan)
}

func TestUpgradeOwnTenant(t *testing.T) {
	db := setupDB(t)
	e := newServer()

	tenant := seedTenant(t, db, "acme", model.PlanFree)
	admin := seedUser(t, db, tenant, "admin@acme.test", "pw", model.RoleAdmin)

	rec := doJSON(e, http.MethodPost, "/tenants/acme/upgrade", tokenFor(t, admin, tenant), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Tenant  struct {
			Slug string `json:"slug"`
			Name string `json:"name"`
			Plan string `json:"plan"`
		} `json:"tenant"`
	}
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, "acme", resp.Tenant.Slug)
	assert.Equal(t, model.PlanPro, resp.Tenant.Plan)

	var check model.Tenant
	require.NoError(t, db.Where("slug = ?", "acme").First(&check).Error)
	assert.Equal(t, model.PlanPro, check.Plan)
}

func TestUpgradeLiftsQuota(t *testing.T) {
	db := setupDB(t)
	e := newServer()

	tenant := seedTenant(t, db, "acme", model.PlanFree)
	admin := seedUser(t, db, tenant, "admin@acme.test", "pw", model.RoleAdmin)

	freeToken := tokenFor(t, admin, tenant)
	for _, title := range []string{"a", "b", "c"} {
		rec := doJSON(e, http.MethodPost, "/notes", freeToken, map[string]string{"title": title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := doJSON(e, http.MethodPost, "/notes", freeToken, map[string]string{"title": "d"})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPost, "/tenants/acme/upgrade", freeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The identity is immutable for the lifetime of the token: the old
	// token still says FREE, so a fresh one must be issued.
	rec = doJSON(e, http.MethodPost, "/notes", freeToken, map[string]string{"title": "d"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var upgraded model.Tenant
	require.NoError(t, db.Where("slug = ?", "acme").First(&upgraded).Error)
	proToken := tokenFor(t, admin, upgraded)

	rec = doJSON(e, http.MethodPost, "/notes", proToken, map[string]string{"title": "d"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpgradeUnknownTenantIs404(t *testing.T) {
	db := setupDB(t)
	e := newServer()

	tenant := seedTenant(t, db, "acme", model.PlanFree)
	admin := seedUser(t, db, tenant, "admin@acme.test", "pw", model.RoleAdmin)

	// The tenant row vanished between token issuance and the request.
	require.NoError(t, db.Where("slug = ?", "acme").Delete(&model.Tenant{}).Error)

	rec := doJSON(e, http.MethodPost, "/tenants/acme/upgrade", tokenFor(t, admin, tenant), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
