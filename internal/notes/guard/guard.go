// Package guard holds the tenant-scoped authorization rules shared by
// the note and tenant handlers. Every check is a pure predicate over
// the identity embedded in the caller's token; handlers map the
// sentinel errors to HTTP statuses.
package guard

import (
	"errors"

	"github.com/ramyasree-2705/multi-tenant-SaaS/internal/notes/model"
)

// FreeNoteLimit is the maximum number of notes a FREE tenant may hold.
const FreeNoteLimit = 3

var (
	// ErrRoleRequired rejects a caller whose role is below the one
	// the operation demands. Maps to 403.
	ErrRoleRequired = errors.New("admin role required")

	// ErrTenantMismatch rejects a tenant-level action aimed at a
	// tenant other than the caller's own, regardless of role. Maps
	// to 403.
	ErrTenantMismatch = errors.New("cannot act on a different tenant")

	// ErrNoteLimit rejects note creation once a FREE tenant holds
	// FreeNoteLimit notes. Maps to 403 with code NOTE_LIMIT_REACHED.
	ErrNoteLimit = errors.New("note limit reached")
)

// Identity is the authenticated principal as embedded in the token.
// It is immutable for the lifetime of that token: a plan upgrade only
// becomes visible once a new token is issued.
type Identity struct {
	UserID     string
	Email      string
	Role       string
	TenantID   string
	TenantSlug string
	TenantPlan string
}

// RequireRole enforces the single role rule in the system: operations
// marked ADMIN-only reject everyone else.
func RequireRole(id Identity, role string) error {
	if role == model.RoleAdmin && id.Role != model.RoleAdmin {
		return ErrRoleRequired
	}
	return nil
}

// RequireSameTenant enforces that a tenant-level action targets the
// caller's own tenant. An ADMIN of another tenant is still rejected.
func RequireSameTenant(id Identity, targetSlug string) error {
	if targetSlug != id.TenantSlug {
		return ErrTenantMismatch
	}
	return nil
}

// CheckNoteQuota decides whether a tenant holding currentCount notes
// may create another. PRO tenants have no ceiling. The count is read
// fresh per request; two concurrent creations can race past the cap.
func CheckNoteQuota(id Identity, currentCount int64) error {
	if id.TenantPlan == model.PlanFree && currentCount >= FreeNoteLimit {
		return ErrNoteLimit
	}
	return nil
}
