package access

import (
	"github.com/navdrishti/platform-api/internal/domain/entity"
)

// routeTable is a deliberate allow-list covering only the role-scoped
// dashboard paths. Paths absent from the table are open; per-capability
// checks are the primary enforcement layer (see middleware.RequirePermission).
// Exact string match only, no wildcards.
var routeTable = map[string][]entity.UserType{
	"/ngos/dashboard":        {entity.UserTypeNGO},
	"/companies/dashboard":   {entity.UserTypeCompany},
	"/individuals/dashboard": {entity.UserTypeIndividual},
}

// RouteAllowed reports whether an account type may access a path.
// Unlisted paths are open to everyone; listed paths require a known
// account type on the allow-list.
func RouteAllowed(t entity.UserType, path string) bool {
	allowed, ok := routeTable[path]
	if !ok {
		return true
	}
	if t == "" {
		return false
	}
	return containsType(allowed, t)
}
