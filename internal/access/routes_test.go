package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navdrishti/platform-api/internal/domain/entity"
)

func TestRouteAllowedDefaultOpen(t *testing.T) {
	assert.True(t, RouteAllowed(entity.UserTypeIndividual, "/some/unlisted/route"))
	assert.True(t, RouteAllowed("", "/some/unlisted/route"), "open routes need no account")
}

func TestRouteAllowedExactMatch(t *testing.T) {
	assert.True(t, RouteAllowed(entity.UserTypeNGO, "/ngos/dashboard"))
	assert.False(t, RouteAllowed(entity.UserTypeIndividual, "/ngos/dashboard"))
	assert.False(t, RouteAllowed(entity.UserTypeCompany, "/ngos/dashboard"))

	assert.True(t, RouteAllowed(entity.UserTypeCompany, "/companies/dashboard"))
	assert.False(t, RouteAllowed(entity.UserTypeNGO, "/companies/dashboard"))

	assert.True(t, RouteAllowed(entity.UserTypeIndividual, "/individuals/dashboard"))
	assert.False(t, RouteAllowed(entity.UserTypeNGO, "/individuals/dashboard"))
}

func TestRouteAllowedMissingType(t *testing.T) {
	assert.False(t, RouteAllowed("", "/ngos/dashboard"))
}

func TestRouteAllowedNoPrefixMatching(t *testing.T) {
	// Exact keys only: a sub-path of a guarded route is not itself guarded.
	assert.True(t, RouteAllowed(entity.UserTypeIndividual, "/ngos/dashboard/reports"))
}
