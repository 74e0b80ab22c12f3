package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navdrishti/platform-api/internal/domain/entity"
)

func user(t entity.UserType, vs entity.VerificationStatus, email, phone bool) *entity.User {
	return &entity.User{
		ID:                 "u1",
		UserType:           t,
		VerificationStatus: vs,
		EmailVerified:      email,
		PhoneVerified:      phone,
	}
}

func TestResolveNilUser(t *testing.T) {
	p := Resolve(nil)
	assert.Equal(t, Permissions{}, p)
	for _, c := range All() {
		assert.False(t, p.Get(c), "nil user must not hold %s", c)
	}
}

func TestResolveDeterministic(t *testing.T) {
	types := []entity.UserType{
		entity.UserTypeIndividual, entity.UserTypeNGO, entity.UserTypeCompany, "robot",
	}
	statuses := []entity.VerificationStatus{
		entity.VerificationUnverified, entity.VerificationPending, entity.VerificationVerified,
	}
	flags := []bool{false, true}

	for _, ut := range types {
		for _, vs := range statuses {
			for _, e := range flags {
				for _, ph := range flags {
					u := user(ut, vs, e, ph)
					assert.Equal(t, Resolve(u), Resolve(u),
						"type=%s status=%s email=%v phone=%v", ut, vs, e, ph)
				}
			}
		}
	}
}

func TestResolveBaselineBeforeVerification(t *testing.T) {
	for _, ut := range []entity.UserType{entity.UserTypeIndividual, entity.UserTypeNGO, entity.UserTypeCompany} {
		p := Resolve(user(ut, entity.VerificationUnverified, false, false))

		assert.True(t, p.CreatePosts)
		assert.True(t, p.CommentOnPosts)
		assert.True(t, p.LikePosts)
		assert.True(t, p.AccessMarketplace)
		assert.True(t, p.ReceiveMessages)
		assert.True(t, p.ViewFullProfiles)
		assert.True(t, p.AccessDashboard)
		assert.True(t, p.AccessVerificationPage)

		assert.False(t, p.SendMessages, "no confirmed channel yet")
		assert.False(t, p.ApplyToServiceRequests)
		assert.False(t, p.ApplyToServiceOffers)
		assert.False(t, p.CreateServiceRequests)
		assert.False(t, p.CreateServiceOffers)
		assert.False(t, p.CreateMarketplaceListings)
		assert.False(t, p.PurchaseFromMarketplace)
	}
}

func TestResolveVerificationGate(t *testing.T) {
	tests := []struct {
		name   string
		status entity.VerificationStatus
		want   bool
	}{
		{"unverified", entity.VerificationUnverified, false},
		{"pending", entity.VerificationPending, false},
		{"verified", entity.VerificationVerified, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Channel flags must not influence the document-review gate.
			p := Resolve(user(entity.UserTypeNGO, tt.status, true, true))
			assert.Equal(t, tt.want, p.CreateServiceRequests)
			assert.Equal(t, tt.want, p.CreateServiceOffers)
		})
	}
}

func TestResolveRoleExclusivity(t *testing.T) {
	ngo := Resolve(user(entity.UserTypeNGO, entity.VerificationVerified, true, true))
	assert.False(t, ngo.ApplyToServiceRequests, "NGOs never apply to requests")
	assert.False(t, ngo.ApplyToServiceOffers, "NGOs never apply to offers")
	assert.True(t, ngo.CreateServiceRequests)
	assert.True(t, ngo.CreateServiceOffers)

	ind := Resolve(user(entity.UserTypeIndividual, entity.VerificationVerified, true, false))
	assert.True(t, ind.ApplyToServiceRequests)
	assert.True(t, ind.ApplyToServiceOffers)
	assert.False(t, ind.CreateServiceRequests)
	assert.False(t, ind.CreateServiceOffers)

	co := Resolve(user(entity.UserTypeCompany, entity.VerificationVerified, true, false))
	assert.True(t, co.ApplyToServiceRequests)
	assert.True(t, co.ApplyToServiceOffers)
	assert.False(t, co.CreateServiceRequests)
	assert.False(t, co.CreateServiceOffers)
}

func TestResolveVerifiedOverlayMarketplace(t *testing.T) {
	for _, ut := range []entity.UserType{entity.UserTypeIndividual, entity.UserTypeNGO, entity.UserTypeCompany} {
		p := Resolve(user(ut, entity.VerificationVerified, true, false))
		assert.True(t, p.CreateMarketplaceListings, "%s", ut)
		assert.True(t, p.PurchaseFromMarketplace, "%s", ut)
	}
}

func TestResolveUnknownTypeBaselineOnly(t *testing.T) {
	p := Resolve(user("robot", entity.VerificationVerified, true, true))
	assert.True(t, p.CreatePosts)
	assert.True(t, p.SendMessages)
	assert.False(t, p.ApplyToServiceRequests)
	assert.False(t, p.CreateServiceRequests)
	assert.False(t, p.CreateMarketplaceListings)
	assert.False(t, p.PurchaseFromMarketplace)
}

func TestResolvePendingCompanyScenario(t *testing.T) {
	p := Resolve(user(entity.UserTypeCompany, entity.VerificationPending, true, false))
	assert.True(t, p.SendMessages, "basic verification met via email")
	assert.False(t, p.CreateMarketplaceListings, "not fully verified")
	assert.True(t, p.CreatePosts)
}

func TestSendMessagesRequiresChannel(t *testing.T) {
	assert.False(t, Resolve(user(entity.UserTypeIndividual, entity.VerificationVerified, false, false)).SendMessages)
	assert.True(t, Resolve(user(entity.UserTypeIndividual, entity.VerificationUnverified, false, true)).SendMessages)
}

func TestHasMatchesResolve(t *testing.T) {
	u := user(entity.UserTypeNGO, entity.VerificationVerified, true, false)
	p := Resolve(u)
	for _, c := range All() {
		assert.Equal(t, p.Get(c), Has(u, c), "%s", c)
	}
}

func TestDeniedListsComplement(t *testing.T) {
	u := user(entity.UserTypeCompany, entity.VerificationUnverified, false, false)
	p := Resolve(u)
	denied := p.Denied()
	require.NotEmpty(t, denied)
	seen := make(map[Capability]bool, len(denied))
	for _, c := range denied {
		assert.False(t, p.Get(c))
		seen[c] = true
	}
	for _, c := range All() {
		if p.Get(c) {
			assert.False(t, seen[c], "%s granted but listed as denied", c)
		}
	}
}
