package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navdrishti/platform-api/internal/domain/entity"
)

func TestExplainDenialSignedOut(t *testing.T) {
	for _, c := range All() {
		assert.Equal(t, msgSignIn, ExplainDenial(c, nil), "%s", c)
	}
}

func TestExplainDenialRoleMismatch(t *testing.T) {
	// Verified individual asking about an NGO-only capability: the answer
	// must cite the role mismatch, not prompt for verification.
	ind := user(entity.UserTypeIndividual, entity.VerificationVerified, true, true)
	got := ExplainDenial(CapCreateServiceRequests, ind)
	assert.Contains(t, got, "Only NGOs")
	assert.NotContains(t, got, "not verified")

	ngo := user(entity.UserTypeNGO, entity.VerificationVerified, true, true)
	got = ExplainDenial(CapApplyToServiceRequests, ngo)
	assert.Contains(t, got, "cannot apply")
}

func TestExplainDenialVerificationPrompt(t *testing.T) {
	tests := []struct {
		ut   entity.UserType
		want string
	}{
		{entity.UserTypeIndividual, "identity verification"},
		{entity.UserTypeNGO, "NGO verification"},
		{entity.UserTypeCompany, "company verification"},
	}
	for _, tt := range tests {
		u := user(tt.ut, entity.VerificationUnverified, true, true)
		var c Capability
		if tt.ut == entity.UserTypeNGO {
			c = CapCreateServiceRequests
		} else {
			c = CapApplyToServiceRequests
		}
		assert.Contains(t, ExplainDenial(c, u), tt.want, "%s", tt.ut)
	}
}

func TestExplainDenialPendingReview(t *testing.T) {
	u := user(entity.UserTypeCompany, entity.VerificationPending, true, false)
	got := ExplainDenial(CapCreateMarketplaceListings, u)
	assert.Contains(t, got, "under review")
}

func TestExplainDenialSendMessages(t *testing.T) {
	u := user(entity.UserTypeIndividual, entity.VerificationUnverified, false, false)
	got := ExplainDenial(CapSendMessages, u)
	assert.Contains(t, got, "Confirm your email address or phone number")
}

func TestExplainDenialUnknownTypeGeneric(t *testing.T) {
	u := user("robot", entity.VerificationVerified, true, true)
	assert.Equal(t, msgGeneric, ExplainDenial(CapCreateServiceRequests, u))
	assert.Equal(t, msgGeneric, ExplainDenial(CapPurchaseFromMarketplace, u))
}

func TestExplainDenialBaselineFallback(t *testing.T) {
	u := user(entity.UserTypeIndividual, entity.VerificationVerified, true, true)
	assert.Equal(t, msgGeneric, ExplainDenial(CapCreatePosts, u))
}

func TestExplainDenialDeterministic(t *testing.T) {
	u := user(entity.UserTypeNGO, entity.VerificationPending, true, false)
	for _, c := range All() {
		assert.Equal(t, ExplainDenial(c, u), ExplainDenial(c, u))
	}
}
