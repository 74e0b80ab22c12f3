package access

import (
	"github.com/navdrishti/platform-api/internal/domain/entity"
)

const (
	msgSignIn  = "Please sign in to continue."
	msgGeneric = "You don't have permission to perform this action."
)

// typeGated maps each role-restricted capability to the account types that
// may ever hold it. Capabilities absent from this table are either baseline
// or open to every known type.
var typeGated = map[Capability][]entity.UserType{
	CapApplyToServiceRequests:    {entity.UserTypeIndividual, entity.UserTypeCompany},
	CapApplyToServiceOffers:      {entity.UserTypeIndividual, entity.UserTypeCompany},
	CapCreateServiceRequests:     {entity.UserTypeNGO},
	CapCreateServiceOffers:       {entity.UserTypeNGO},
	CapCreateMarketplaceListings: {entity.UserTypeIndividual, entity.UserTypeNGO, entity.UserTypeCompany},
	CapPurchaseFromMarketplace:   {entity.UserTypeIndividual, entity.UserTypeNGO, entity.UserTypeCompany},
}

// roleMismatch holds the explanation used when an account of the wrong type
// asks about a capability it can never hold, clarifying the intended workflow.
var roleMismatch = map[Capability]string{
	CapApplyToServiceRequests:    "NGOs publish service requests and cannot apply to them. Create a request to reach volunteers instead.",
	CapApplyToServiceOffers:      "NGOs publish service offers and cannot apply to them. Create an offer to reach beneficiaries instead.",
	CapCreateServiceRequests:     "Only NGOs can create service requests. Individuals and companies can apply to open requests instead.",
	CapCreateServiceOffers:       "Only NGOs can create service offers. Individuals and companies can apply to open offers instead.",
	CapCreateMarketplaceListings: "Your account type cannot publish marketplace listings.",
	CapPurchaseFromMarketplace:   "Your account type cannot purchase from the marketplace.",
}

// ExplainDenial returns a human-readable sentence for why the given
// capability is denied. Pure string selection; it never fails.
//
// Branch order: unauthenticated, wrong account type, right type but not
// verified, then a generic fallback.
func ExplainDenial(c Capability, u *entity.User) string {
	if u == nil {
		return msgSignIn
	}

	if c == CapSendMessages && !u.HasBasicVerification() {
		return "Confirm your email address or phone number before sending messages."
	}

	allowed, gated := typeGated[c]
	if !gated {
		return msgGeneric
	}

	if !containsType(allowed, u.UserType) {
		if !knownType(u.UserType) {
			return msgGeneric
		}
		if msg, ok := roleMismatch[c]; ok {
			return msg
		}
		return msgGeneric
	}

	if !u.IsVerified() {
		return verificationPrompt(u)
	}

	return msgGeneric
}

func verificationPrompt(u *entity.User) string {
	if u.VerificationStatus == entity.VerificationPending {
		return "Your verification documents are under review. This feature unlocks once approval completes."
	}
	switch u.UserType {
	case entity.UserTypeIndividual:
		return "Your account is not verified yet. Complete identity verification from your dashboard to unlock this feature."
	case entity.UserTypeNGO:
		return "Your NGO is not verified yet. Complete NGO verification from your dashboard to unlock this feature."
	case entity.UserTypeCompany:
		return "Your company is not verified yet. Complete company verification from your dashboard to unlock this feature."
	}
	return msgGeneric
}

func knownType(t entity.UserType) bool {
	switch t {
	case entity.UserTypeIndividual, entity.UserTypeNGO, entity.UserTypeCompany:
		return true
	}
	return false
}

func containsType(types []entity.UserType, t entity.UserType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}
