// Package access computes what an account is allowed to do on the platform.
//
// Every function in this package is pure: decisions are a deterministic
// function of the user snapshot passed in, there is no I/O, no caching and
// no shared state. A denied capability is an ordinary result, never an error.
package access

import (
	"github.com/navdrishti/platform-api/internal/domain/entity"
)

// Capability names a single boolean permission. Capabilities are typed
// constants so an unknown name is a compile error, not a runtime branch.
type Capability string

const (
	CapCreatePosts               Capability = "canCreatePosts"
	CapCommentOnPosts            Capability = "canCommentOnPosts"
	CapLikePosts                 Capability = "canLikePosts"
	CapAccessMarketplace         Capability = "canAccessMarketplace"
	CapReceiveMessages           Capability = "canReceiveMessages"
	CapSendMessages              Capability = "canSendMessages"
	CapViewFullProfiles          Capability = "canViewFullProfiles"
	CapAccessDashboard           Capability = "canAccessDashboard"
	CapAccessVerificationPage    Capability = "canAccessVerificationPage"
	CapApplyToServiceRequests    Capability = "canApplyToServiceRequests"
	CapApplyToServiceOffers      Capability = "canApplyToServiceOffers"
	CapCreateServiceRequests     Capability = "canCreateServiceRequests"
	CapCreateServiceOffers       Capability = "canCreateServiceOffers"
	CapCreateMarketplaceListings Capability = "canCreateMarketplaceListings"
	CapPurchaseFromMarketplace   Capability = "canPurchaseFromMarketplace"
)

// Permissions is the full capability record for one account snapshot.
// It is derived on every call and never persisted.
type Permissions struct {
	CreatePosts               bool `json:"canCreatePosts"`
	CommentOnPosts            bool `json:"canCommentOnPosts"`
	LikePosts                 bool `json:"canLikePosts"`
	AccessMarketplace         bool `json:"canAccessMarketplace"`
	ReceiveMessages           bool `json:"canReceiveMessages"`
	SendMessages              bool `json:"canSendMessages"`
	ViewFullProfiles          bool `json:"canViewFullProfiles"`
	AccessDashboard           bool `json:"canAccessDashboard"`
	AccessVerificationPage    bool `json:"canAccessVerificationPage"`
	ApplyToServiceRequests    bool `json:"canApplyToServiceRequests"`
	ApplyToServiceOffers      bool `json:"canApplyToServiceOffers"`
	CreateServiceRequests     bool `json:"canCreateServiceRequests"`
	CreateServiceOffers       bool `json:"canCreateServiceOffers"`
	CreateMarketplaceListings bool `json:"canCreateMarketplaceListings"`
	PurchaseFromMarketplace   bool `json:"canPurchaseFromMarketplace"`
}

// Resolve maps an account snapshot to its complete capability record.
// A nil user (unauthenticated) gets the zero record: everything denied.
//
// Baseline capabilities are granted to any authenticated account regardless
// of document review; sending messages additionally requires a confirmed
// email or phone channel. The type-specific overlay only applies once the
// account is fully verified. Unknown account types keep the baseline.
func Resolve(u *entity.User) Permissions {
	if u == nil {
		return Permissions{}
	}

	p := Permissions{
		CreatePosts:            true,
		CommentOnPosts:         true,
		LikePosts:              true,
		AccessMarketplace:      true,
		ReceiveMessages:        true,
		SendMessages:           u.HasBasicVerification(),
		ViewFullProfiles:       true,
		AccessDashboard:        true,
		AccessVerificationPage: true,
	}

	if !u.IsVerified() {
		return p
	}

	switch u.UserType {
	case entity.UserTypeIndividual:
		p.ApplyToServiceRequests = true
		p.ApplyToServiceOffers = true
		p.CreateMarketplaceListings = true
		p.PurchaseFromMarketplace = true
	case entity.UserTypeNGO:
		// NGOs originate requests and offers; they never apply.
		p.CreateServiceRequests = true
		p.CreateServiceOffers = true
		p.CreateMarketplaceListings = true
		p.PurchaseFromMarketplace = true
	case entity.UserTypeCompany:
		p.ApplyToServiceRequests = true
		p.ApplyToServiceOffers = true
		p.CreateMarketplaceListings = true
		p.PurchaseFromMarketplace = true
	}

	return p
}

// Has reports whether the account holds a single capability.
func Has(u *entity.User, c Capability) bool {
	return Resolve(u).Get(c)
}

// Get returns one field of the record by capability name.
func (p Permissions) Get(c Capability) bool {
	switch c {
	case CapCreatePosts:
		return p.CreatePosts
	case CapCommentOnPosts:
		return p.CommentOnPosts
	case CapLikePosts:
		return p.LikePosts
	case CapAccessMarketplace:
		return p.AccessMarketplace
	case CapReceiveMessages:
		return p.ReceiveMessages
	case CapSendMessages:
		return p.SendMessages
	case CapViewFullProfiles:
		return p.ViewFullProfiles
	case CapAccessDashboard:
		return p.AccessDashboard
	case CapAccessVerificationPage:
		return p.AccessVerificationPage
	case CapApplyToServiceRequests:
		return p.ApplyToServiceRequests
	case CapApplyToServiceOffers:
		return p.ApplyToServiceOffers
	case CapCreateServiceRequests:
		return p.CreateServiceRequests
	case CapCreateServiceOffers:
		return p.CreateServiceOffers
	case CapCreateMarketplaceListings:
		return p.CreateMarketplaceListings
	case CapPurchaseFromMarketplace:
		return p.PurchaseFromMarketplace
	}
	return false
}

// All lists every capability in declaration order.
func All() []Capability {
	return []Capability{
		CapCreatePosts,
		CapCommentOnPosts,
		CapLikePosts,
		CapAccessMarketplace,
		CapReceiveMessages,
		CapSendMessages,
		CapViewFullProfiles,
		CapAccessDashboard,
		CapAccessVerificationPage,
		CapApplyToServiceRequests,
		CapApplyToServiceOffers,
		CapCreateServiceRequests,
		CapCreateServiceOffers,
		CapCreateMarketplaceListings,
		CapPurchaseFromMarketplace,
	}
}

// Denied lists the capabilities this record does not hold.
func (p Permissions) Denied() []Capability {
	var out []Capability
	for _, c := range All() {
		if !p.Get(c) {
			out = append(out, c)
		}
	}
	return out
}
