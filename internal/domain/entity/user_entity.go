package entity

import (
	"time"
)

// UserType is the account archetype, fixed at registration.
type UserType string

const (
	UserTypeIndividual UserType = "individual"
	UserTypeNGO        UserType = "ngo"
	UserTypeCompany    UserType = "company"
)

// VerificationStatus reflects the document-review workflow.
// Channel confirmation (email/phone) is tracked separately.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID                 string
	Email              string
	Password           string
	Name               string
	AvatarURL          string
	UserType           UserType
	VerificationStatus VerificationStatus
	EmailVerified      bool
	PhoneVerified      bool
	Phone              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsVerified reports whether document review completed successfully.
func (u *User) IsVerified() bool {
	return u.VerificationStatus == VerificationVerified
}

// HasBasicVerification reports whether at least one contact channel is confirmed.
func (u *User) HasBasicVerification() bool {
	return u.EmailVerified || u.PhoneVerified
}
