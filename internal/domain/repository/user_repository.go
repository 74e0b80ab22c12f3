package repository

import "github.com/navdrishti/platform-api/internal/domain/entity"

// UserRepository defines the interface for account-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	UpdatePassword(id, passwordHash string) error
	SetEmailVerified(id string) error
	SetPhoneVerified(id string) error
	SetVerificationStatus(id string, status entity.VerificationStatus) error
}
