package repository

import "github.com/navdrishti/platform-api/internal/domain/entity"

// ListingRepository defines marketplace persistence operations.
type ListingRepository interface {
	Create(l *entity.Listing) error
	GetByID(id string) (*entity.Listing, error)
	ListActive(limit, offset int) ([]*entity.Listing, error)
	Update(l *entity.Listing) error
	CreatePurchase(p *entity.Purchase) error
}
