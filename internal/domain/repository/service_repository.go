package repository

import "github.com/navdrishti/platform-api/internal/domain/entity"

// ServiceRepository defines persistence for the service exchange:
// NGO-published requests/offers and the applications made against them.
type ServiceRepository interface {
	CreateRequest(r *entity.ServiceRequest) error
	GetRequest(id string) (*entity.ServiceRequest, error)
	ListOpenRequests(limit, offset int) ([]*entity.ServiceRequest, error)

	CreateOffer(o *entity.ServiceOffer) error
	GetOffer(id string) (*entity.ServiceOffer, error)
	ListOpenOffers(limit, offset int) ([]*entity.ServiceOffer, error)

	CreateApplication(a *entity.Application) error
	HasApplied(target entity.ApplicationTarget, targetID, applicantID string) (bool, error)
	ListApplications(target entity.ApplicationTarget, targetID string) ([]*entity.Application, error)
}
