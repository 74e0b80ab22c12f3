package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/navdrishti/platform-api/config"
	"github.com/navdrishti/platform-api/internal/domain/entity"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
	"github.com/navdrishti/platform-api/pkg/helpers"
	"github.com/navdrishti/platform-api/pkg/mailer"
	tpl "github.com/navdrishti/platform-api/pkg/mailer/templates"
)

var (
	ErrTargetNotFound = errors.New("target not found")
	ErrTargetClosed   = errors.New("target is closed")
	ErrAlreadyApplied = errors.New("already applied")
	ErrOwnTarget      = errors.New("cannot apply to your own posting")
)

// ExchangeService owns the service request/offer workflow: NGOs publish,
// individuals and companies apply. Permission checks happen upstream in the
// request authorizer; this service enforces state-level rules only.
type ExchangeService struct {
	Repo     repo.ServiceRepository
	Users    repo.UserRepository
	Pub      *helpers.RabbitPublisher
	Logger   *logrus.Logger
	Cfg      *config.Config
}

func NewExchangeService(sr repo.ServiceRepository, ur repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, cfg *config.Config) *ExchangeService {
	return &ExchangeService{Repo: sr, Users: ur, Pub: pub, Logger: logger, Cfg: cfg}
}

type PostingInput struct {
	Title       string
	Description string
	Category    string
	Location    string
}

func (s *ExchangeService) CreateRequest(ctx context.Context, owner *entity.User, in PostingInput) (*entity.ServiceRequest, error) {
	sr := &entity.ServiceRequest{
		NGOID:       owner.ID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Open:        true,
	}
	if err := s.Repo.CreateRequest(sr); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"request_id": sr.ID, "ngo_id": owner.ID}).Info("service request created")
	}
	return sr, nil
}

func (s *ExchangeService) CreateOffer(ctx context.Context, owner *entity.User, in PostingInput) (*entity.ServiceOffer, error) {
	so := &entity.ServiceOffer{
		NGOID:       owner.ID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Open:        true,
	}
	if err := s.Repo.CreateOffer(so); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"offer_id": so.ID, "ngo_id": owner.ID}).Info("service offer created")
	}
	return so, nil
}

func (s *ExchangeService) ListRequests(ctx context.Context, limit, offset int) ([]*entity.ServiceRequest, error) {
	return s.Repo.ListOpenRequests(clampLimit(limit), offset)
}

func (s *ExchangeService) ListOffers(ctx context.Context, limit, offset int) ([]*entity.ServiceOffer, error) {
	return s.Repo.ListOpenOffers(clampLimit(limit), offset)
}

// ApplyToRequest records an application against an open service request and
// notifies the owning NGO.
func (s *ExchangeService) ApplyToRequest(ctx context.Context, applicant *entity.User, requestID, message string) (*entity.Application, error) {
	sr, err := s.Repo.GetRequest(requestID)
	if err != nil || sr == nil {
		return nil, ErrTargetNotFound
	}
	return s.apply(ctx, applicant, entity.TargetServiceRequest, sr.ID, sr.NGOID, sr.Title, sr.Open, message)
}

// ApplyToOffer records an application against an open service offer.
func (s *ExchangeService) ApplyToOffer(ctx context.Context, applicant *entity.User, offerID, message string) (*entity.Application, error) {
	so, err := s.Repo.GetOffer(offerID)
	if err != nil || so == nil {
		return nil, ErrTargetNotFound
	}
	return s.apply(ctx, applicant, entity.TargetServiceOffer, so.ID, so.NGOID, so.Title, so.Open, message)
}

func (s *ExchangeService) apply(ctx context.Context, applicant *entity.User, target entity.ApplicationTarget, targetID, ownerID, title string, open bool, message string) (*entity.Application, error) {
	if !open {
		return nil, ErrTargetClosed
	}
	if ownerID == applicant.ID {
		return nil, ErrOwnTarget
	}
	if applied, err := s.Repo.HasApplied(target, targetID, applicant.ID); err != nil {
		return nil, err
	} else if applied {
		return nil, ErrAlreadyApplied
	}

	a := &entity.Application{
		TargetType:  target,
		TargetID:    targetID,
		ApplicantID: applicant.ID,
		Message:     message,
		Status:      "submitted",
	}
	if err := s.Repo.CreateApplication(a); err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, ownerID, title, applicant.Name)
	return a, nil
}

func (s *ExchangeService) notifyOwner(ctx context.Context, ownerID, title, applicantName string) {
	if s.Pub == nil || s.Cfg == nil || !s.Cfg.MailSendEnabled {
		return
	}
	owner, err := s.Users.GetByID(ownerID)
	if err != nil || owner == nil {
		return
	}
	job := mailer.EmailJob{
		To:       owner.Email,
		Template: tpl.ApplicationReceived,
		Data: tpl.ToMap(tpl.EmailData{
			Name:      owner.Name,
			AppName:   s.Cfg.AppName,
			Title:     title,
			Detail:    applicantName + " applied.",
			ActionURL: s.Cfg.DashboardURL,
		}),
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("owner_id", ownerID).Warn("application notification publish failed")
	}
}

// ListApplications returns applications for a posting, restricted to its owner.
func (s *ExchangeService) ListApplications(ctx context.Context, requester *entity.User, target entity.ApplicationTarget, targetID string) ([]*entity.Application, error) {
	var ownerID string
	switch target {
	case entity.TargetServiceRequest:
		sr, err := s.Repo.GetRequest(targetID)
		if err != nil || sr == nil {
			return nil, ErrTargetNotFound
		}
		ownerID = sr.NGOID
	case entity.TargetServiceOffer:
		so, err := s.Repo.GetOffer(targetID)
		if err != nil || so == nil {
			return nil, ErrTargetNotFound
		}
		ownerID = so.NGOID
	default:
		return nil, ErrTargetNotFound
	}
	if ownerID != requester.ID {
		return nil, ErrTargetNotFound
	}
	return s.Repo.ListApplications(target, targetID)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 50 {
		return 20
	}
	return limit
}
