package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/navdrishti/platform-api/internal/domain/entity"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingInactive = errors.New("listing is not active")
	ErrOwnListing      = errors.New("cannot purchase your own listing")
)

// MarketplaceService owns listings and purchase intents. There is no payment
// settlement here; a purchase records the buyer's commitment only.
type MarketplaceService struct {
	Repo            repo.ListingRepository
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESListingsIndex string
}

func NewMarketplaceService(lr repo.ListingRepository, logger *logrus.Logger, es *elasticsearch.Client, esListingsIndex string) *MarketplaceService {
	return &MarketplaceService{Repo: lr, Logger: logger, ES: es, ESListingsIndex: esListingsIndex}
}

type ListingInput struct {
	Title       string
	Description string
	Category    string
	PriceCents  int64
	Currency    string
}

func (s *MarketplaceService) CreateListing(ctx context.Context, seller *entity.User, in ListingInput) (*entity.Listing, error) {
	l := &entity.Listing{
		SellerID:    seller.ID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		Currency:    in.Currency,
		Active:      true,
	}
	if l.Currency == "" {
		l.Currency = "INR"
	}
	if err := s.Repo.Create(l); err != nil {
		return nil, err
	}
	_ = s.indexListing(ctx, l)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"listing_id": l.ID, "seller_id": seller.ID}).Info("listing created")
	}
	return l, nil
}

func (s *MarketplaceService) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	l, err := s.Repo.GetByID(id)
	if err != nil || l == nil {
		return nil, ErrListingNotFound
	}
	return l, nil
}

func (s *MarketplaceService) ListListings(ctx context.Context, limit, offset int) ([]*entity.Listing, error) {
	return s.Repo.ListActive(clampLimit(limit), offset)
}

// Purchase records a buyer's intent against an active listing.
func (s *MarketplaceService) Purchase(ctx context.Context, buyer *entity.User, listingID string, quantity int) (*entity.Purchase, error) {
	l, err := s.Repo.GetByID(listingID)
	if err != nil || l == nil {
		return nil, ErrListingNotFound
	}
	if !l.Active {
		return nil, ErrListingInactive
	}
	if l.SellerID == buyer.ID {
		return nil, ErrOwnListing
	}
	if quantity <= 0 {
		quantity = 1
	}
	p := &entity.Purchase{
		ListingID: l.ID,
		BuyerID:   buyer.ID,
		Quantity:  quantity,
	}
	if err := s.Repo.CreatePurchase(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *MarketplaceService) indexListing(ctx context.Context, l *entity.Listing) error {
	if s.ES == nil || s.ESListingsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          l.ID,
		"seller_id":   l.SellerID,
		"title":       l.Title,
		"description": l.Description,
		"category":    l.Category,
		"price_cents": l.PriceCents,
		"currency":    l.Currency,
		"active":      l.Active,
		"created_at":  l.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESListingsIndex, DocumentID: l.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", l.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("listing_id", l.ID).Warn("es index response error")
	}
	return nil
}

// SearchListings performs a multi_match search on title, description and category.
func (s *MarketplaceService) SearchListings(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESListingsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "category"},
			},
		},
		"size": size,
	}
	return esSearch(ctx, s.ES, s.ESListingsIndex, query)
}
