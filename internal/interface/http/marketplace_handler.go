package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/navdrishti/platform-api/internal/application"
	"github.com/navdrishti/platform-api/internal/domain/entity"
	"github.com/navdrishti/platform-api/internal/interface/middleware"
	"github.com/navdrishti/platform-api/pkg/response"
	"github.com/navdrishti/platform-api/pkg/validation"
)

type MarketplaceHandler struct {
	Svc    *app.MarketplaceService
	Logger *logrus.Logger
}

func NewMarketplaceHandler(svc *app.MarketplaceService, logger *logrus.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{Svc: svc, Logger: logger}
}

type createListingRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}

type purchaseRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,gt=0"`
}

func (h *MarketplaceHandler) CreateListing(c *gin.Context) {
	u := middleware.UserFromContext(c)
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.CreateListing(c.Request.Context(), u, app.ListingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create listing", nil)
		return
	}
	response.Success(c, http.StatusCreated, listingBody(l), "listing created", nil)
}

func (h *MarketplaceHandler) GetListing(c *gin.Context) {
	l, err := h.Svc.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "listing not found", nil)
		return
	}
	response.Success(c, http.StatusOK, listingBody(l), "listing", nil)
}

func (h *MarketplaceHandler) ListListings(c *gin.Context) {
	limit, offset := pageParams(c)
	items, err := h.Svc.ListListings(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list listings", nil)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, l := range items {
		out = append(out, listingBody(l))
	}
	response.Success(c, http.StatusOK, out, "active listings", map[string]any{"count": len(out)})
}

func (h *MarketplaceHandler) Purchase(c *gin.Context) {
	u := middleware.UserFromContext(c)
	var req purchaseRequest
	// Body is optional; an empty body means quantity 1.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
	}
	p, err := h.Svc.Purchase(c.Request.Context(), u, c.Param("id"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrListingNotFound):
			response.Error[any](c, http.StatusNotFound, "listing not found", nil)
		case errors.Is(err, app.ErrListingInactive):
			response.Error[any](c, http.StatusConflict, "listing is not active", nil)
		case errors.Is(err, app.ErrOwnListing):
			response.Error[any](c, http.StatusConflict, "cannot purchase your own listing", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to purchase", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":         p.ID,
		"listing_id": p.ListingID,
		"buyer_id":   p.BuyerID,
		"quantity":   p.Quantity,
		"created_at": p.CreatedAt,
	}, "purchase recorded", nil)
}

// Search queries the listings index in Elasticsearch.
func (h *MarketplaceHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchListings(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func listingBody(l *entity.Listing) gin.H {
	return gin.H{
		"id":          l.ID,
		"seller_id":   l.SellerID,
		"title":       l.Title,
		"description": l.Description,
		"category":    l.Category,
		"price_cents": l.PriceCents,
		"currency":    l.Currency,
		"active":      l.Active,
		"created_at":  l.CreatedAt,
	}
}
