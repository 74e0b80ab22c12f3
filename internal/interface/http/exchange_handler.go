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

// ExchangeHandler serves the service exchange: NGOs publish requests and
// offers, individuals and companies apply to them. Capability checks are
// enforced by the authorizer middleware on the routes, not in here.
type ExchangeHandler struct {
	Svc    *app.ExchangeService
	Logger *logrus.Logger
}

func NewExchangeHandler(svc *app.ExchangeService, logger *logrus.Logger) *ExchangeHandler {
	return &ExchangeHandler{Svc: svc, Logger: logger}
}

type postingRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required,max=100"`
	Location    string `json:"location" binding:"max=200"`
}

type applyRequest struct {
	Message string `json:"message" binding:"max=2000"`
}

func (h *ExchangeHandler) CreateRequest(c *gin.Context) {
	u := middleware.UserFromContext(c)
	var req postingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sr, err := h.Svc.CreateRequest(c.Request.Context(), u, app.PostingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create request", nil)
		return
	}
	response.Success(c, http.StatusCreated, requestBody(sr), "service request created", nil)
}

func (h *ExchangeHandler) CreateOffer(c *gin.Context) {
	u := middleware.UserFromContext(c)
	var req postingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	so, err := h.Svc.CreateOffer(c.Request.Context(), u, app.PostingInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
	})
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to create offer", nil)
		return
	}
	response.Success(c, http.StatusCreated, offerBody(so), "service offer created", nil)
}

func (h *ExchangeHandler) ListRequests(c *gin.Context) {
	limit, offset := pageParams(c)
	items, err := h.Svc.ListRequests(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list requests", nil)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, sr := range items {
		out = append(out, requestBody(sr))
	}
	response.Success(c, http.StatusOK, out, "open service requests", map[string]any{"count": len(out)})
}

func (h *ExchangeHandler) ListOffers(c *gin.Context) {
	limit, offset := pageParams(c)
	items, err := h.Svc.ListOffers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to list offers", nil)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, so := range items {
		out = append(out, offerBody(so))
	}
	response.Success(c, http.StatusOK, out, "open service offers", map[string]any{"count": len(out)})
}

func (h *ExchangeHandler) ApplyToRequest(c *gin.Context) {
	h.handleApply(c, func(u *entity.User, id, msg string) (*entity.Application, error) {
		return h.Svc.ApplyToRequest(c.Request.Context(), u, id, msg)
	})
}

func (h *ExchangeHandler) ApplyToOffer(c *gin.Context) {
	h.handleApply(c, func(u *entity.User, id, msg string) (*entity.Application, error) {
		return h.Svc.ApplyToOffer(c.Request.Context(), u, id, msg)
	})
}

func (h *ExchangeHandler) handleApply(c *gin.Context, do func(*entity.User, string, string) (*entity.Application, error)) {
	u := middleware.UserFromContext(c)
	id := c.Param("id")
	var req applyRequest
	// Message is optional; an empty body is a bare application.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
	}
	a, err := do(u, id, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrTargetNotFound):
			response.Error[any](c, http.StatusNotFound, "posting not found", nil)
		case errors.Is(err, app.ErrTargetClosed):
			response.Error[any](c, http.StatusConflict, "posting is closed", nil)
		case errors.Is(err, app.ErrAlreadyApplied):
			response.Error[any](c, http.StatusConflict, "already applied", nil)
		case errors.Is(err, app.ErrOwnTarget):
			response.Error[any](c, http.StatusConflict, "cannot apply to your own posting", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to apply", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, applicationBody(a), "application submitted", nil)
}

func (h *ExchangeHandler) ListRequestApplications(c *gin.Context) {
	h.handleListApplications(c, entity.TargetServiceRequest)
}

func (h *ExchangeHandler) ListOfferApplications(c *gin.Context) {
	h.handleListApplications(c, entity.TargetServiceOffer)
}

func (h *ExchangeHandler) handleListApplications(c *gin.Context, target entity.ApplicationTarget) {
	u := middleware.UserFromContext(c)
	id := c.Param("id")
	items, err := h.Svc.ListApplications(c.Request.Context(), u, target, id)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "posting not found", nil)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, a := range items {
		out = append(out, applicationBody(a))
	}
	response.Success(c, http.StatusOK, out, "applications", map[string]any{"count": len(out)})
}

func requestBody(sr *entity.ServiceRequest) gin.H {
	return gin.H{
		"id":          sr.ID,
		"ngo_id":      sr.NGOID,
		"title":       sr.Title,
		"description": sr.Description,
		"category":    sr.Category,
		"location":    sr.Location,
		"open":        sr.Open,
		"created_at":  sr.CreatedAt,
	}
}

func offerBody(so *entity.ServiceOffer) gin.H {
	return gin.H{
		"id":          so.ID,
		"ngo_id":      so.NGOID,
		"title":       so.Title,
		"description": so.Description,
		"category":    so.Category,
		"location":    so.Location,
		"open":        so.Open,
		"created_at":  so.CreatedAt,
	}
}

func applicationBody(a *entity.Application) gin.H {
	return gin.H{
		"id":           a.ID,
		"target_type":  a.TargetType,
		"target_id":    a.TargetID,
		"applicant_id": a.ApplicantID,
		"message":      a.Message,
		"status":       a.Status,
		"created_at":   a.CreatedAt,
	}
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
