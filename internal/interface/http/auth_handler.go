package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/navdrishti/platform-api/internal/application"
	"github.com/navdrishti/platform-api/internal/interface/middleware"
	"github.com/navdrishti/platform-api/pkg/response"
	"github.com/navdrishti/platform-api/pkg/validation"
)

// AuthHandler exposes the verification and password-reset flows: email
// confirmation links, phone OTP codes, the document-review submission, and
// reset tokens. Session issuance lives on UserHandler.
type AuthHandler struct {
	Svc    *app.VerificationService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *app.VerificationService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type tokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type codeRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

type resetInitRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

func (h *AuthHandler) EmailVerifyInit(c *gin.Context) {
	u := middleware.UserFromContext(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	_, err := h.Svc.InitEmailVerification(c.Request.Context(), u)
	if err != nil {
		if errors.Is(err, app.ErrAlreadyVerified) {
			response.Error[any](c, http.StatusConflict, "email already verified", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to start verification", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"sent": true}, "verification email sent", nil)
}

func (h *AuthHandler) EmailVerifyConfirm(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if _, err := h.Svc.ConfirmEmail(c.Request.Context(), req.Token); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"email_verified": true}, "email verified", nil)
}

func (h *AuthHandler) PhoneVerifyInit(c *gin.Context) {
	u := middleware.UserFromContext(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if err := h.Svc.InitPhoneVerification(c.Request.Context(), u); err != nil {
		switch {
		case errors.Is(err, app.ErrAlreadyVerified):
			response.Error[any](c, http.StatusConflict, "phone already verified", nil)
		case errors.Is(err, app.ErrNoPhoneOnFile):
			response.Error[any](c, http.StatusBadRequest, "no phone number on file", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to send code", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"sent": true}, "verification code sent", nil)
}

func (h *AuthHandler) PhoneVerifyConfirm(c *gin.Context) {
	u := middleware.UserFromContext(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ConfirmPhone(c.Request.Context(), u, req.Code); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid or expired code", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"phone_verified": true}, "phone verified", nil)
}

// SubmitReview moves the account into the pending review state. The review
// decision is written by the back-office workflow, not this API.
func (h *AuthHandler) SubmitReview(c *gin.Context) {
	u := middleware.UserFromContext(c)
	if u == nil {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if err := h.Svc.SubmitForReview(c.Request.Context(), u); err != nil {
		switch {
		case errors.Is(err, app.ErrAlreadyVerified):
			response.Error[any](c, http.StatusConflict, "account already verified", nil)
		case errors.Is(err, app.ErrAlreadySubmitted):
			response.Error[any](c, http.StatusConflict, "verification already submitted", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "failed to submit", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"status": "pending"}, "submitted for review", nil)
}

func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req resetInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	// Same response whether or not the email exists.
	if _, err := h.Svc.InitPasswordReset(c.Request.Context(), req.Email); err != nil && h.Logger != nil {
		h.Logger.WithError(err).Warn("password reset init failed")
	}
	response.Success[any](c, http.StatusOK, map[string]any{"sent": true}, "if the email exists, a reset link was sent", nil)
}

func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ConfirmPasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid or expired token", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"reset": true}, "password updated", nil)
}
