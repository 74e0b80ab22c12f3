package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/navdrishti/platform-api/config"
	"github.com/navdrishti/platform-api/internal/domain/entity"
	repo "github.com/navdrishti/platform-api/internal/domain/repository"
	"github.com/navdrishti/platform-api/pkg/helpers"
	"github.com/navdrishti/platform-api/pkg/mailer"
	tpl "github.com/navdrishti/platform-api/pkg/mailer/templates"
)

var (
	ErrTokenInvalid     = errors.New("invalid or expired token")
	ErrCodeInvalid      = errors.New("invalid or expired code")
	ErrAlreadySubmitted = errors.New("verification already submitted")
	ErrAlreadyVerified  = errors.New("already verified")
	ErrNoPhoneOnFile    = errors.New("no phone number on file")
)

const (
	emailTokenTTL = 24 * time.Hour
	phoneCodeTTL  = 10 * time.Minute
	resetTokenTTL = 30 * time.Minute
)

// VerificationService owns channel confirmation (email/phone), the
// document-review submission, and password resets. All tokens live in Redis
// with TTLs; nothing is held in process memory.
type VerificationService struct {
	Repo   repo.UserRepository
	Redis  *redis.Client
	Logger *logrus.Logger
	Cfg    *config.Config
	Pub    *helpers.RabbitPublisher
}

func NewVerificationService(repo repo.UserRepository, rdb *redis.Client, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *VerificationService {
	return &VerificationService{Repo: repo, Redis: rdb, Logger: logger, Cfg: cfg, Pub: pub}
}

func keyEmailToken(t string) string { return "email:verify:token:" + t }
func keyResetToken(t string) string { return "pwd:reset:token:" + t }

func genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *VerificationService) enqueue(ctx context.Context, to, template string, data tpl.EmailData) {
	if s.Pub == nil || s.Cfg == nil || !s.Cfg.MailSendEnabled {
		return
	}
	data.AppName = s.Cfg.AppName
	job := mailer.EmailJob{To: to, Template: template, Data: tpl.ToMap(data)}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("template", template).Warn("email job publish failed")
	}
}

// InitEmailVerification issues a confirmation link for the account's email
// channel. Idempotent for already-confirmed addresses.
func (s *VerificationService) InitEmailVerification(ctx context.Context, u *entity.User) (string, error) {
	if u.EmailVerified {
		return "", ErrAlreadyVerified
	}
	tok, err := genToken(32)
	if err != nil {
		return "", err
	}
	if err := s.Redis.Set(ctx, keyEmailToken(tok), u.ID, emailTokenTTL).Err(); err != nil {
		return "", err
	}
	link := s.Cfg.VerifyEmailURL + "?token=" + tok
	s.enqueue(ctx, u.Email, tpl.VerifyEmail, tpl.EmailData{
		Name:      u.Name,
		ActionURL: link,
		ExpiresAt: time.Now().Add(emailTokenTTL),
	})
	return link, nil
}

// ConfirmEmail redeems a confirmation token and marks the email channel verified.
func (s *VerificationService) ConfirmEmail(ctx context.Context, token string) (string, error) {
	uid, err := s.Redis.Get(ctx, keyEmailToken(token)).Result()
	if err != nil || uid == "" {
		return "", ErrTokenInvalid
	}
	if err := s.Repo.SetEmailVerified(uid); err != nil {
		return "", err
	}
	s.Redis.Del(ctx, keyEmailToken(token))
	return uid, nil
}

// InitPhoneVerification issues a short-lived OTP for the account's phone
// number. Delivery goes through the email queue in lieu of an SMS gateway.
func (s *VerificationService) InitPhoneVerification(ctx context.Context, u *entity.User) error {
	if u.PhoneVerified {
		return ErrAlreadyVerified
	}
	if u.Phone == "" {
		return ErrNoPhoneOnFile
	}
	code, err := helpers.GenOTPCode()
	if err != nil {
		return err
	}
	if err := s.Redis.Set(ctx, helpers.KeyPhoneOTP(u.ID), code, phoneCodeTTL).Err(); err != nil {
		return err
	}
	s.enqueue(ctx, u.Email, tpl.PhoneCode, tpl.EmailData{
		Name:      u.Name,
		Code:      code,
		ExpiresAt: time.Now().Add(phoneCodeTTL),
	})
	return nil
}

// ConfirmPhone redeems an OTP and marks the phone channel verified.
func (s *VerificationService) ConfirmPhone(ctx context.Context, u *entity.User, code string) error {
	stored, err := s.Redis.Get(ctx, helpers.KeyPhoneOTP(u.ID)).Result()
	if err != nil || stored == "" || stored != code {
		return ErrCodeInvalid
	}
	if err := s.Repo.SetPhoneVerified(u.ID); err != nil {
		return err
	}
	s.Redis.Del(ctx, helpers.KeyPhoneOTP(u.ID))
	return nil
}

// SubmitForReview moves an unverified account into the pending state.
// The review decision itself is made by the back-office workflow, which
// writes the final status through the repository.
func (s *VerificationService) SubmitForReview(ctx context.Context, u *entity.User) error {
	switch u.VerificationStatus {
	case entity.VerificationVerified:
		return ErrAlreadyVerified
	case entity.VerificationPending:
		return ErrAlreadySubmitted
	}
	if err := s.Repo.SetVerificationStatus(u.ID, entity.VerificationPending); err != nil {
		return err
	}
	s.enqueue(ctx, u.Email, tpl.VerificationSubmitted, tpl.EmailData{Name: u.Name})
	return nil
}

// InitPasswordReset issues a reset link. Callers should respond identically
// whether or not the email exists, to avoid account enumeration.
func (s *VerificationService) InitPasswordReset(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return "", nil
	}
	tok, err := genToken(32)
	if err != nil {
		return "", err
	}
	if err := s.Redis.Set(ctx, keyResetToken(tok), u.ID, resetTokenTTL).Err(); err != nil {
		return "", err
	}
	link := s.Cfg.ResetPasswordURL + "?token=" + tok
	s.enqueue(ctx, u.Email, tpl.ResetPassword, tpl.EmailData{
		Name:      u.Name,
		ActionURL: link,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	})
	return link, nil
}

// ConfirmPasswordReset redeems a reset token and updates the password hash.
func (s *VerificationService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	uid, err := s.Redis.Get(ctx, keyResetToken(token)).Result()
	if err != nil || uid == "" {
		return ErrTokenInvalid
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(uid, hash); err != nil {
		return err
	}
	s.Redis.Del(ctx, keyResetToken(token))
	return nil
}
