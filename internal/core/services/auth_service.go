package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/apperrors"
	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	portsrepo "github.com/SaloneDigital/business_registry_app/internal/core/ports/repositories"
	portssvc "github.com/SaloneDigital/business_registry_app/internal/core/ports/services"
	"github.com/SaloneDigital/business_registry_app/internal/dto"
	"github.com/SaloneDigital/business_registry_app/internal/platform/config"
	"github.com/SaloneDigital/business_registry_app/internal/platform/metrics"
	"github.com/SaloneDigital/business_registry_app/internal/utils"
)

// CryptoCodeGenerator draws one-time codes from crypto/rand.
type CryptoCodeGenerator struct{}

// Generate returns a 4-digit code in [1000, 9999].
func (CryptoCodeGenerator) Generate() (string, error) {
	return utils.GenerateOneTimeCode()
}

// challenge is one pending business login attempt in the
// OneTimeCodeIssued state. The code is bound to this attempt only.
type challenge struct {
	entityID   string
	entityName string
	code       string
	issuedAt   time.Time
}

type authService struct {
	entityRepo portsrepo.EntityRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
	codes      portssvc.CodeGenerator
	notifier   portssvc.Notifier
	cfg        *config.Config
	now        func() time.Time

	mu         sync.Mutex
	challenges map[string]*challenge // challenge token -> pending attempt
	byEntity   map[string]string     // entity ID -> its pending token
}

// NewAuthService creates the access verifier for both login surfaces.
//
// The reference behavior imposes no retry cap and no expiry on an
// issued one-time code; that gap is deliberate and left open here too.
// The rate limiter on the auth routes throttles abuse at the transport
// level without changing this contract.
func NewAuthService(entityRepo portsrepo.EntityRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, codes portssvc.CodeGenerator, notifier portssvc.Notifier, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{
		entityRepo: entityRepo,
		userRepo:   userRepo,
		codes:      codes,
		notifier:   notifier,
		cfg:        cfg,
		now:        time.Now,
		challenges: make(map[string]*challenge),
		byEntity:   make(map[string]string),
	}
}

func (s *authService) VerifyCredentials(ctx context.Context, registryCode, phoneNumber string) (*dto.BusinessCredentialsResponse, error) {
	entity, err := s.entityRepo.FindEntityByRegistryCode(ctx, registryCode)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("credentials", "failure").Inc()
		return nil, fmt.Errorf("registry code %q: %w", registryCode, apperrors.ErrUnknownEntity)
	}

	if !utils.PhoneSuffixMatches(phoneNumber, entity.ContactPhone) {
		metrics.LoginAttempts.WithLabelValues("credentials", "failure").Inc()
		return nil, fmt.Errorf("phone does not match the number registered for %s: %w", entity.Name, apperrors.ErrPhoneMismatch)
	}

	code, err := s.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to issue one-time code: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(24)
	if err != nil {
		return nil, fmt.Errorf("failed to issue challenge token: %w", err)
	}
	s.mu.Lock()
	// A fresh step 1 for the same entity invalidates any earlier
	// pending code.
	if prior, ok := s.byEntity[entity.EntityID]; ok {
		delete(s.challenges, prior)
	}
	s.challenges[token] = &challenge{
		entityID:   entity.EntityID,
		entityName: entity.Name,
		code:       code,
		issuedAt:   s.now(),
	}
	s.byEntity[entity.EntityID] = token
	s.mu.Unlock()

	phoneHint := phoneHint(entity.ContactPhone)
	if s.notifier != nil {
		s.notifier.PublishSMS(phoneHint, fmt.Sprintf("New Message: Your SL Business Registry code is %s", code))
	}

	metrics.LoginAttempts.WithLabelValues("credentials", "success").Inc()
	return &dto.BusinessCredentialsResponse{
		ChallengeToken: token,
		PhoneHint:      phoneHint,
	}, nil
}

func (s *authService) VerifyOneTimeCode(ctx context.Context, challengeToken, code string) (*dto.SessionResponse, error) {
	s.mu.Lock()
	pending, ok := s.challenges[challengeToken]
	if !ok {
		s.mu.Unlock()
		metrics.LoginAttempts.WithLabelValues("otp", "failure").Inc()
		return nil, fmt.Errorf("no pending login attempt for token: %w", apperrors.ErrUnauthorized)
	}
	if pending.code != code {
		// The attempt stays pending; the caller may retry.
		s.mu.Unlock()
		metrics.LoginAttempts.WithLabelValues("otp", "failure").Inc()
		return nil, fmt.Errorf("submitted code does not match: %w", apperrors.ErrInvalidCode)
	}
	// Single use: a matched code is consumed.
	delete(s.challenges, challengeToken)
	delete(s.byEntity, pending.entityID)
	s.mu.Unlock()

	session, err := s.mintSession(pending.entityID, domain.RoleBusiness, pending.entityID, pending.entityName)
	if err != nil {
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues("otp", "success").Inc()
	return session, nil
}

func (s *authService) CancelChallenge(ctx context.Context, challengeToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.challenges[challengeToken]
	if !ok {
		return nil // already gone; cancelling is idempotent
	}
	delete(s.challenges, challengeToken)
	delete(s.byEntity, pending.entityID)
	return nil
}

func (s *authService) LoginRegistrar(ctx context.Context, username, password string) (*dto.SessionResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("registrar", "failure").Inc()
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("registrar", "failure").Inc()
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}

	session, err := s.mintSession(user.UserID, user.Role, "", user.Name)
	if err != nil {
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues("registrar", "success").Inc()
	return session, nil
}

func (s *authService) mintSession(subject string, role domain.Role, entityID, displayName string) (*dto.SessionResponse, error) {
	token, err := utils.GenerateSessionToken(subject, string(role), entityID, displayName, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return &dto.SessionResponse{
		Token:       token,
		ExpiresAt:   s.now().Add(s.cfg.JWTExpiryDuration),
		Role:        string(role),
		DisplayName: displayName,
		EntityID:    entityID,
	}, nil
}

// phoneHint masks a phone number down to its last four digits.
func phoneHint(phone string) string {
	digits := utils.NormalizePhone(phone)
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "..." + strings.TrimSpace(digits)
}
