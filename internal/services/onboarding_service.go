package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

// InitialNotifications is the unread count a fresh dashboard starts with
const InitialNotifications = 3

type onboardingService struct {
	store     *sessionStore
	registry  *domains.Registry
	datasets  *domains.DatasetProvider
	verifier  OTPVerifier
	logger    *slog.Logger
	validator *validator.Validator
}

func NewOnboardingService(
	repo repositories.SessionRepository,
	registry *domains.Registry,
	datasets *domains.DatasetProvider,
	verifier OTPVerifier,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) OnboardingService {
	return &onboardingService{
		store: &sessionStore{
			repo:      repo,
			publisher: publisher,
			logger:    logger,
			now:       func() time.Time { return time.Now().UTC() },
		},
		registry:  registry,
		datasets:  datasets,
		verifier:  verifier,
		logger:    logger,
		validator: validator,
	}
}

func (s *onboardingService) Start(ctx context.Context) (*models.Session, error) {
	now := s.store.now()
	session := &models.Session{
		ID:        uuid.New().String(),
		Step:      models.StepLogin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("Onboarding started", "session_id", session.ID)
	return session, nil
}

func (s *onboardingService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.store.load(ctx, sessionID)
}

func (s *onboardingService) SubmitLogin(ctx context.Context, sessionID string, req *LoginRequest) (*models.Session, error) {
	normalized := LoginRequest{
		Name:    strings.TrimSpace(req.Name),
		Contact: strings.TrimSpace(req.Contact),
	}

	return s.advance(ctx, sessionID, models.StepLogin, models.StepOTP, "submit login", func(session *models.Session) error {
		if errs := s.validator.Validate(&normalized); len(errs) > 0 {
			return NewStepError(models.StepLogin, errs)
		}
		session.User.Name = normalized.Name
		session.User.Contact = normalized.Contact
		return nil
	})
}

func (s *onboardingService) VerifyOTP(ctx context.Context, sessionID string, req *OTPRequest) (*models.Session, error) {
	return s.advance(ctx, sessionID, models.StepOTP, models.StepProfile, "verify code", func(session *models.Session) error {
		if errs := s.validator.Validate(req); len(errs) > 0 {
			return NewStepError(models.StepOTP, errs)
		}

		ok, err := s.verifier.Verify(ctx, session.User.Contact, req.Code)
		if err != nil {
			return fmt.Errorf("failed to verify code: %w", err)
		}
		if !ok {
			return NewStepError(models.StepOTP, validator.ValidationErrors{{
				Field:   "code",
				Message: "The verification code is incorrect",
				Rule:    "otp_mismatch",
			}})
		}
		return nil
	})
}

func (s *onboardingService) ResendOTP(ctx context.Context, sessionID string) (*ResendOTPResponse, error) {
	session, err := s.store.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepOTP {
		return nil, NewTransitionError(session.Step, "resend code")
	}

	s.logger.Debug("Verification code resend requested", "session_id", sessionID)
	return &ResendOTPResponse{
		Contact:         session.User.Contact,
		CooldownSeconds: OTPResendCooldown,
	}, nil
}

func (s *onboardingService) BackToLogin(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.advance(ctx, sessionID, models.StepOTP, models.StepLogin, "go back to login", nil)
}

func (s *onboardingService) SelectProfile(ctx context.Context, sessionID string, req *ProfileRequest) (*models.Session, error) {
	return s.advance(ctx, sessionID, models.StepProfile, models.StepDomain, "select profile", func(session *models.Session) error {
		if errs := s.validator.Validate(req); len(errs) > 0 {
			return NewStepError(models.StepProfile, errs)
		}
		profile := req.ProfileType
		session.User.ProfileType = &profile
		return nil
	})
}

func (s *onboardingService) BackToProfile(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.advance(ctx, sessionID, models.StepDomain, models.StepProfile, "go back to profile", nil)
}

func (s *onboardingService) SelectDomain(ctx context.Context, sessionID string, req *DomainRequest) (*models.Session, error) {
	normalized := DomainRequest{Domain: strings.TrimSpace(req.Domain)}

	session, err := s.advance(ctx, sessionID, models.StepDomain, models.StepDashboard, "select domain", func(session *models.Session) error {
		if errs := s.validator.Validate(&normalized); len(errs) > 0 {
			return NewStepError(models.StepDomain, errs)
		}

		domainID := normalized.Domain
		session.User.Domain = &domainID

		data := s.datasets.Dataset(domainID)
		session.Dashboard = &models.DashboardState{
			ActiveSection: models.SectionDashboard,
			Coins:         data.Coins,
			Streak:        data.Streak,
			Notifications: InitialNotifications,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg := s.registry.Lookup(session.User.DomainID())
	s.logger.Info("Onboarding completed",
		"session_id", session.ID,
		"domain", cfg.ID,
		"known_domain", s.registry.Known(cfg.ID))

	profile := ""
	if session.User.ProfileType != nil {
		profile = string(*session.User.ProfileType)
	}
	s.store.publish(ctx, events.TypeOnboarded, session.ID, map[string]interface{}{
		"domain":       cfg.ID,
		"category":     string(cfg.Category),
		"profile_type": profile,
	})
	return session, nil
}

// advance applies mutate and moves the session from one step to another.
// Nothing is saved when the session is not at from or mutate fails.
func (s *onboardingService) advance(
	ctx context.Context,
	sessionID string,
	from, to models.OnboardingStep,
	action string,
	mutate func(session *models.Session) error,
) (*models.Session, error) {
	session, err := s.store.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != from {
		return nil, NewTransitionError(session.Step, action)
	}

	if mutate != nil {
		if err := mutate(session); err != nil {
			s.logger.Debug("Onboarding step rejected", "session_id", sessionID, "step", from, "error", err)
			return nil, err
		}
	}

	session.Step = to
	if err := s.store.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Onboarding step changed", "session_id", sessionID, "from", from, "to", to)
	s.store.publish(ctx, events.TypeStepChanged, sessionID, map[string]interface{}{
		"from": string(from),
		"to":   string(to),
	})
	return session, nil
}
