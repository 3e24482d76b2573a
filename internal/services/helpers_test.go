package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories/memory"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

type fixture struct {
	repo       *memory.SessionRepository
	publisher  *events.MockEventPublisher
	onboarding OnboardingService
	dashboard  DashboardService
	report     ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	datasets, err := domains.NewDatasetProvider()
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	registry := domains.NewRegistry()
	repo := memory.NewSessionRepository()
	publisher := events.NewMockEventPublisher(logger)
	v := validator.New()

	return &fixture{
		repo:       repo,
		publisher:  publisher,
		onboarding: NewOnboardingService(repo, registry, datasets, DemoOTPVerifier{}, publisher, logger, v),
		dashboard:  NewDashboardService(repo, registry, datasets, publisher, logger, v),
		report:     NewReportService(repo, registry, datasets, logger),
	}
}

// onboard walks a fresh session through every step into domainID
func (f *fixture) onboard(t *testing.T, domainID string) *models.Session {
	t.Helper()
	ctx := context.Background()

	session, err := f.onboarding.Start(ctx)
	require.NoError(t, err)

	_, err = f.onboarding.SubmitLogin(ctx, session.ID, &LoginRequest{Name: "Asha", Contact: "asha@example.com"})
	require.NoError(t, err)
	_, err = f.onboarding.VerifyOTP(ctx, session.ID, &OTPRequest{Code: "123456"})
	require.NoError(t, err)
	_, err = f.onboarding.SelectProfile(ctx, session.ID, &ProfileRequest{ProfileType: models.ProfileStudent})
	require.NoError(t, err)
	session, err = f.onboarding.SelectDomain(ctx, session.ID, &DomainRequest{Domain: domainID})
	require.NoError(t, err)
	return session
}
