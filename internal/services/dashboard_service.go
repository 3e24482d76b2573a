package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

type dashboardService struct {
	store     *sessionStore
	registry  *domains.Registry
	datasets  *domains.DatasetProvider
	logger    *slog.Logger
	validator *validator.Validator
}

func NewDashboardService(
	repo repositories.SessionRepository,
	registry *domains.Registry,
	datasets *domains.DatasetProvider,
	publisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) DashboardService {
	return &dashboardService{
		store: &sessionStore{
			repo:      repo,
			publisher: publisher,
			logger:    logger,
			now:       func() time.Time { return time.Now().UTC() },
		},
		registry:  registry,
		datasets:  datasets,
		logger:    logger,
		validator: validator,
	}
}

func (s *dashboardService) Navigation(ctx context.Context, sessionID string) (*NavigationResponse, error) {
	session, err := s.store.loadOnboarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cfg := s.registry.Lookup(session.User.DomainID())
	state := session.Dashboard

	resp := &NavigationResponse{
		Domain:        cfg.ID,
		DomainName:    cfg.Name,
		Coins:         state.Coins,
		Streak:        state.Streak,
		Notifications: state.Notifications,
	}
	for _, section := range navigationSections(cfg) {
		item := NavigationItem{
			Section: section,
			Label:   sectionLabel(section, cfg.Terminology),
			Active:  section == state.ActiveSection,
		}
		if section == models.SectionCoins {
			coins := state.Coins
			item.Badge = &coins
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

func (s *dashboardService) SwitchSection(ctx context.Context, sessionID string, section models.Section) (*models.DashboardState, error) {
	if errs := s.validator.Validate(&validator.SectionRequest{Section: section}); len(errs) > 0 {
		return nil, NewStepError(models.StepDashboard, errs)
	}

	session, err := s.store.loadOnboarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	from := session.Dashboard.ActiveSection
	session.Dashboard.ActiveSection = section
	if err := s.store.save(ctx, session); err != nil {
		return nil, err
	}

	if from != section {
		s.logger.Debug("Dashboard section changed", "session_id", sessionID, "from", from, "to", section)
		s.store.publish(ctx, events.TypeSectionChanged, sessionID, map[string]interface{}{
			"from": string(from),
			"to":   string(section),
		})
	}
	return session.Dashboard, nil
}

// OpenCoins is the header balance control. It lands on the same state as
// choosing the coins tab.
func (s *dashboardService) OpenCoins(ctx context.Context, sessionID string) (*models.DashboardState, error) {
	return s.SwitchSection(ctx, sessionID, models.SectionCoins)
}

func (s *dashboardService) CurrentView(ctx context.Context, sessionID string) (*SectionView, error) {
	session, err := s.store.loadOnboarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	domainID := session.User.DomainID()
	cfg := s.registry.Lookup(domainID)
	in := viewInput{
		user:        session.User,
		config:      cfg,
		data:        s.datasets.Dataset(domainID),
		terminology: cfg.Terminology,
		state:       *session.Dashboard,
	}
	return buildView(session.Dashboard.ActiveSection, in), nil
}

func (s *dashboardService) RedeemReward(ctx context.Context, sessionID, rewardID string) (*RedeemResponse, error) {
	if errs := s.validator.Validate(&validator.RedeemRequest{RewardID: rewardID}); len(errs) > 0 {
		return nil, NewStepError(models.StepDashboard, errs)
	}

	session, err := s.store.loadOnboarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reward, ok := s.datasets.Dataset(session.User.DomainID()).FindReward(rewardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRewardNotFound, rewardID)
	}

	state := session.Dashboard
	if state.Coins < reward.Cost {
		return nil, &InsufficientCoinsError{RewardID: reward.ID, Cost: reward.Cost, Balance: state.Coins}
	}

	state.Coins -= reward.Cost
	state.Redeemed = append(state.Redeemed, reward.ID)
	if err := s.store.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Reward redeemed", "session_id", sessionID, "reward_id", reward.ID, "cost", reward.Cost, "balance", state.Coins)
	s.store.publish(ctx, events.TypeCoinsRedeemed, sessionID, map[string]interface{}{
		"reward_id": reward.ID,
		"cost":      reward.Cost,
		"balance":   state.Coins,
	})
	return &RedeemResponse{Reward: reward, Balance: state.Coins}, nil
}

func (s *dashboardService) ClearNotifications(ctx context.Context, sessionID string) (*models.DashboardState, error) {
	session, err := s.store.loadOnboarded(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Dashboard.Notifications = 0
	if err := s.store.save(ctx, session); err != nil {
		return nil, err
	}
	return session.Dashboard, nil
}

// navigationSections lists the tabs a domain shows. Problems exist only for
// coding domains.
func navigationSections(cfg models.DomainConfig) []models.Section {
	var out []models.Section
	for _, section := range models.Sections() {
		if section == models.SectionProblems && !cfg.IsCoding() {
			continue
		}
		out = append(out, section)
	}
	return out
}

func sectionLabel(section models.Section, t models.Terminology) string {
	switch section {
	case models.SectionDashboard:
		return "Dashboard"
	case models.SectionLearn:
		return "Learn"
	case models.SectionProblems:
		return "Problems"
	case models.SectionPractice:
		return "Practice"
	case models.SectionCompete:
		return "Compete"
	case models.SectionTest:
		return t.Test + "s"
	case models.SectionAchieve:
		return "Achievements"
	case models.SectionCoins:
		return "Coins"
	default:
		return string(section)
	}
}
