package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/domains"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/events"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
)

func navSections(nav *NavigationResponse) []models.Section {
	out := make([]models.Section, 0, len(nav.Items))
	for _, item := range nav.Items {
		out = append(out, item.Section)
	}
	return out
}

func TestDashboard_NavigationCoding(t *testing.T) {
	f := newFixture(t)
	session := f.onboard(t, "competitive-programming")

	nav, err := f.dashboard.Navigation(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.Sections(), navSections(nav))
	assert.Equal(t, 1250, nav.Coins)
	assert.Equal(t, 12, nav.Streak)
	assert.Equal(t, InitialNotifications, nav.Notifications)
	assert.True(t, nav.Items[0].Active)

	for _, item := range nav.Items {
		if item.Section == models.SectionCoins {
			require.NotNil(t, item.Badge)
			assert.Equal(t, 1250, *item.Badge)
		}
		if item.Section == models.SectionTest {
			assert.Equal(t, "Assessments", item.Label)
		}
	}
}

func TestDashboard_NavigationExamHidesProblems(t *testing.T) {
	f := newFixture(t)
	session := f.onboard(t, "jee")

	nav, err := f.dashboard.Navigation(context.Background(), session.ID)
	require.NoError(t, err)

	sections := navSections(nav)
	assert.Len(t, sections, 7)
	assert.NotContains(t, sections, models.SectionProblems)
	assert.Equal(t, "JEE Preparation", nav.DomainName)
}

func TestDashboard_NotOnboarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session, err := f.onboarding.Start(ctx)
	require.NoError(t, err)

	_, err = f.dashboard.Navigation(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotOnboarded)
	_, err = f.dashboard.SwitchSection(ctx, session.ID, models.SectionLearn)
	assert.ErrorIs(t, err, ErrNotOnboarded)
	_, err = f.dashboard.CurrentView(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotOnboarded)
	_, err = f.dashboard.RedeemReward(ctx, session.ID, "r-hint")
	assert.ErrorIs(t, err, ErrNotOnboarded)
	_, err = f.dashboard.ClearNotifications(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotOnboarded)

	_, err = f.dashboard.CurrentView(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDashboard_CoinsAffordancesConverge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viaTab := f.onboard(t, "jee")
	viaHeader := f.onboard(t, "jee")

	tabState, err := f.dashboard.SwitchSection(ctx, viaTab.ID, models.SectionCoins)
	require.NoError(t, err)
	headerState, err := f.dashboard.OpenCoins(ctx, viaHeader.ID)
	require.NoError(t, err)

	assert.Equal(t, tabState, headerState)
	assert.Equal(t, models.SectionCoins, headerState.ActiveSection)

	tabView, err := f.dashboard.CurrentView(ctx, viaTab.ID)
	require.NoError(t, err)
	headerView, err := f.dashboard.CurrentView(ctx, viaHeader.ID)
	require.NoError(t, err)
	assert.Equal(t, tabView, headerView)
	require.NotNil(t, headerView.Coins)
	assert.Equal(t, 950, headerView.Coins.Balance)
}

func TestDashboard_SwitchSectionRejectsUnknown(t *testing.T) {
	f := newFixture(t)
	session := f.onboard(t, "frontend")

	_, err := f.dashboard.SwitchSection(context.Background(), session.ID, "settings")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestDashboard_SwitchSectionPublishesOnChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "frontend")

	_, err := f.dashboard.SwitchSection(ctx, session.ID, models.SectionDashboard)
	require.NoError(t, err)
	assert.Empty(t, f.publisher.EventsOfType(events.TypeSectionChanged))

	_, err = f.dashboard.SwitchSection(ctx, session.ID, models.SectionLearn)
	require.NoError(t, err)
	changed := f.publisher.EventsOfType(events.TypeSectionChanged)
	require.Len(t, changed, 1)
	assert.Equal(t, "learn", changed[0].Data["to"])
}

func TestDashboard_CurrentViewEverySection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "competitive-programming")

	for _, section := range models.Sections() {
		t.Run(string(section), func(t *testing.T) {
			_, err := f.dashboard.SwitchSection(ctx, session.ID, section)
			require.NoError(t, err)

			view, err := f.dashboard.CurrentView(ctx, session.ID)
			require.NoError(t, err)
			assert.Equal(t, section, view.Section)
			assert.Equal(t, 1, payloadCount(view))
		})
	}
}

func payloadCount(v *SectionView) int {
	n := 0
	for _, set := range []bool{
		v.Overview != nil, v.Learn != nil, v.Problems != nil, v.Practice != nil,
		v.Compete != nil, v.Test != nil, v.Achieve != nil, v.Coins != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func TestDashboard_ProblemsOnExamFallsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "jee")

	_, err := f.dashboard.SwitchSection(ctx, session.ID, models.SectionProblems)
	require.NoError(t, err)

	view, err := f.dashboard.CurrentView(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SectionDashboard, view.Section)
	require.NotNil(t, view.Overview)
	assert.Nil(t, view.Problems)
}

func TestBuildView_UnexpectedSectionFallsBack(t *testing.T) {
	registry := domains.NewRegistry()
	view := buildView("leaderboard", viewInput{config: registry.Lookup("frontend")})

	assert.Equal(t, models.SectionDashboard, view.Section)
	require.NotNil(t, view.Overview)
	assert.Equal(t, "Welcome back, learner", view.Overview.Greeting)
}

func TestDashboard_ViewContents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "jee")

	view, err := f.dashboard.CurrentView(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Welcome back, Asha", view.Overview.Greeting)
	assert.Equal(t, 21, view.Overview.Streak)

	_, err = f.dashboard.SwitchSection(ctx, session.ID, models.SectionTest)
	require.NoError(t, err)
	view, err = f.dashboard.CurrentView(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mock Test", view.Test.Label)
	assert.Equal(t, 2, view.Test.Attempted)
	assert.Equal(t, 145, view.Test.AverageScore)

	_, err = f.dashboard.SwitchSection(ctx, session.ID, models.SectionLearn)
	require.NoError(t, err)
	view, err = f.dashboard.CurrentView(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Terminology{Chapter: "Chapter", Topic: "Topic", Subject: "Subject", Test: "Mock Test"}, view.Learn.Terminology)
	assert.Equal(t, domains.GenerateLearnContent(domains.NewRegistry().Lookup("jee")), view.Learn.Sections)

	_, err = f.dashboard.SwitchSection(ctx, session.ID, models.SectionPractice)
	require.NoError(t, err)
	view, err = f.dashboard.CurrentView(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Subject", view.Practice.SubjectLabel)
	assert.Len(t, view.Practice.Subjects, 3)
}

func TestDashboard_RedeemReward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "jee")

	resp, err := f.dashboard.RedeemReward(ctx, session.ID, "r-formula")
	require.NoError(t, err)
	assert.Equal(t, 650, resp.Balance)
	assert.Equal(t, 300, resp.Reward.Cost)

	resp, err = f.dashboard.RedeemReward(ctx, session.ID, "r-formula")
	require.NoError(t, err)
	assert.Equal(t, 350, resp.Balance)

	_, err = f.dashboard.RedeemReward(ctx, session.ID, "r-mentor")
	assert.ErrorIs(t, err, ErrInsufficientCoins)
	var coinsErr *InsufficientCoinsError
	require.ErrorAs(t, err, &coinsErr)
	assert.Equal(t, 600, coinsErr.Cost)
	assert.Equal(t, 350, coinsErr.Balance)

	_, err = f.dashboard.RedeemReward(ctx, session.ID, "r-unknown")
	assert.ErrorIs(t, err, ErrRewardNotFound)

	_, err = f.dashboard.RedeemReward(ctx, session.ID, "")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = f.dashboard.OpenCoins(ctx, session.ID)
	require.NoError(t, err)
	view, err := f.dashboard.CurrentView(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 350, view.Coins.Balance)
	assert.Equal(t, []string{"r-formula", "r-formula"}, view.Coins.Redeemed)
	for _, offer := range view.Coins.Rewards {
		assert.Equal(t, offer.Cost <= 350, offer.Affordable, offer.ID)
	}

	assert.Len(t, f.publisher.EventsOfType(events.TypeCoinsRedeemed), 2)
}

func TestDashboard_ClearNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.onboard(t, "neet")

	state, err := f.dashboard.ClearNotifications(ctx, session.ID)
	require.NoError(t, err)
	assert.Zero(t, state.Notifications)

	nav, err := f.dashboard.Navigation(ctx, session.ID)
	require.NoError(t, err)
	assert.Zero(t, nav.Notifications)
}
