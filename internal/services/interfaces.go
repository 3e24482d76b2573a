package services

import (
	"context"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/validator"
)

// ===== ONBOARDING RELATED DTOs =====

type LoginRequest = validator.LoginRequest
type OTPRequest = validator.OTPRequest
type ProfileRequest = validator.ProfileRequest
type DomainRequest = validator.DomainRequest

type ResendOTPResponse struct {
	Contact         string `json:"contact"`
	CooldownSeconds int    `json:"cooldown_seconds"`
}

// ===== DASHBOARD RELATED DTOs =====

type NavigationItem struct {
	Section models.Section `json:"section"`
	Label   string         `json:"label"`
	Active  bool           `json:"active"`
	Badge   *int           `json:"badge,omitempty"`
}

type NavigationResponse struct {
	Domain        string           `json:"domain"`
	DomainName    string           `json:"domain_name"`
	Coins         int              `json:"coins"`
	Streak        int              `json:"streak"`
	Notifications int              `json:"notifications"`
	Items         []NavigationItem `json:"items"`
}

// SectionView is the rendered state of one dashboard section. Exactly one
// payload matching Section is set.
type SectionView struct {
	Section  models.Section `json:"section"`
	Overview *OverviewView  `json:"overview,omitempty"`
	Learn    *LearnView     `json:"learn,omitempty"`
	Problems *ProblemsView  `json:"problems,omitempty"`
	Practice *PracticeView  `json:"practice,omitempty"`
	Compete  *CompeteView   `json:"compete,omitempty"`
	Test     *TestView      `json:"test,omitempty"`
	Achieve  *AchieveView   `json:"achieve,omitempty"`
	Coins    *CoinsView     `json:"coins,omitempty"`
}

type OverviewView struct {
	Greeting       string                 `json:"greeting"`
	DomainName     string                 `json:"domain_name"`
	Stats          []models.Stat          `json:"stats"`
	DailyChallenge models.DailyChallenge  `json:"daily_challenge"`
	UpcomingEvents []models.UpcomingEvent `json:"upcoming_events"`
	ProgressTopics []models.ProgressTopic `json:"progress_topics"`
	Streak         int                    `json:"streak"`
}

type LearnView struct {
	Terminology models.Terminology    `json:"terminology"`
	Modules     []models.LearnModule  `json:"modules"`
	Sections    []models.LearnSection `json:"sections"`
}

type ProblemsView struct {
	Problems []models.Problem `json:"problems"`
	Solved   int              `json:"solved"`
	Total    int              `json:"total"`
}

type PracticeSubject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
	Topics   int    `json:"topics"`
}

type PracticeView struct {
	SubjectLabel   string                 `json:"subject_label"`
	Subjects       []PracticeSubject      `json:"subjects"`
	ProgressTopics []models.ProgressTopic `json:"progress_topics"`
}

type CompeteView struct {
	Contests       []models.Contest       `json:"contests"`
	UpcomingEvents []models.UpcomingEvent `json:"upcoming_events"`
}

type TestView struct {
	Label        string        `json:"label"`
	Tests        []models.Test `json:"tests"`
	Attempted    int           `json:"attempted"`
	AverageScore int           `json:"average_score"`
}

type AchieveView struct {
	Achievements []models.Achievement `json:"achievements"`
	Unlocked     int                  `json:"unlocked"`
	Streak       int                  `json:"streak"`
}

type RewardOffer struct {
	models.Reward
	Affordable bool `json:"affordable"`
}

type CoinsView struct {
	Balance  int           `json:"balance"`
	Rewards  []RewardOffer `json:"rewards"`
	Redeemed []string      `json:"redeemed"`
}

type RedeemResponse struct {
	Reward  models.Reward `json:"reward"`
	Balance int           `json:"balance"`
}

// ===== SERVICE INTERFACES =====

type OnboardingService interface {
	Start(ctx context.Context) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)

	// Forward transitions
	SubmitLogin(ctx context.Context, sessionID string, req *LoginRequest) (*models.Session, error)
	VerifyOTP(ctx context.Context, sessionID string, req *OTPRequest) (*models.Session, error)
	ResendOTP(ctx context.Context, sessionID string) (*ResendOTPResponse, error)
	SelectProfile(ctx context.Context, sessionID string, req *ProfileRequest) (*models.Session, error)
	SelectDomain(ctx context.Context, sessionID string, req *DomainRequest) (*models.Session, error)

	// Back transitions
	BackToLogin(ctx context.Context, sessionID string) (*models.Session, error)
	BackToProfile(ctx context.Context, sessionID string) (*models.Session, error)
}

type DashboardService interface {
	Navigation(ctx context.Context, sessionID string) (*NavigationResponse, error)
	SwitchSection(ctx context.Context, sessionID string, section models.Section) (*models.DashboardState, error)
	OpenCoins(ctx context.Context, sessionID string) (*models.DashboardState, error)
	CurrentView(ctx context.Context, sessionID string) (*SectionView, error)

	RedeemReward(ctx context.Context, sessionID, rewardID string) (*RedeemResponse, error)
	ClearNotifications(ctx context.Context, sessionID string) (*models.DashboardState, error)
}

type CatalogService interface {
	ListDomains(ctx context.Context) []models.DomainConfig
	Domain(ctx context.Context, domainID string) models.DomainConfig
	Dataset(ctx context.Context, domainID string) models.DomainData
	LearnContent(ctx context.Context, domainID string) []models.LearnSection
}

type ReportService interface {
	ExportProgress(ctx context.Context, sessionID string) ([]byte, error)
}

type ServiceManager interface {
	Onboarding() OnboardingService
	Dashboard() DashboardService
	Catalog() CatalogService
	Report() ReportService

	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
