package models

import "time"

// DashboardState is the mutable, session-local part of the dashboard. It is
// seeded from the domain dataset when onboarding completes.
type DashboardState struct {
	ActiveSection Section  `json:"active_section"`
	Coins         int      `json:"coins"`
	Streak        int      `json:"streak"`
	Notifications int      `json:"notifications"`
	Redeemed      []string `json:"redeemed,omitempty"`
}

type Session struct {
	ID        string          `json:"id"`
	Step      OnboardingStep  `json:"step"`
	User      UserData        `json:"user"`
	Dashboard *DashboardState `json:"dashboard,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Clone returns a deep copy so stores never share state with callers
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.User = s.User.Clone()
	if s.Dashboard != nil {
		d := *s.Dashboard
		d.Redeemed = append([]string(nil), s.Dashboard.Redeemed...)
		out.Dashboard = &d
	}
	return &out
}
