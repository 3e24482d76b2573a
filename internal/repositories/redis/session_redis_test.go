package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/models"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/repositories"
)

func setup(t *testing.T, ttl time.Duration) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRepository(client, ttl), mr
}

func dashboardSession(id string) *models.Session {
	domain := "jee"
	profile := models.ProfileStudent
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	return &models.Session{
		ID:   id,
		Step: models.StepDashboard,
		User: models.UserData{
			Name:        "Ada",
			Contact:     "ada@x.com",
			ProfileType: &profile,
			Domain:      &domain,
		},
		Dashboard: &models.DashboardState{
			ActiveSection: models.SectionCoins,
			Coins:         950,
			Streak:        21,
			Notifications: 3,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := setup(t, time.Hour)

	require.NoError(t, repo.Create(ctx, dashboardSession("abc")))
	assert.True(t, mr.Exists("session:abc"))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.StepDashboard, got.Step)
	assert.Equal(t, "Ada", got.User.Name)
	assert.Equal(t, "jee", got.User.DomainID())
	require.NotNil(t, got.User.ProfileType)
	assert.Equal(t, models.ProfileStudent, *got.User.ProfileType)
	require.NotNil(t, got.Dashboard)
	assert.Equal(t, 950, got.Dashboard.Coins)
	assert.Equal(t, models.SectionCoins, got.Dashboard.ActiveSection)
	assert.True(t, got.CreatedAt.Equal(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)))
}

func TestSessionRepository_CreateTwice(t *testing.T) {
	ctx := context.Background()
	repo, _ := setup(t, time.Hour)

	require.NoError(t, repo.Create(ctx, dashboardSession("abc")))
	assert.ErrorIs(t, repo.Create(ctx, dashboardSession("abc")), repositories.ErrSessionExists)
}

func TestSessionRepository_SaveRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := setup(t, time.Hour)

	require.NoError(t, repo.Create(ctx, dashboardSession("abc")))
	mr.FastForward(50 * time.Minute)

	s, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	s.Dashboard.Coins = 870
	require.NoError(t, repo.Save(ctx, s))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))

	mr.FastForward(30 * time.Minute)
	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 870, got.Dashboard.Coins)
}

func TestSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo, mr := setup(t, time.Minute)

	require.NoError(t, repo.Create(ctx, dashboardSession("abc")))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "abc")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Save(ctx, dashboardSession("abc")), repositories.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, mr := setup(t, time.Hour)

	require.NoError(t, repo.Create(ctx, dashboardSession("abc")))
	require.NoError(t, repo.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("session:abc"))
	assert.ErrorIs(t, repo.Delete(ctx, "abc"), repositories.ErrSessionNotFound)
}

func TestSessionRepository_Ping(t *testing.T) {
	ctx := context.Background()
	repo, mr := setup(t, time.Hour)

	assert.NoError(t, repo.Ping(ctx))
	mr.Close()
	assert.Error(t, repo.Ping(ctx))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	client.Close()

	_, err = NewClient(context.Background(), "not a url")
	assert.Error(t, err)
}
