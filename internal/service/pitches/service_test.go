package pitches

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	pitchstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/pitch"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-PitchBookingService/internal/service/pitches/models"
	"github.com/m04kA/SMC-PitchBookingService/pkg/ptr"
)

type fakePitchRepo struct {
	pitches []*domain.Pitch
	created *domain.Pitch
}

func (r *fakePitchRepo) List(_ context.Context) ([]*domain.Pitch, error) {
	return r.pitches, nil
}

func (r *fakePitchRepo) GetByID(_ context.Context, id string) (*domain.Pitch, error) {
	for _, pitch := range r.pitches {
		if pitch.ID == id {
			return pitch, nil
		}
	}
	return nil, pitchstore.ErrPitchNotFound
}

func (r *fakePitchRepo) Create(_ context.Context, pitch *domain.Pitch) (*domain.Pitch, error) {
	created := *pitch
	created.ID = "pitch-new"
	r.created = &created
	return &created, nil
}

type fakeProfileClient struct {
	profiles map[string]*profileservice.Profile
}

func (c *fakeProfileClient) GetProfile(_ context.Context, userID string) (*profileservice.Profile, error) {
	profile, ok := c.profiles[userID]
	if !ok {
		return nil, profileservice.ErrProfileNotFound
	}
	return profile, nil
}

type fakeCache struct {
	flushed bool
}

func (c *fakeCache) Flush() {
	c.flushed = true
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testProfiles() map[string]*profileservice.Profile {
	return map[string]*profileservice.Profile{
		"admin-1": {ID: "admin-1", Role: "admin", Status: "approved"},
		"user-1":  {ID: "user-1", Role: "student", Status: "approved"},
	}
}

func TestList(t *testing.T) {
	repo := &fakePitchRepo{pitches: []*domain.Pitch{
		{ID: "pitch-1", Name: "Поле 1"},
		{ID: "pitch-2", Name: "Поле 2"},
	}}
	svc := NewService(repo, &fakeProfileClient{profiles: testProfiles()}, &fakeCache{}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Pitches, 2)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakePitchRepo{}, &fakeProfileClient{profiles: testProfiles()}, &fakeCache{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "no-such")
	assert.ErrorIs(t, err, ErrPitchNotFound)
}

func TestCreate_AdminFlushesCache(t *testing.T) {
	repo := &fakePitchRepo{}
	cache := &fakeCache{}
	svc := NewService(repo, &fakeProfileClient{profiles: testProfiles()}, cache, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreatePitchRequest{
		UserID:    "admin-1",
		Name:      "Новое поле",
		OpenTime:  ptr.Ptr("08:00"),
		CloseTime: ptr.Ptr("24:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "pitch-new", resp.ID)
	assert.True(t, cache.flushed)
	require.NotNil(t, repo.created)
	assert.Equal(t, "08:00", repo.created.OpenTime.String())
	assert.Equal(t, "24:00", repo.created.CloseTime.String())
}

func TestCreate_NonAdminDenied(t *testing.T) {
	svc := NewService(&fakePitchRepo{}, &fakeProfileClient{profiles: testProfiles()}, &fakeCache{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreatePitchRequest{UserID: "user-1", Name: "Поле"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakePitchRepo{}, &fakeProfileClient{profiles: testProfiles()}, &fakeCache{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.CreatePitchRequest
	}{
		{
			name: "empty name",
			req:  &models.CreatePitchRequest{UserID: "admin-1"},
		},
		{
			name: "malformed open time",
			req:  &models.CreatePitchRequest{UserID: "admin-1", Name: "Поле", OpenTime: ptr.Ptr("8am")},
		},
		{
			name: "out of range close time",
			req:  &models.CreatePitchRequest{UserID: "admin-1", Name: "Поле", CloseTime: ptr.Ptr("25:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
