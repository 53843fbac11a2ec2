package complete_bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	active       []*domain.Booking
	loadErr      error
	completeErr  error
	completedIDs []string
}

func (r *fakeBookingRepo) GetAllActive(_ context.Context) ([]*domain.Booking, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.active, nil
}

func (r *fakeBookingRepo) CompleteBatch(_ context.Context, ids []string) (int64, error) {
	if r.completeErr != nil {
		return 0, r.completeErr
	}
	r.completedIDs = ids
	return int64(len(ids)), nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var sweepNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func activeBooking(id string, start time.Time, end *time.Time) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		UserID:          "user-" + id,
		PitchID:         "pitch-1",
		SlotDatetime:    start,
		SlotDatetimeEnd: end,
		Status:          domain.StatusActive,
	}
}

func TestExecute_CompletesOnlyExpired(t *testing.T) {
	past := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	pastEnd := past.Add(time.Hour)
	future := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{active: []*domain.Booking{
		activeBooking("expired-explicit-end", past, &pastEnd),
		activeBooking("expired-no-end", past, nil),
		activeBooking("future", future, nil),
	}}

	uc := NewUseCase(repo, &fixedTimeProvider{now: sweepNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Updated)
	assert.ElementsMatch(t, []string{"expired-explicit-end", "expired-no-end"}, repo.completedIDs)
}

func TestExecute_BoundaryStaysActive(t *testing.T) {
	// эффективное окончание ровно в now не считается истёкшим
	start := sweepNow.Add(-time.Hour)
	repo := &fakeBookingRepo{active: []*domain.Booking{
		activeBooking("on-boundary", start, nil),
	}}

	uc := NewUseCase(repo, &fixedTimeProvider{now: sweepNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Updated)
	assert.Empty(t, repo.completedIDs)
}

func TestExecute_NothingExpired(t *testing.T) {
	repo := &fakeBookingRepo{active: []*domain.Booking{
		activeBooking("future", sweepNow.Add(3*time.Hour), nil),
	}}

	uc := NewUseCase(repo, &fixedTimeProvider{now: sweepNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Updated)
	assert.Empty(t, repo.completedIDs)
}

func TestExecute_LoadFailure(t *testing.T) {
	repo := &fakeBookingRepo{loadErr: errors.New("connection refused")}

	uc := NewUseCase(repo, &fixedTimeProvider{now: sweepNow}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CompleteFailure(t *testing.T) {
	past := sweepNow.Add(-3 * time.Hour)
	repo := &fakeBookingRepo{
		active:      []*domain.Booking{activeBooking("expired", past, nil)},
		completeErr: errors.New("deadlock detected"),
	}

	uc := NewUseCase(repo, &fixedTimeProvider{now: sweepNow}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
