package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	bookingstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/booking"
	pitchstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/pitch"
	"github.com/m04kA/SMC-PitchBookingService/internal/integrations/profileservice"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	activeFuture []*domain.Booking
	activeInSlot []*domain.Booking
	createErr    error
	created      *domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *booking
	created.ID = "booking-new"
	r.created = &created
	return &created, nil
}

func (r *fakeBookingRepo) GetActiveFutureByUser(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	return r.activeFuture, nil
}

func (r *fakeBookingRepo) GetActiveBySlotHour(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	return r.activeInSlot, nil
}

type fakePitchRepo struct {
	err error
}

func (r *fakePitchRepo) GetByID(_ context.Context, id string) (*domain.Pitch, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &domain.Pitch{ID: id, Name: "Поле 1"}, nil
}

type fakeProfileClient struct {
	profile *profileservice.Profile
	err     error
}

func (c *fakeProfileClient) GetProfile(_ context.Context, _ string) (*profileservice.Profile, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.profile, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow       = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	testSlotStart = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
)

func approvedProfile() *profileservice.Profile {
	return &profileservice.Profile{ID: "user-1", FullName: "Иванов Иван", Role: "student", Status: "approved"}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, pitchRepo *fakePitchRepo, profiles *fakeProfileClient) *UseCase {
	return NewUseCase(bookingRepo, pitchRepo, profiles, fakeTxManager{}, &fixedTimeProvider{now: testNow}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakePitchRepo{}, &fakeProfileClient{profile: approvedProfile()})

	resp, err := uc.Execute(context.Background(), Request{
		UserID:    "user-1",
		PitchID:   "pitch-1",
		SlotStart: testSlotStart,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	assert.Equal(t, "booking-new", resp.Booking.ID)
	assert.Equal(t, domain.StatusActive, resp.Booking.Status)
	assert.Equal(t, testSlotStart, resp.Booking.SlotDatetime)
	require.NotNil(t, resp.Booking.SlotDatetimeEnd)
	assert.Equal(t, testSlotStart.Add(time.Hour), *resp.Booking.SlotDatetimeEnd)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "empty user id",
			req:  Request{PitchID: "pitch-1", SlotStart: testSlotStart},
		},
		{
			name: "empty pitch id",
			req:  Request{UserID: "user-1", SlotStart: testSlotStart},
		},
		{
			name: "zero slot start",
			req:  Request{UserID: "user-1", PitchID: "pitch-1"},
		},
		{
			name: "slot start not on the hour",
			req:  Request{UserID: "user-1", PitchID: "pitch-1", SlotStart: testSlotStart.Add(15 * time.Minute)},
		},
		{
			name: "slot end not one hour after start",
			req: Request{
				UserID:    "user-1",
				PitchID:   "pitch-1",
				SlotStart: testSlotStart,
				SlotEnd:   timePtr(testSlotStart.Add(2 * time.Hour)),
			},
		},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakePitchRepo{}, &fakeProfileClient{profile: approvedProfile()})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestExecute_SlotInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePitchRepo{}, &fakeProfileClient{profile: approvedProfile()})

	tests := []struct {
		name      string
		slotStart time.Time
	}{
		{name: "already passed", slotStart: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
		{name: "current hour", slotStart: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), Request{
				UserID:    "user-1",
				PitchID:   "pitch-1",
				SlotStart: tt.slotStart,
			})
			assert.ErrorIs(t, err, ErrSlotInPast)
		})
	}
}

func TestExecute_DuplicateActiveBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		activeFuture: []*domain.Booking{{ID: "booking-old", UserID: "user-1", Status: domain.StatusActive}},
	}
	uc := newTestUseCase(bookingRepo, &fakePitchRepo{}, &fakeProfileClient{profile: approvedProfile()})

	_, err := uc.Execute(context.Background(), Request{UserID: "user-1", PitchID: "pitch-1", SlotStart: testSlotStart})
	assert.ErrorIs(t, err, ErrDuplicateActiveBooking)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		activeInSlot: []*domain.Booking{{ID: "booking-other", UserID: "user-2", Status: domain.StatusActive}},
	}
	uc := newTestUseCase(bookingRepo, &fakePitchRepo{}, &fakeProfileClient{profile: approvedProfile()})

	_, err := uc.Execute(context.Background(), Request{UserID: "user-1", PitchID: "pitch-1", SlotStart: testSlotStart})
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_ConstraintViolationsMapped(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		want      error
	}{
		{name: "slot unique index", createErr: bookingstore.ErrSlotTaken, want: ErrSlotAlreadyBooked},
		{name: "user unique index", createErr: bookingstore.ErrUserHasActiveBooking, want: ErrDuplicateActiveBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &fakeBookingRepo{createErr: tt.createErr}
			uc := newTestUseCase(bookingRepo, &fakePitchRepo{}, &fakeProfileClient{profile: approvedProfile()})

			_, err := uc.Execute(context.Background(), Request{UserID: "user-1", PitchID: "pitch-1", SlotStart: testSlotStart})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_PitchNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePitchRepo{err: pitchstore.ErrPitchNotFound}, &fakeProfileClient{profile: approvedProfile()})

	_, err := uc.Execute(context.Background(), Request{UserID: "user-1", PitchID: "no-such", SlotStart: testSlotStart})
	assert.ErrorIs(t, err, ErrPitchNotFound)
}

func TestExecute_UserNotApproved(t *testing.T) {
	tests := []struct {
		name    string
		profile *profileservice.Profile
		err     error
	}{
		{
			name:    "pending profile",
			profile: &profileservice.Profile{ID: "user-1", Role: "student", Status: "pending"},
		},
		{
			name: "profile not found",
			err:  profileservice.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakePitchRepo{}, &fakeProfileClient{profile: tt.profile, err: tt.err})

			_, err := uc.Execute(context.Background(), Request{UserID: "user-1", PitchID: "pitch-1", SlotStart: testSlotStart})
			assert.ErrorIs(t, err, ErrUserNotApproved)
		})
	}
}

func TestExecute_AdminBypassesApproval(t *testing.T) {
	profile := &profileservice.Profile{ID: "admin-1", Role: "admin", Status: "pending"}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePitchRepo{}, &fakeProfileClient{profile: profile})

	_, err := uc.Execute(context.Background(), Request{UserID: "admin-1", PitchID: "pitch-1", SlotStart: testSlotStart})
	assert.NoError(t, err)
}

func TestExecute_ProfileServiceDown(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePitchRepo{}, &fakeProfileClient{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), Request{UserID: "user-1", PitchID: "pitch-1", SlotStart: testSlotStart})
	assert.ErrorIs(t, err, ErrInternal)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
