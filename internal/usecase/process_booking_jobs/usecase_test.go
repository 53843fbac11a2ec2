package process_booking_jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
	bookingstore "github.com/m04kA/SMC-PitchBookingService/internal/infra/storage/booking"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeJobRepo struct {
	due          []*domain.BookingJob
	loadErr      error
	markErr      map[string]error
	processedIDs []string
	limit        uint64
}

func (r *fakeJobRepo) GetDuePending(_ context.Context, _ time.Time, limit uint64) ([]*domain.BookingJob, error) {
	r.limit = limit
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.due, nil
}

func (r *fakeJobRepo) MarkProcessed(_ context.Context, id string) error {
	if err, ok := r.markErr[id]; ok {
		return err
	}
	r.processedIDs = append(r.processedIDs, id)
	return nil
}

type fakeBookingRepo struct {
	bookings  map[string]*domain.Booking
	updateErr map[string]error
	updated   map[string]domain.BookingStatus
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingstore.ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if err, ok := r.updateErr[id]; ok {
		return err
	}
	if r.updated == nil {
		r.updated = make(map[string]domain.BookingStatus)
	}
	r.updated[id] = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var jobsNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dueJob(id, bookingID string) *domain.BookingJob {
	return &domain.BookingJob{
		ID:        id,
		BookingID: bookingID,
		RunAt:     jobsNow.Add(-time.Hour),
		Status:    domain.JobStatusPending,
	}
}

func booking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		UserID:       "user-1",
		PitchID:      "pitch-1",
		SlotDatetime: jobsNow.Add(-2 * time.Hour),
		Status:       status,
	}
}

func TestExecute_ActiveBookingCompleted(t *testing.T) {
	jobRepo := &fakeJobRepo{due: []*domain.BookingJob{dueJob("job-1", "booking-1")}}
	bookingRepo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": booking("booking-1", domain.StatusActive),
	}}

	uc := NewUseCase(jobRepo, bookingRepo, &fixedTimeProvider{now: jobsNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, domain.StatusCompleted, bookingRepo.updated["booking-1"])
	assert.Equal(t, []string{"job-1"}, jobRepo.processedIDs)
	assert.Equal(t, uint64(domain.JobBatchSize), jobRepo.limit)
}

func TestExecute_TerminalBookingLeftUntouched(t *testing.T) {
	jobRepo := &fakeJobRepo{due: []*domain.BookingJob{
		dueJob("job-1", "booking-cancelled"),
		dueJob("job-2", "booking-completed"),
	}}
	bookingRepo := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking-cancelled": booking("booking-cancelled", domain.StatusCancelled),
		"booking-completed": booking("booking-completed", domain.StatusCompleted),
	}}

	uc := NewUseCase(jobRepo, bookingRepo, &fixedTimeProvider{now: jobsNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Processed)
	assert.Empty(t, bookingRepo.updated)
	assert.ElementsMatch(t, []string{"job-1", "job-2"}, jobRepo.processedIDs)
}

func TestExecute_MissingBookingMarksJobProcessed(t *testing.T) {
	jobRepo := &fakeJobRepo{due: []*domain.BookingJob{dueJob("job-1", "booking-gone")}}
	bookingRepo := &fakeBookingRepo{bookings: map[string]*domain.Booking{}}

	uc := NewUseCase(jobRepo, bookingRepo, &fixedTimeProvider{now: jobsNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, []string{"job-1"}, jobRepo.processedIDs)
}

func TestExecute_PerJobFailureSkipped(t *testing.T) {
	jobRepo := &fakeJobRepo{due: []*domain.BookingJob{
		dueJob("job-failing", "booking-failing"),
		dueJob("job-ok", "booking-ok"),
	}}
	bookingRepo := &fakeBookingRepo{
		bookings: map[string]*domain.Booking{
			"booking-failing": booking("booking-failing", domain.StatusActive),
			"booking-ok":      booking("booking-ok", domain.StatusActive),
		},
		updateErr: map[string]error{"booking-failing": errors.New("deadlock detected")},
	}

	uc := NewUseCase(jobRepo, bookingRepo, &fixedTimeProvider{now: jobsNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Processed)
	assert.Equal(t, []string{"job-ok"}, jobRepo.processedIDs)
}

func TestExecute_NoDueJobs(t *testing.T) {
	uc := NewUseCase(&fakeJobRepo{}, &fakeBookingRepo{}, &fixedTimeProvider{now: jobsNow}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Processed)
}

func TestExecute_LoadFailure(t *testing.T) {
	jobRepo := &fakeJobRepo{loadErr: errors.New("connection refused")}

	uc := NewUseCase(jobRepo, &fakeBookingRepo{}, &fixedTimeProvider{now: jobsNow}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
