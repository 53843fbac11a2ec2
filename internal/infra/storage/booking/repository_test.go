package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PitchBookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		var slotEnd interface{}
		if b.SlotDatetimeEnd != nil {
			slotEnd = *b.SlotDatetimeEnd
		}
		rows.AddRow(b.ID, b.UserID, b.PitchID, b.SlotDatetime, slotEnd,
			string(b.Status), b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

var (
	testSlotStart = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	testCreatedAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
)

func testBooking(id string) *domain.Booking {
	end := testSlotStart.Add(time.Hour)
	return &domain.Booking{
		ID:              id,
		UserID:          "user-1",
		PitchID:         "pitch-1",
		SlotDatetime:    testSlotStart,
		SlotDatetimeEnd: &end,
		Status:          domain.StatusActive,
		CreatedAt:       testCreatedAt,
		UpdatedAt:       testCreatedAt,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs("user-1", "pitch-1", testSlotStart, sqlmock.AnyArg(), string(domain.StatusActive)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("booking-new", testCreatedAt, testCreatedAt))

	end := testSlotStart.Add(time.Hour)
	created, err := repo.Create(context.Background(), &domain.Booking{
		UserID:          "user-1",
		PitchID:         "pitch-1",
		SlotDatetime:    testSlotStart,
		SlotDatetimeEnd: &end,
		Status:          domain.StatusActive,
	})
	require.NoError(t, err)

	assert.Equal(t, "booking-new", created.ID)
	assert.Equal(t, testCreatedAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "slot taken", constraint: "uq_bookings_active_slot", want: ErrSlotTaken},
		{name: "user has active booking", constraint: "uq_bookings_active_user", want: ErrUserHasActiveBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			mock.ExpectQuery(`INSERT INTO bookings`).
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})

			_, err := repo.Create(context.Background(), testBooking(""))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("no-such").
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), "no-such")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("b1").
		WillReturnRows(bookingRows(testBooking("b1")))

	booking, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	require.NotNil(t, booking.SlotDatetimeEnd)
	assert.Equal(t, testSlotStart.Add(time.Hour), *booking.SlotDatetimeEnd)
}

func TestGetByUserID_StatusFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE user_id = \$1 AND status = \$2 ORDER BY slot_datetime DESC`).
		WithArgs("user-1", string(domain.StatusCancelled)).
		WillReturnRows(bookingRows())

	status := domain.StatusCancelled
	bookings, err := repo.GetByUserID(context.Background(), "user-1", &status)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByPitch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE pitch_id = \$1 AND status = \$2 ORDER BY slot_datetime ASC`).
		WithArgs("pitch-1", string(domain.StatusActive)).
		WillReturnRows(bookingRows(testBooking("b1"), testBooking("b2")))

	bookings, err := repo.GetActiveByPitch(context.Background(), "pitch-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestCompleteBatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id IN \(\$2,\$3\) AND status = \$4`).
		WithArgs(string(domain.StatusCompleted), "b1", "b2", string(domain.StatusActive)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.CompleteBatch(context.Background(), []string{"b1", "b2"})
	require.NoError(t, err)
	// одна запись уже была завершена конкурентным проходом
	assert.Equal(t, int64(1), updated)
}

func TestCompleteBatch_EmptyInput(t *testing.T) {
	repo, _ := newMockRepo(t)

	updated, err := repo.CompleteBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestCancelByOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CancelByOwner(context.Background(), "b1", "user-1")
	assert.NoError(t, err)
}

func TestCancelByOwner_NoMatchingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CancelByOwner(context.Background(), "b1", "stranger")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(string(domain.StatusCompleted), "no-such").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "no-such", domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
