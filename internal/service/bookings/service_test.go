package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ExperienceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledReason string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if filter.ExperienceID != nil && booking.ExperienceID != *filter.ExperienceID {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		if !filter.IncludeCancelled && booking.IsCancelled() {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func futureBooking(id int64, startIn time.Duration, now time.Time) *domain.Booking {
	startAt := now.Add(startIn)
	return &domain.Booking{
		ID:             id,
		ExperienceID:   1,
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		BookingDate:    time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, startAt.Location()),
		StartTime:      "14:00",
		EndTime:        "16:00",
		NumberOfPeople: 2,
		TotalPrice:     119.98,
		Status:         domain.StatusConfirmed,
		PaymentStatus:  domain.PaymentPending,
	}
}

func TestGetByID_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		42: futureBooking(42, 72*time.Hour, now),
	}}
	svc := newTestService(repo, now)

	resp, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, now)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_InvalidStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, now)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("bogus"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_FiltersByExperience(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	first := futureBooking(1, 48*time.Hour, now)
	second := futureBooking(2, 48*time.Hour, now)
	second.ExperienceID = 7
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: first, 2: second}}
	svc := newTestService(repo, now)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		ExperienceID: ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestCancel_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		42: futureBooking(42, 72*time.Hour, now),
	}}
	svc := newTestService(repo, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		CancellationReason: "plans changed",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Equal(t, "plans changed", repo.cancelledReason)
}

func TestCancel_NotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, now)

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	booking := futureBooking(42, 72*time.Hour, now)
	booking.Status = domain.StatusCancelled
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: booking}}
	svc := newTestService(repo, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_TooLate(t *testing.T) {
	// Слот начинается 2026-09-02 14:00, отмена в 2026-09-01 20:00 - осталось 18 часов
	now := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	booking := futureBooking(42, 0, now)
	booking.BookingDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: booking}}
	svc := newTestService(repo, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrTooLateToCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		42: futureBooking(42, 72*time.Hour, now),
	}}
	svc := newTestService(repo, now)

	reason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range reason {
		reason[i] = 'x'
	}

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		CancellationReason: string(reason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_ExactlyAtCutoff(t *testing.T) {
	// Ровно 24 часа до начала - отмена ещё разрешена
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	booking := futureBooking(42, 0, now)
	booking.BookingDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: booking}}
	svc := newTestService(repo, now)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		CancellationReason: "on the boundary",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.cancelledID)
}
