package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if filter.ExperienceID != nil && booking.ExperienceID != *filter.ExperienceID {
			continue
		}
		if !filter.IncludeCancelled && booking.IsCancelled() {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

type fakeExperienceRepo struct {
	experiences map[int64]*domain.Experience
}

func (f *fakeExperienceRepo) GetByID(_ context.Context, id int64) (*domain.Experience, error) {
	exp, ok := f.experiences[id]
	if !ok {
		return nil, experienceRepo.ErrExperienceNotFound
	}
	return exp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func booking(startTime types.TimeString, people int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ExperienceID:   1,
		StartTime:      startTime,
		NumberOfPeople: people,
		Status:         status,
	}
}

func TestExecute_FullGrid(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("09:00", 3, domain.StatusConfirmed),
		booking("09:00", 2, domain.StatusPending),
		booking("11:00", 8, domain.StatusConfirmed),
	}}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{
		1: {ID: 1, Title: "Kayak Tour", Capacity: 8, IsActive: true},
	}}
	uc := NewUseCase(bookings, experiences, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ExperienceID: 1,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ExperienceID)
	assert.Equal(t, "Kayak Tour", resp.Title)
	assert.Equal(t, 8, resp.Capacity)

	require.Len(t, resp.Slots, len(domain.DailySlots))
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, 3, resp.Slots[0].AvailableSpots)
	assert.Equal(t, 0, resp.Slots[1].AvailableSpots)
	assert.Equal(t, 8, resp.Slots[2].AvailableSpots)
	assert.Equal(t, 8, resp.Slots[3].AvailableSpots)
}

func TestExecute_OverbookedSlotFlooredAtZero(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("14:00", 12, domain.StatusConfirmed),
	}}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{
		1: {ID: 1, Title: "Cooking Class", Capacity: 10, IsActive: true},
	}}
	uc := NewUseCase(bookings, experiences, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ExperienceID: 1,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Slots[2].AvailableSpots)
}

func TestExecute_CancelledBookingsIgnored(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("09:00", 8, domain.StatusCancelled),
	}}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{
		1: {ID: 1, Title: "Kayak Tour", Capacity: 8, IsActive: true},
	}}
	uc := NewUseCase(bookings, experiences, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ExperienceID: 1,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 8, resp.Slots[0].AvailableSpots)
}

func TestExecute_ExperienceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeExperienceRepo{experiences: map[int64]*domain.Experience{}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ExperienceID: 99,
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeExperienceRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ExperienceID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ExperienceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
