package check_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if filter.StartTime != nil && booking.StartTime != *filter.StartTime {
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

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{
		1: {ID: 1, Title: "Kayak Tour", Capacity: 8, IsActive: true},
	}}
	return NewUseCase(bookings, experiences, nopLogger{})
}

func request(people int) *Request {
	return &Request{
		ExperienceID:   1,
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "11:00",
		NumberOfPeople: people,
	}
}

func TestExecute_SlotHasRoom(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ExperienceID: 1, StartTime: "11:00", NumberOfPeople: 5, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), request(3))

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 3, resp.AvailableSpots)
}

func TestExecute_NotEnoughSpots(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{ExperienceID: 1, StartTime: "11:00", NumberOfPeople: 6, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookings)

	resp, err := uc.Execute(context.Background(), request(3))

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, 2, resp.AvailableSpots)
}

func TestExecute_TimeOutsideSlotGrid(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := request(1)
	req.StartTime = "12:30"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ExperienceNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeExperienceRepo{experiences: map[int64]*domain.Experience{}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), request(1))

	assert.ErrorIs(t, err, ErrExperienceNotFound)
}
