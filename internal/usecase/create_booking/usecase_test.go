package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	promoModels "github.com/m04kA/SMC-ExperienceService/internal/service/promos/models"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range f.bookings {
		if filter.ExperienceID != nil && booking.ExperienceID != *filter.ExperienceID {
			continue
		}
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

type fakePromoEvaluator struct {
	evaluation *promoModels.Evaluation
	err        error
}

func (f *fakePromoEvaluator) Evaluate(_ context.Context, code string, amount float64) (*promoModels.Evaluation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.evaluation != nil {
		return f.evaluation, nil
	}
	return &promoModels.Evaluation{Valid: true, FinalPrice: amount}, nil
}

// fakeTxManager сериализует транзакции мьютексом - как FOR UPDATE в PostgreSQL
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func kayakTour() *domain.Experience {
	return &domain.Experience{
		ID:              1,
		Title:           "Kayak Tour",
		Price:           59.99,
		DurationMinutes: 90,
		Capacity:        8,
		IsActive:        true,
	}
}

func validRequest() *Request {
	return &Request{
		ExperienceID:   1,
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		NumberOfPeople: 2,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, experiences *fakeExperienceRepo, promo *fakePromoEvaluator) *UseCase {
	return NewUseCase(bookings, experiences, promo, &fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}}
	uc := newTestUseCase(bookings, experiences, &fakePromoEvaluator{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "pending", resp.PaymentStatus)
	// 2 человека * 59.99
	assert.InDelta(t, 119.98, resp.TotalPrice, 1e-9)
	assert.Equal(t, 0.0, resp.DiscountAmount)
	// 09:00 + 90 минут
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
}

func TestExecute_EndTimeWrapsPastMidnight(t *testing.T) {
	exp := kayakTour()
	exp.DurationMinutes = 600
	bookings := &fakeBookingRepo{}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: exp}}
	uc := newTestUseCase(bookings, experiences, &fakePromoEvaluator{})

	req := validRequest()
	req.StartTime = "16:00"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("02:00"), resp.EndTime)
}

func TestExecute_SuppliedEndTimeIsKept(t *testing.T) {
	bookings := &fakeBookingRepo{}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}}
	uc := newTestUseCase(bookings, experiences, &fakePromoEvaluator{})

	req := validRequest()
	req.EndTime = ptr.Ptr(types.TimeString("12:00"))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// Переданное время окончания сохраняется вместо вычисленного (10:30)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	require.Len(t, bookings.bookings, 1)
	assert.Equal(t, types.TimeString("12:00"), bookings.bookings[0].EndTime)
}

func TestExecute_WithPromoDiscount(t *testing.T) {
	bookings := &fakeBookingRepo{}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}}
	promo := &fakePromoEvaluator{
		evaluation: &promoModels.Evaluation{
			Valid:          true,
			Code:           ptr.Ptr("WELCOME10"),
			DiscountAmount: 11.998,
			FinalPrice:     107.982,
		},
	}
	uc := newTestUseCase(bookings, experiences, promo)

	req := validRequest()
	req.PromoCode = ptr.Ptr("welcome10")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.InDelta(t, 107.982, resp.TotalPrice, 1e-9)
	assert.InDelta(t, 107.982, resp.FinalPrice, 1e-9)
	assert.InDelta(t, 11.998, resp.DiscountAmount, 1e-9)
	require.NotNil(t, resp.PromoCode)
	assert.Equal(t, "WELCOME10", *resp.PromoCode)
}

func TestExecute_InvalidPromo(t *testing.T) {
	bookings := &fakeBookingRepo{}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}}
	promo := &fakePromoEvaluator{
		evaluation: &promoModels.Evaluation{
			Valid:   false,
			Message: "Minimum order amount of 100 required",
		},
	}
	uc := newTestUseCase(bookings, experiences, promo)

	req := validRequest()
	req.PromoCode = ptr.Ptr("SAVE20")

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidPromo)

	var promoErr *PromoInvalidError
	require.ErrorAs(t, err, &promoErr)
	assert.Equal(t, "Minimum order amount of 100 required", promoErr.Message)

	// Невалидный промокод не оставляет бронирование
	assert.Empty(t, bookings.bookings)
}

func TestExecute_ExperienceNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeExperienceRepo{experiences: map[int64]*domain.Experience{}},
		&fakePromoEvaluator{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestExecute_ExperienceInactive(t *testing.T) {
	exp := kayakTour()
	exp.IsActive = false
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: exp}},
		&fakePromoEvaluator{},
	)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrExperienceInactive)
}

func TestExecute_TimeOutsideSlotGrid(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}},
		&fakePromoEvaluator{},
	)

	req := validRequest()
	req.StartTime = "10:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(req *Request)
	}{
		{"missing name", func(req *Request) { req.CustomerName = "  " }},
		{"bad email", func(req *Request) { req.CustomerEmail = "not-an-email" }},
		{"zero people", func(req *Request) { req.NumberOfPeople = 0 }},
		{"zero experience id", func(req *Request) { req.ExperienceID = 0 }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"bad end time", func(req *Request) { req.EndTime = ptr.Ptr(types.TimeString("25:99")) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&fakeBookingRepo{},
				&fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}},
				&fakePromoEvaluator{},
			)

			req := validRequest()
			tt.modify(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SlotFull(t *testing.T) {
	bookings := &fakeBookingRepo{}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}}
	uc := newTestUseCase(bookings, experiences, &fakePromoEvaluator{})

	// Занимаем 7 из 8 мест
	req := validRequest()
	req.NumberOfPeople = 7
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// На двоих места уже нет
	req = validRequest()
	req.NumberOfPeople = 2
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// На одного - есть
	req = validRequest()
	req.NumberOfPeople = 1
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingsDoNotHoldSpots(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:             1,
				ExperienceID:   1,
				StartTime:      "09:00",
				NumberOfPeople: 8,
				Status:         domain.StatusCancelled,
			},
		},
		nextID: 1,
	}
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: kayakTour()}}
	uc := newTestUseCase(bookings, experiences, &fakePromoEvaluator{})

	req := validRequest()
	req.NumberOfPeople = 8

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_ConcurrentBookingsNeverOverbook(t *testing.T) {
	const attempts = 30

	bookings := &fakeBookingRepo{}
	exp := kayakTour() // capacity 8
	experiences := &fakeExperienceRepo{experiences: map[int64]*domain.Experience{1: exp}}
	uc := newTestUseCase(bookings, experiences, &fakePromoEvaluator{})

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.NumberOfPeople = 1
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, errors.Is(err, ErrSlotNotAvailable), "unexpected error: %v", err)
	}

	assert.Equal(t, exp.Capacity, succeeded)

	booked := 0
	for _, booking := range bookings.bookings {
		booked += booking.NumberOfPeople
	}
	assert.Equal(t, exp.Capacity, booked)
}
