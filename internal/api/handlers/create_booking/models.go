package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	createBooking "github.com/m04kA/SMC-ExperienceService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ExperienceID    int64   `json:"experienceId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	BookingDate     string  `json:"bookingDate"`       // "2026-09-15"
	StartTime       string  `json:"startTime"`         // "09:00"
	EndTime         *string `json:"endTime,omitempty"` // если не задано, вычисляется из длительности
	NumberOfPeople  int     `json:"numberOfPeople"`
	PromoCode       *string `json:"promoCode,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingID      int64   `json:"bookingId"`
	TotalPrice     float64 `json:"totalPrice"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`

	ExperienceID   int64   `json:"experienceId"`
	BookingDate    string  `json:"bookingDate"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	NumberOfPeople int     `json:"numberOfPeople"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"paymentStatus"`
	PromoCode      *string `json:"promoCode,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	var endTime *types.TimeString
	if r.EndTime != nil {
		parsed, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		endTime = &parsed
	}

	return &createBooking.Request{
		ExperienceID:    r.ExperienceID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		NumberOfPeople:  r.NumberOfPeople,
		PromoCode:       r.PromoCode,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:      resp.BookingID,
		TotalPrice:     resp.TotalPrice,
		DiscountAmount: resp.DiscountAmount,
		FinalPrice:     resp.FinalPrice,
		ExperienceID:   resp.ExperienceID,
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		NumberOfPeople: resp.NumberOfPeople,
		Status:         resp.Status,
		PaymentStatus:  resp.PaymentStatus,
		PromoCode:      resp.PromoCode,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
