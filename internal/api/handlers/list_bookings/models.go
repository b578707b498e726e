package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
// Все фильтры опциональны: status, experienceId, startDate, endDate, includeCancelled
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if experienceIDStr := query.Get("experienceId"); experienceIDStr != "" {
		experienceID, err := strconv.ParseInt(experienceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ExperienceID = &experienceID
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if includeCancelledStr := query.Get("includeCancelled"); includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
