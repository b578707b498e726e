package models

import "github.com/m04kA/SMC-ExperienceService/internal/domain"

// ExperienceResponse ответ с данными впечатления
type ExperienceResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Capacity        int     `json:"capacity"`
	ImageURL        *string `json:"imageUrl,omitempty"`
	IsActive        bool    `json:"isActive"`
}

// ExperienceListResponse ответ со списком впечатлений
type ExperienceListResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
}

// FromDomainExperience конвертирует domain модель в DTO
func FromDomainExperience(e *domain.Experience) *ExperienceResponse {
	if e == nil {
		return nil
	}

	return &ExperienceResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		Price:           e.Price,
		DurationMinutes: e.DurationMinutes,
		Capacity:        e.Capacity,
		ImageURL:        e.ImageURL,
		IsActive:        e.IsActive,
	}
}

// FromDomainExperienceList конвертирует список domain моделей в DTO
func FromDomainExperienceList(experiences []*domain.Experience) *ExperienceListResponse {
	resp := &ExperienceListResponse{
		Experiences: make([]ExperienceResponse, 0, len(experiences)),
	}

	for _, exp := range experiences {
		if expResp := FromDomainExperience(exp); expResp != nil {
			resp.Experiences = append(resp.Experiences, *expResp)
		}
	}

	return resp
}
