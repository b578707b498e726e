package validate_promo

import (
	"github.com/m04kA/SMC-ExperienceService/internal/service/promos/models"
)

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// ValidatePromoResponse HTTP response model
// Message заполняется только при valid=false
type ValidatePromoResponse struct {
	Valid          bool    `json:"valid"`
	Message        string  `json:"message,omitempty"`
	Code           *string `json:"code,omitempty"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}

// FromEvaluation конвертирует результат проверки в HTTP response
func FromEvaluation(eval *models.Evaluation) *ValidatePromoResponse {
	return &ValidatePromoResponse{
		Valid:          eval.Valid,
		Message:        eval.Message,
		Code:           eval.Code,
		DiscountAmount: eval.DiscountAmount,
		FinalPrice:     eval.FinalPrice,
	}
}
