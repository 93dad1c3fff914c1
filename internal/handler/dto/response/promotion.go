package response

import (
	"time"

	"reservation-service/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type PromotionResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromPromotionView(view *queries.PromotionView) *PromotionResponse {
	return &PromotionResponse{
		ID:                 view.ID,
		Name:               view.Name,
		Description:        view.Description,
		DiscountPercentage: view.DiscountPercentage,
		StartDate:          view.StartDate.Format(dateLayout),
		EndDate:            view.EndDate.Format(dateLayout),
		IsActive:           view.IsActive,
		CreatedAt:          view.CreatedAt,
	}
}
