package request

type CreatePromotionRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        *string `json:"description,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage" binding:"required"`
	StartDate          string  `json:"start_date" binding:"required"`
	EndDate            string  `json:"end_date" binding:"required"`
}

func (r CreatePromotionRequest) GetDescription() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}
