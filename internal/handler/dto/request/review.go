package request

type CreateReviewRequest struct {
	CustomerName string  `json:"customerName" binding:"required"`
	Comment      *string `json:"comment,omitempty"`
	Rating       int     `json:"rating" binding:"required"`
}

func (r CreateReviewRequest) GetComment() string {
	if r.Comment == nil {
		return ""
	}
	return *r.Comment
}
