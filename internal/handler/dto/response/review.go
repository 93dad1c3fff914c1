package response

import (
	"time"

	"reservation-service/internal/usecase/queries"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Comment      string    `json:"comment"`
	Rating       int32     `json:"rating"`
	Source       string    `json:"source"`
	Timestamp    time.Time `json:"timestamp"`
}

func FromReviewView(view *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:           view.ID,
		CustomerName: view.CustomerName,
		Comment:      view.Comment,
		Rating:       view.Rating,
		Source:       view.Source,
		Timestamp:    view.CreatedAt,
	}
}
