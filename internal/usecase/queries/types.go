package queries

import "time"

// Read models (DTO for read side)
type ReservationView struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	TableNumber  *string   `json:"tableNumber"`
	TableStatus  *string   `json:"tableStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewView struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Comment      string    `json:"comment"`
	Rating       int32     `json:"rating"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"timestamp"`
}

type PromotionView struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	DiscountPercentage float64   `json:"discount_percentage"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}
