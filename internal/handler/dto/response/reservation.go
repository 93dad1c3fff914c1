package response

import (
	"time"

	"reservation-service/internal/usecase/queries"
)

type CreateReservationResponse struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	ReservationID string    `json:"reservationId"`
	Timestamp     time.Time `json:"timestamp"`
}

func FromCreateResult(result *queries.ReservationView) *CreateReservationResponse {
	return &CreateReservationResponse{
		Status:        result.Status,
		Message:       "Your reservation is being processed, awaiting confirmation",
		ReservationID: result.ID,
		Timestamp:     result.CreatedAt,
	}
}

type StatusUpdateResponse struct {
	Status        string `json:"status"`
	ReservationID string `json:"reservationId"`
	UpdatedStatus string `json:"updatedStatus"`
}

func FromStatusUpdate(view *queries.ReservationView) *StatusUpdateResponse {
	return &StatusUpdateResponse{
		Status:        "success",
		ReservationID: view.ID,
		UpdatedStatus: view.Status,
	}
}

type ApprovalResponse struct {
	Message string `json:"message"`
}

type NotificationResponse struct {
	Success bool `json:"success"`
}

type ReservationResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	TableNumber  *string   `json:"tableNumber"`
	TableStatus  *string   `json:"tableStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           view.ID,
		CustomerName: view.CustomerName,
		Status:       view.Status,
		TableNumber:  view.TableNumber,
		TableStatus:  view.TableStatus,
		CreatedAt:    view.CreatedAt,
	}
}
