package request

// One tagged type per endpoint; optionality is explicit in the field types.

type CreateReservationRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
}

// StatusUpdateRequest is the allocator's explicit patch. tableNumber may be
// absent when the allocator only moves the status. message is free-form text
// the allocator attaches for its own logs; it is accepted and discarded here
// so strict JSON decoding does not reject the payload.
type StatusUpdateRequest struct {
	ReservationID string  `json:"reservationId" binding:"required"`
	Status        string  `json:"status" binding:"required"`
	TableNumber   *string `json:"tableNumber,omitempty"`
	Message       *string `json:"message,omitempty"`
}

type ApprovalRequest struct {
	TableNumber string `json:"tableNumber" binding:"required"`
}

type NotificationReservation struct {
	ID           string `json:"id" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
}

type NotificationTableInfo struct {
	Table  *string `json:"table,omitempty"`
	Status *string `json:"status,omitempty"`
}

// NotificationRequest is the allocator-originated upsert. tableInfo is
// optional as a whole; the allocator omits it when no table was assigned yet.
type NotificationRequest struct {
	Reservation NotificationReservation `json:"reservation" binding:"required"`
	TableInfo   *NotificationTableInfo  `json:"tableInfo,omitempty"`
}

func (r NotificationRequest) Table() *string {
	if r.TableInfo == nil {
		return nil
	}
	return r.TableInfo.Table
}

func (r NotificationRequest) TableStatus() *string {
	if r.TableInfo == nil {
		return nil
	}
	return r.TableInfo.Status
}
