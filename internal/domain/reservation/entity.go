package reservation

import (
	"strings"
	"time"

	"reservation-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyCustomerName = errs.New("customer name is required")

// IDPrefix is kept from the wire format the allocator already understands.
const IDPrefix = "reserv-"

type Reservation struct {
	id           string
	customerName string
	status       Status
	tableNumber  *string
	tableStatus  *string
	createdAt    time.Time
}

// NewReservation builds a locally-originated reservation in pending state with
// a fresh id. createdAt stays zero until the store assigns it.
func NewReservation(customerName string) (*Reservation, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, ErrEmptyCustomerName
	}

	return &Reservation{
		id:           IDPrefix + uuid.NewString(),
		customerName: name,
		status:       StatusPending,
	}, nil
}

// NewConfirmedReservation builds an allocator-originated reservation. The id is
// accepted as given; this is the only path that materializes a record directly
// in confirmed state.
func NewConfirmedReservation(id, customerName string, tableNumber, tableStatus *string) (*Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.New("reservation id is required")
	}
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, ErrEmptyCustomerName
	}

	return &Reservation{
		id:           id,
		customerName: name,
		status:       StatusConfirmed,
		tableNumber:  tableNumber,
		tableStatus:  tableStatus,
	}, nil
}

func (r *Reservation) ID() string           { return r.id }
func (r *Reservation) CustomerName() string { return r.customerName }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) TableNumber() *string { return r.tableNumber }
func (r *Reservation) TableStatus() *string { return r.tableStatus }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
