package review

import (
	"strings"

	"reservation-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyCustomerName = errs.New("customer name is required")

// Source tags every locally-submitted review before it is pushed to the
// allocator, which aggregates reviews from both services.
const Source = "reservation-service"

const idPrefix = "b-"

// Reviews are append-only: no update, no delete.
type Review struct {
	id           string
	customerName string
	comment      string
	rating       Rating
	source       string
}

func NewReview(customerName, comment string, rating int) (*Review, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, ErrEmptyCustomerName
	}

	return &Review{
		id:           idPrefix + uuid.NewString(),
		customerName: name,
		comment:      strings.TrimSpace(comment),
		rating:       NewRating(rating),
		source:       Source,
	}, nil
}

func (r *Review) ID() string           { return r.id }
func (r *Review) CustomerName() string { return r.customerName }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) SourceTag() string    { return r.source }
