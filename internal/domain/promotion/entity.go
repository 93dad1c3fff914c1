package promotion

import (
	"strings"
	"time"

	"reservation-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errs.New("promotion name is required")
	ErrInvalidDiscount = errs.New("discount percentage cannot be negative")
	ErrInvalidWindow   = errs.New("promotion end date is before start date")
)

const idPrefix = "p-"

type Promotion struct {
	id                 string
	name               string
	description        string
	discountPercentage float64
	startDate          time.Time
	endDate            time.Time
	isActive           bool
}

func NewPromotion(name, description string, discountPercentage float64, startDate, endDate time.Time) (*Promotion, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	if discountPercentage < 0 {
		return nil, ErrInvalidDiscount
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidWindow
	}

	return &Promotion{
		id:                 idPrefix + uuid.NewString(),
		name:               trimmed,
		description:        strings.TrimSpace(description),
		discountPercentage: discountPercentage,
		startDate:          startDate,
		endDate:            endDate,
		isActive:           true,
	}, nil
}

func (p *Promotion) ID() string                  { return p.id }
func (p *Promotion) Name() string                { return p.name }
func (p *Promotion) Description() string         { return p.description }
func (p *Promotion) DiscountPercentage() float64 { return p.discountPercentage }
func (p *Promotion) StartDate() time.Time        { return p.startDate }
func (p *Promotion) EndDate() time.Time          { return p.endDate }
func (p *Promotion) IsActive() bool              { return p.isActive }

// ActiveWithin reports whether the promotion window covers the given day.
func (p *Promotion) ActiveWithin(now time.Time) bool {
	day := now.Truncate(24 * time.Hour)
	return p.isActive && !day.Before(p.startDate) && !day.After(p.endDate)
}
