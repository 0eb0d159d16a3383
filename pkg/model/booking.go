package model

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// PreferredDateLayout is the wire and storage format for the optional
// service date. Keeping it a plain calendar-date string means reads
// return exactly what was written.
const PreferredDateLayout = "2006-01-02"

// Booking is a confirmed service request. PriceTotal comes from the
// caller and is stored as given; quote_id optionally links back to the
// quote it was generated from.
type Booking struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	QuoteID       string    `json:"quote_id,omitempty" bson:"quote_id,omitempty" validate:"omitempty,mongodb"`
	Name          string    `json:"name" bson:"name" validate:"required"`
	Email         string    `json:"email" bson:"email" validate:"required,email"`
	Phone         string    `json:"phone" bson:"phone" validate:"required,min=7,max=20"`
	Address       string    `json:"address" bson:"address" validate:"required"`
	ZipCode       string    `json:"zip_code" bson:"zip_code" validate:"required,min=4,max=10"`
	LawnSizeSqft  int       `json:"lawn_size_sqft" bson:"lawn_size_sqft" validate:"required,gte=100,lte=100000"`
	Frequency     string    `json:"frequency" bson:"frequency" validate:"required,oneof=once biweekly weekly"`
	Extras        []string  `json:"extras" bson:"extras"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	PreferredDate string    `json:"preferred_date,omitempty" bson:"preferred_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PriceTotal    float64   `json:"price_total" bson:"price_total" validate:"gte=0"`
	Status        string    `json:"status" bson:"status" validate:"omitempty,oneof=confirmed cancelled"`
	CreatedAt     time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
