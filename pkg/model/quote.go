package model

import "time"

// Quote is a stored price estimate. Price fields are computed server
// side from the customer-supplied lawn parameters and never updated
// after insertion.
type Quote struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name         string    `json:"name" bson:"name" validate:"required"`
	Email        string    `json:"email" bson:"email" validate:"required,email"`
	Address      string    `json:"address" bson:"address" validate:"required"`
	ZipCode      string    `json:"zip_code" bson:"zip_code" validate:"required,min=4,max=10"`
	LawnSizeSqft int       `json:"lawn_size_sqft" bson:"lawn_size_sqft" validate:"required,gte=100,lte=100000"`
	Frequency    string    `json:"frequency" bson:"frequency" validate:"required,oneof=once biweekly weekly"`
	Extras       []string  `json:"extras" bson:"extras"`
	BasePrice    float64   `json:"base_price" bson:"base_price" validate:"gte=0"`
	Discount     float64   `json:"discount" bson:"discount" validate:"gte=0"`
	ExtrasTotal  float64   `json:"extras_total" bson:"extras_total" validate:"gte=0"`
	ServiceFee   float64   `json:"service_fee" bson:"service_fee" validate:"gte=0"`
	Total        float64   `json:"total" bson:"total" validate:"gte=0"`
	CreatedAt    time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
