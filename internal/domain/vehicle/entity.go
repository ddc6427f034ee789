package vehicle

import "bestdeal-service/internal/pkg/validate"

// Photo is one image attached to a listing, in display order.
type Photo struct {
	URL      string  `json:"url" bson:"url" validate:"required"`
	Filename *string `json:"filename" bson:"filename"`
}

// Vehicle is an inventory listing. The schema enforces shape only: VIN
// uniqueness is deliberately not checked at this layer, and two concurrent
// creates with identical VINs are both accepted.
type Vehicle struct {
	Year          int      `json:"year" bson:"year" validate:"required"`
	Make          string   `json:"make" bson:"make" validate:"required"`
	Model         string   `json:"model" bson:"model" validate:"required"`
	Trim          *string  `json:"trim" bson:"trim"`
	Price         *float64 `json:"price" bson:"price"`
	Mileage       *int     `json:"mileage" bson:"mileage"`
	StockNumber   *string  `json:"stock_number" bson:"stock_number"`
	VIN           *string  `json:"vin" bson:"vin" validate:"omitempty,min=11,max=17"`
	Engine        *string  `json:"engine" bson:"engine"`
	Transmission  *string  `json:"transmission" bson:"transmission"`
	Drivetrain    *string  `json:"drivetrain" bson:"drivetrain"`
	FuelType      *string  `json:"fuel_type" bson:"fuel_type"`
	ExteriorColor *string  `json:"exterior_color" bson:"exterior_color"`
	InteriorColor *string  `json:"interior_color" bson:"interior_color"`
	Photos        []Photo  `json:"photos" bson:"photos" validate:"dive"`
	Featured      bool     `json:"featured" bson:"featured"`
}

func (v *Vehicle) Validate() error {
	return validate.Struct(v)
}
