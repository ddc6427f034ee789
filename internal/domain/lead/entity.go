// Package lead defines the closed set of customer inquiry variants captured
// for dealer follow-up. Every variant is stored in the shared "lead"
// collection, discriminated by the subject label added at write time.
package lead

import "bestdeal-service/internal/pkg/validate"

// Payload is one of the fixed lead variants accepted by the API. Subject is
// both the persistence discriminator and the notification subject line; HTML
// renders the notification body.
type Payload interface {
	Subject() string
	HTML() string
	Validate() error
}

// MessageLead is a free-form "message us" inquiry.
type MessageLead struct {
	Name      string  `json:"name" bson:"name" validate:"required"`
	Email     string  `json:"email" bson:"email" validate:"required,email"`
	Phone     string  `json:"phone" bson:"phone" validate:"required,phone"`
	Message   *string `json:"message" bson:"message"`
	VehicleID *string `json:"vehicle_id" bson:"vehicle_id"`
	TradeIn   *bool   `json:"trade_in" bson:"trade_in"`
}

// OfferLead is a price offer on a listed vehicle.
type OfferLead struct {
	Name        string   `json:"name" bson:"name" validate:"required"`
	Email       string   `json:"email" bson:"email" validate:"required,email"`
	Phone       string   `json:"phone" bson:"phone" validate:"required,phone"`
	OfferAmount *float64 `json:"offer_amount" bson:"offer_amount" validate:"required"`
	VehicleID   *string  `json:"vehicle_id" bson:"vehicle_id"`
}

// ApplyOnline is a financing application. All personal, residential and
// employment fields are required except the home phone, the previous-address
// block, the other-income pair and the vehicle-of-interest block.
type ApplyOnline struct {
	// Personal
	FirstName    string  `json:"first_name" bson:"first_name" validate:"required"`
	LastName     string  `json:"last_name" bson:"last_name" validate:"required"`
	Email        string  `json:"email" bson:"email" validate:"required,email"`
	CellPhone    string  `json:"cell_phone" bson:"cell_phone" validate:"required,phone"`
	HomePhone    *string `json:"home_phone" bson:"home_phone" validate:"omitempty,phone"`
	DOB          string  `json:"dob" bson:"dob" validate:"required,datetime=2006-01-02"`
	SSN          string  `json:"ssn" bson:"ssn" validate:"required"`
	DLNumber     string  `json:"dl_number" bson:"dl_number" validate:"required"`
	DLState      string  `json:"dl_state" bson:"dl_state" validate:"required"`
	DLIssueDate  string  `json:"dl_issue_date" bson:"dl_issue_date" validate:"required,datetime=2006-01-02"`
	DLExpiryDate string  `json:"dl_expiry_date" bson:"dl_expiry_date" validate:"required,datetime=2006-01-02"`

	// Residential
	Street         string   `json:"street" bson:"street" validate:"required"`
	City           string   `json:"city" bson:"city" validate:"required"`
	State          string   `json:"state" bson:"state" validate:"required"`
	ZipCode        string   `json:"zip_code" bson:"zip_code" validate:"required"`
	HousingType    string   `json:"housing_type" bson:"housing_type" validate:"required"`
	MonthlyRent    *float64 `json:"monthly_rent" bson:"monthly_rent" validate:"required"`
	YearsAtAddress *float64 `json:"years_at_address" bson:"years_at_address" validate:"required"`
	PrevStreet     *string  `json:"prev_street" bson:"prev_street"`
	PrevCity       *string  `json:"prev_city" bson:"prev_city"`
	PrevState      *string  `json:"prev_state" bson:"prev_state"`
	PrevZipCode    *string  `json:"prev_zip_code" bson:"prev_zip_code"`

	// Employment
	EmployerName       string   `json:"employer_name" bson:"employer_name" validate:"required"`
	Title              string   `json:"title" bson:"title" validate:"required"`
	EmployerPhone      string   `json:"employer_phone" bson:"employer_phone" validate:"required,phone"`
	MonthlyGrossIncome *float64 `json:"monthly_gross_income" bson:"monthly_gross_income" validate:"required"`
	YearsAtJob         *float64 `json:"years_at_job" bson:"years_at_job" validate:"required"`
	OtherIncomeAmount  *float64 `json:"other_income_amount" bson:"other_income_amount"`
	OtherIncomeSource  *string  `json:"other_income_source" bson:"other_income_source"`

	// Interested vehicle
	VehicleYear       *int    `json:"vehicle_year" bson:"vehicle_year"`
	VehicleMake       *string `json:"vehicle_make" bson:"vehicle_make"`
	VehicleModel      *string `json:"vehicle_model" bson:"vehicle_model"`
	VehicleStockOrVIN *string `json:"vehicle_stock_or_vin" bson:"vehicle_stock_or_vin"`
}

// FileRef is the audit-only remnant of an uploaded file: metadata plus a
// fixed-length base64 prefix. Full content is never persisted.
type FileRef struct {
	Filename    string `json:"filename" bson:"filename"`
	ContentType string `json:"content_type" bson:"content_type"`
	Base64      string `json:"base64" bson:"base64"`
}

// SellTrade is a sell-or-trade inquiry, submitted as a multipart form with an
// optional array of photo uploads.
type SellTrade struct {
	Name  string `json:"name" bson:"name" form:"name" validate:"required"`
	Email string `json:"email" bson:"email" form:"email" validate:"required,email"`
	Phone string `json:"phone" bson:"phone" form:"phone" validate:"required,phone"`
	Zip   string `json:"zip" bson:"zip" form:"zip" validate:"required"`

	Year       int     `json:"year" bson:"year" form:"year" validate:"required"`
	Make       string  `json:"make" bson:"make" form:"make" validate:"required"`
	Model      string  `json:"model" bson:"model" form:"model" validate:"required"`
	Trim       *string `json:"trim" bson:"trim" form:"trim"`
	Mileage    *int    `json:"mileage" bson:"mileage" form:"mileage" validate:"required"`
	VIN        *string `json:"vin" bson:"vin" form:"vin"`
	Condition  *string `json:"condition" bson:"condition" form:"condition"`
	PayoffInfo *string `json:"payoff_info" bson:"payoff_info" form:"payoff_info"`

	Files []FileRef `json:"files" bson:"files" form:"-"`
}

// CarFinder asks the dealership to watch for a vehicle matching the criteria.
// Every criterion is optional; contact details and consent are not.
type CarFinder struct {
	YearMin    *int     `json:"year_min" bson:"year_min"`
	YearMax    *int     `json:"year_max" bson:"year_max"`
	Make       *string  `json:"make" bson:"make"`
	Model      *string  `json:"model" bson:"model"`
	BodyStyle  *string  `json:"body_style" bson:"body_style"`
	MileageMin *int     `json:"mileage_min" bson:"mileage_min"`
	MileageMax *int     `json:"mileage_max" bson:"mileage_max"`
	PriceMin   *float64 `json:"price_min" bson:"price_min"`
	PriceMax   *float64 `json:"price_max" bson:"price_max"`
	Notes      *string  `json:"notes" bson:"notes"`

	Name              string  `json:"name" bson:"name" validate:"required"`
	Email             string  `json:"email" bson:"email" validate:"required,email"`
	Phone             string  `json:"phone" bson:"phone" validate:"required,phone"`
	BestTimeToContact *string `json:"best_time_to_contact" bson:"best_time_to_contact"`

	// Pointer so an explicit false still satisfies required.
	Consent *bool `json:"consent" bson:"consent" validate:"required"`
}

// TestDrive requests a test drive appointment.
type TestDrive struct {
	Name              string  `json:"name" bson:"name" validate:"required"`
	Email             string  `json:"email" bson:"email" validate:"required,email"`
	Phone             string  `json:"phone" bson:"phone" validate:"required,phone"`
	PreferredDatetime string  `json:"preferred_datetime" bson:"preferred_datetime" validate:"required"`
	Vehicle           *string `json:"vehicle" bson:"vehicle"`
	Notes             *string `json:"notes" bson:"notes"`
}

// Referral is a refer-a-friend submission; both parties need full contact
// details.
type Referral struct {
	YourName          string  `json:"your_name" bson:"your_name" validate:"required"`
	YourPhone         string  `json:"your_phone" bson:"your_phone" validate:"required,phone"`
	YourEmail         string  `json:"your_email" bson:"your_email" validate:"required,email"`
	FriendName        string  `json:"friend_name" bson:"friend_name" validate:"required"`
	FriendPhone       string  `json:"friend_phone" bson:"friend_phone" validate:"required,phone"`
	FriendEmail       string  `json:"friend_email" bson:"friend_email" validate:"required,email"`
	InterestedVehicle *string `json:"interested_vehicle" bson:"interested_vehicle"`
}

// ContactUs is the general contact form; the message itself is mandatory.
type ContactUs struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Phone   string `json:"phone" bson:"phone" validate:"required,phone"`
	Message string `json:"message" bson:"message" validate:"required"`
}

// Feedback carries a 1-5 rating. A rating of 5 is public praise and is never
// persisted or emailed; 1-4 is handled as private feedback.
type Feedback struct {
	Rating   int     `json:"rating" bson:"rating" validate:"min=1,max=5"`
	Name     *string `json:"name" bson:"name"`
	Phone    *string `json:"phone" bson:"phone" validate:"omitempty,phone"`
	Email    *string `json:"email" bson:"email" validate:"omitempty,email"`
	Comments *string `json:"comments" bson:"comments"`
}

func (p *MessageLead) Subject() string { return "Message Us Lead" }
func (p *OfferLead) Subject() string   { return "Make an Offer Lead" }
func (p *ApplyOnline) Subject() string { return "Apply Online Lead" }
func (p *SellTrade) Subject() string   { return "Sell or Trade Lead" }
func (p *CarFinder) Subject() string   { return "Car Finder Lead" }
func (p *TestDrive) Subject() string   { return "Test Drive Lead" }
func (p *Referral) Subject() string    { return "Referral Lead" }
func (p *ContactUs) Subject() string   { return "Contact Us Lead" }
func (p *Feedback) Subject() string    { return "Private Feedback" }

func (p *MessageLead) Validate() error { return validate.Struct(p) }
func (p *OfferLead) Validate() error   { return validate.Struct(p) }
func (p *ApplyOnline) Validate() error { return validate.Struct(p) }
func (p *SellTrade) Validate() error   { return validate.Struct(p) }
func (p *CarFinder) Validate() error   { return validate.Struct(p) }
func (p *TestDrive) Validate() error   { return validate.Struct(p) }
func (p *Referral) Validate() error    { return validate.Struct(p) }
func (p *ContactUs) Validate() error   { return validate.Struct(p) }
func (p *Feedback) Validate() error    { return validate.Struct(p) }
