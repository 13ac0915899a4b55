package models

type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"
)

type Category string

const (
	CategoryAll      Category = "all"
	CategorySUV      Category = "suv"
	CategorySedan    Category = "sedan"
	CategorySport    Category = "sport"
	CategoryElectric Category = "electric"
	CategoryHybrid   Category = "hybrid"
)

type Badge string

const (
	BadgeNew       Badge = "new"
	BadgeCertified Badge = "certified"
	BadgeDeal      Badge = "deal"
	BadgeUsed      Badge = "used"
)

type Seller struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type Vehicle struct {
	ID           string   `json:"id"`
	Make         string   `json:"make" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	Price        float64  `json:"price" binding:"min=0"`
	Mileage      float64  `json:"mileage" binding:"min=0"`
	FuelType     FuelType `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	Horsepower   int      `json:"horsepower"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Category     Category `json:"category"`
	Badge        *Badge   `json:"badge,omitempty"`
	ZeroToSixty  *float64 `json:"zero_to_sixty,omitempty"`
	Range        *int     `json:"range,omitempty"`
	Drivetrain   *string  `json:"drivetrain,omitempty"`
	BodyStyle    *string  `json:"body_style,omitempty"`
	Seating      *int     `json:"seating,omitempty"`
	Seller       *Seller  `json:"seller,omitempty"`
}

// Merge applies an incoming record over an existing one. Required fields
// always overwrite; optional fields overwrite only when set on the incoming
// record (nil means "unspecified", not "unset").
func (v Vehicle) Merge(incoming Vehicle) Vehicle {
	merged := incoming
	merged.ID = v.ID
	if incoming.Badge == nil {
		merged.Badge = v.Badge
	}
	if incoming.ZeroToSixty == nil {
		merged.ZeroToSixty = v.ZeroToSixty
	}
	if incoming.Range == nil {
		merged.Range = v.Range
	}
	if incoming.Drivetrain == nil {
		merged.Drivetrain = v.Drivetrain
	}
	if incoming.BodyStyle == nil {
		merged.BodyStyle = v.BodyStyle
	}
	if incoming.Seating == nil {
		merged.Seating = v.Seating
	}
	if incoming.Seller == nil {
		merged.Seller = v.Seller
	}
	return merged
}
