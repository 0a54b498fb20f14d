package model

// Transmission and fuel wire values as stored by the catalog backend.
const (
	TransmissionAuto   = "auto"
	TransmissionManual = "manual"

	FuelPetrol = "essence"
	FuelDiesel = "diesel"
)

// Car is a vehicle record from the rental catalog. Records are created
// and updated by back-office tooling; every consumer in this codebase
// treats them as read-only.
type Car struct {
	ID           string            `json:"id" bson:"id" validate:"required"`
	Brand        string            `json:"brand" bson:"brand" validate:"required"`
	Model        string            `json:"model" bson:"model" validate:"required"`
	Year         int               `json:"year" bson:"year" validate:"required,min=1990"`
	PricePerDay  float64           `json:"price_per_day" bson:"price_per_day" validate:"min=0"`
	Currency     string            `json:"currency" bson:"currency"`
	Seats        int               `json:"seats" bson:"seats" validate:"required,min=1"`
	Transmission string            `json:"transmission" bson:"transmission" validate:"required,oneof=auto manual"`
	Fuel         string            `json:"fuel" bson:"fuel" validate:"required,oneof=essence diesel"`
	Category     string            `json:"category" bson:"category" validate:"required"`
	Quantity     int               `json:"quantity" bson:"quantity" validate:"min=1"`
	Image        string            `json:"image" bson:"image"`
	Gallery      []string          `json:"gallery" bson:"gallery" validate:"min=1"`
	Features     []string          `json:"features" bson:"features"`
	Description  map[string]string `json:"description" bson:"description"`
}

// DescriptionIn returns the description for the requested language code,
// falling back to the given default code when the entry is missing.
func (c *Car) DescriptionIn(lang, fallback string) string {
	if d, ok := c.Description[lang]; ok && d != "" {
		return d
	}
	return c.Description[fallback]
}

// DisplayName is the "Brand Model" string used across listings and
// composed messages.
func (c *Car) DisplayName() string {
	return c.Brand + " " + c.Model
}
