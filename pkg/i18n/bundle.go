package i18n

// Page is the localized content of one static informational page.
type Page struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Bundle holds every user-visible string for one language. Bundles are
// static and resident in memory; lookups for a missing language fall
// back to the default code.
type Bundle struct {
	Greeting string // takes the site name
	Closing  string

	VehicleSection string
	BookingSection string
	TotalLabel     string
	ContactSection string

	LabelModel          string
	LabelYear           string
	LabelTransmission   string
	LabelFuel           string
	LabelSeats          string
	LabelPrice          string
	LabelFrom           string
	LabelTo             string
	LabelDuration       string
	LabelPickupLocation string
	LabelName           string
	LabelPhone          string
	LabelEmail          string
	LabelNotes          string

	NotSelected string
	NotProvided string
	Dash        string

	DaySingular string
	DayPlural   string
	SeatsSuffix string
	PerDay      string

	AllPrices        string
	AllTransmissions string
	AllCategories    string

	Transmissions map[string]string
	Fuels         map[string]string
	Categories    map[string]string

	ErrFleetUnavailable string
	ErrCarNotFound      string
	ErrBookingFailed    string
	ErrFillRequired     string

	Pages map[string]Page
}

var bundles = map[string]*Bundle{
	French:  &bundleFR,
	English: &bundleEN,
	Arabic:  &bundleAR,
}

// BundleFor returns the bundle for the given code, or the default
// language's bundle when the code is unsupported.
func BundleFor(code string) *Bundle {
	if b, ok := bundles[code]; ok {
		return b
	}
	return bundles[DefaultCode]
}

// TransmissionLabel maps a transmission wire value to its display label,
// returning the placeholder dash for unknown values.
func (b *Bundle) TransmissionLabel(value string) string {
	if label, ok := b.Transmissions[value]; ok {
		return label
	}
	return b.Dash
}

// FuelLabel maps a fuel wire value to its display label, returning the
// placeholder dash for unknown values.
func (b *Bundle) FuelLabel(value string) string {
	if label, ok := b.Fuels[value]; ok {
		return label
	}
	return b.Dash
}

// CategoryLabel maps a category tag to its display label, returning the
// raw tag when no translation exists.
func (b *Bundle) CategoryLabel(tag string) string {
	if label, ok := b.Categories[tag]; ok {
		return label
	}
	return tag
}

// Days renders a duration with the correct singular or plural unit.
func (b *Bundle) Days(n int) string {
	if n == 1 {
		return b.DaySingular
	}
	return b.DayPlural
}
