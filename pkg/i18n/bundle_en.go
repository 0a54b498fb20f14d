package i18n

var bundleEN = Bundle{
	Greeting: "Hello %s! 🚗",
	Closing:  "Thank you! Please confirm availability.",

	VehicleSection: "🚗 Vehicle Details",
	BookingSection: "📅 Booking Details",
	TotalLabel:     "💰 Total Cost",
	ContactSection: "👤 Contact Info",

	LabelModel:          "Model",
	LabelYear:           "Year",
	LabelTransmission:   "Transmission",
	LabelFuel:           "Fuel",
	LabelSeats:          "Seats",
	LabelPrice:          "Price",
	LabelFrom:           "From",
	LabelTo:             "To",
	LabelDuration:       "Duration",
	LabelPickupLocation: "Pickup Location",
	LabelName:           "Name",
	LabelPhone:          "Phone",
	LabelEmail:          "Email",
	LabelNotes:          "📝 Notes",

	NotSelected: "Not selected",
	NotProvided: "Not provided",
	Dash:        "-",

	DaySingular: "day",
	DayPlural:   "days",
	SeatsSuffix: "seats",
	PerDay:      "day",

	AllPrices:        "All Prices",
	AllTransmissions: "All",
	AllCategories:    "All categories",

	Transmissions: map[string]string{
		"auto":   "Automatic",
		"manual": "Manual",
	},
	Fuels: map[string]string{
		"essence": "Petrol",
		"diesel":  "Diesel",
	},
	Categories: map[string]string{
		"compact":     "Compact",
		"berline":     "Sedan",
		"suv":         "SUV",
		"suv-compact": "Compact SUV",
		"suv-premium": "Premium SUV",
	},

	ErrFleetUnavailable: "Could not load vehicles. Please try again.",
	ErrCarNotFound:      "Car not found",
	ErrBookingFailed:    "Booking failed. Please try again.",
	ErrFillRequired:     "Please fill all required fields",

	Pages: map[string]Page{
		"about": {
			Title: "About",
			Body:  "Car rental agency based in Casablanca. A recent fleet, transparent pricing and key handover anywhere in Morocco.",
		},
		"contact": {
			Title: "Contact",
			Body:  "Available 24/7 by phone, WhatsApp or email. Delivery available throughout Morocco.",
		},
		"terms": {
			Title: "Rental Terms",
			Body:  "A valid driving licence and ID are required. Fuel is at the renter's expense. Any started day is charged in full (one-day minimum).",
		},
		"privacy": {
			Title: "Privacy Policy",
			Body:  "Booking form details are used only to process your request and are never resold.",
		},
	},
}
