package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "atlascars"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultCatalogBaseURL = "http://localhost:8080"

	DefaultSiteName = "ATLAS CARS"
	// Booking submits hand off to WhatsApp unless explicitly switched to
	// the backend API flow.
	DefaultBookingMode     = BookingModeWhatsApp
	DefaultDefaultLanguage = "fr"

	DefaultSenderEmail  = "no-reply@atlascars.ma"
	DefaultSupportEmail = "support@atlascars.ma"

	DefaultKafkaLeadTopic = "booking.leads"

	DefaultRequestTimeout  = 15 * time.Second
	DefaultMaxRequestSize  = 1 << 20
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

const (
	BookingModeWhatsApp = "whatsapp"
	BookingModeAPI      = "api"
)
