package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvCatalogBaseURL = "CATALOG_BASE_URL"

	EnvSiteName        = "SITE_NAME"
	EnvWhatsAppNumber  = "WHATSAPP_NUMBER"
	EnvBookingMode     = "SITE_BOOKING_MODE"
	EnvDefaultLanguage = "DEFAULT_LANGUAGE"

	EnvSendgridAPIKey = "SENDGRID_API_KEY"
	EnvSenderEmail    = "SENDER_EMAIL"
	EnvSupportEmail   = "SUPPORT_EMAIL"

	EnvKafkaBrokers   = "KAFKA_BROKERS"
	EnvKafkaLeadTopic = "KAFKA_LEAD_TOPIC"

	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
