package main

import (
	"atlascars/internal/site/handler"
	"atlascars/internal/site/service"
	"atlascars/pkg/app"
	"atlascars/pkg/config"
	"atlascars/pkg/i18n"
)

const ServiceName = "site"

const langPreferencePath = "language.pref"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Site service", "catalog_base_url", cfg.CatalogBaseURL)

	provider := i18n.NewProvider(i18n.NewFileStore(langPreferencePath))
	provider.Init()
	if cfg.DefaultLanguage != i18n.DefaultCode {
		provider.SetLanguage(cfg.DefaultLanguage)
	}
	cfg.Log.Info("Localization initialized",
		"language", provider.Current().Code,
		"rtl", provider.RTL(),
	)

	siteService := initServices(cfg)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		handler.NewSiteHandler(siteService, provider, cfg.Log),
		handler.NewHealthHandler(cfg.CatalogBaseURL, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.SiteService {
	gateway := service.NewCatalogGateway(cfg.CatalogBaseURL, cfg.Log)

	var submitter service.BookingSubmitter
	if cfg.BookingMode == config.BookingModeAPI {
		submitter = service.NewAPISubmitter(gateway, cfg.SiteName)
	} else {
		submitter = service.NewWhatsAppSubmitter(cfg.WhatsAppNumber, cfg.SiteName)
	}
	cfg.Log.Info("Booking submitter initialized", "mode", cfg.BookingMode)

	return service.NewSiteService(gateway, submitter, cfg)
}
