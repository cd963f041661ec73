package service

import (
	"github.com/MKhiriev/moneydashboard/internal/adapter"
	"github.com/MKhiriev/moneydashboard/internal/config"
	"github.com/MKhiriev/moneydashboard/internal/logger"
)

type ClientServices struct {
	SessionService ClientSessionService
}

func NewClientServices(cfg *config.ClientConfig, dashboardAdapter adapter.DashboardAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService: NewClientSessionService(dashboardAdapter, cfg.Credentials, cfg.App, log),
	}
}
