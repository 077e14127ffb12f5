package service

import (
	"github.com/vidinfra/salesdocs/internal/config"
	"github.com/vidinfra/salesdocs/internal/domain/creditmemo"
	"github.com/vidinfra/salesdocs/internal/domain/invoice"
	"github.com/vidinfra/salesdocs/internal/domain/order"
	"github.com/vidinfra/salesdocs/internal/domain/tax"
	"github.com/vidinfra/salesdocs/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	OrderRepo      order.Repository
	InvoiceRepo    invoice.Repository
	CreditMemoRepo creditmemo.Repository

	// Collaborators
	Convertor       Convertor
	TotalsCollector TotalsCollector
	TaxDisplay      tax.DisplayConfig
}
