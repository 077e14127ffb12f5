package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vidinfra/salesdocs/internal/config"
	"github.com/vidinfra/salesdocs/internal/domain/creditmemo"
	"github.com/vidinfra/salesdocs/internal/domain/invoice"
	"github.com/vidinfra/salesdocs/internal/domain/order"
	"github.com/vidinfra/salesdocs/internal/logger"
	"github.com/vidinfra/salesdocs/internal/types"
	"github.com/vidinfra/salesdocs/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	OrderRepo      order.Repository
	InvoiceRepo    invoice.Repository
	CreditMemoRepo creditmemo.Repository
}

// BaseServiceTestSuite provides common functionality for all service test
// suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.stores = Stores{
		OrderRepo:      NewInMemoryOrderStore(),
		InvoiceRepo:    NewInMemoryInvoiceStore(),
		CreditMemoRepo: NewInMemoryCreditMemoStore(),
	}
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores = Stores{}
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
