// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/commission-tracker/backend/config"
	"github.com/commission-tracker/backend/internal/application/adapter"
	"github.com/commission-tracker/backend/internal/application/usecase/account"
	"github.com/commission-tracker/backend/internal/application/usecase/brand"
	"github.com/commission-tracker/backend/internal/application/usecase/ledger"
	"github.com/commission-tracker/backend/internal/application/usecase/order"
	paymentimport "github.com/commission-tracker/backend/internal/application/usecase/payment_import"
	"github.com/commission-tracker/backend/internal/application/usecase/tracker"
	"github.com/commission-tracker/backend/internal/domain/service"
	"github.com/commission-tracker/backend/internal/infra/cache"
	"github.com/commission-tracker/backend/internal/infra/server/router"
	sessioncache "github.com/commission-tracker/backend/internal/integration/cache"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/commission-tracker/backend/internal/integration/persistence"
)

// Repositories holds every persistence adapter.
type Repositories struct {
	Brands         adapter.BrandRepository
	Accounts       adapter.AccountRepository
	Trackers       adapter.TrackerRepository
	Orders         adapter.OrderRepository
	Entries        adapter.CommissionEntryRepository
	PaymentLedgers adapter.PaymentLedgerRepository
	ImportSessions adapter.ImportSessionStore // nil without Redis
}

// NewRepositories creates the gorm repositories and, when a client is given,
// the Redis import session store.
func NewRepositories(db *gorm.DB, redisClient *redis.Client) *Repositories {
	repos := &Repositories{
		Brands:         persistence.NewBrandRepository(db),
		Accounts:       persistence.NewAccountRepository(db),
		Trackers:       persistence.NewTrackerRepository(db),
		Orders:         persistence.NewOrderRepository(db),
		Entries:        persistence.NewCommissionEntryRepository(db),
		PaymentLedgers: persistence.NewPaymentLedgerRepository(db),
	}
	if redisClient != nil {
		repos.ImportSessions = sessioncache.NewImportSessionStore(redisClient)
	}
	return repos
}

// UseCases holds every application use case.
type UseCases struct {
	CreateBrand   *brand.CreateBrandUseCase
	GetBrand      *brand.GetBrandUseCase
	ListBrands    *brand.ListBrandsUseCase
	UpdateBrand   *brand.UpdateBrandUseCase
	CreateTracker *tracker.CreateTrackerUseCase

	CreateAccount *account.CreateAccountUseCase
	ListAccounts  *account.ListAccountsUseCase

	CreateOrder  *order.CreateOrderUseCase
	UpdateOrder  *order.UpdateOrderUseCase
	DeleteOrder  *order.DeleteOrderUseCase
	SetPayStatus *order.SetPayStatusUseCase

	ListLedgers      *ledger.ListLedgersUseCase
	GetLedger        *ledger.GetLedgerUseCase
	RecordPayment    *ledger.RecordPaymentUseCase
	MarkShortShipped *ledger.MarkShortShippedUseCase

	// Nil when no import session store is available
	PreviewImport *paymentimport.PreviewImportUseCase
	CommitImport  *paymentimport.CommitImportUseCase
}

// NewUseCases wires the use cases over the given repositories.
func NewUseCases(cfg *config.Config, repos *Repositories, logger *slog.Logger) *UseCases {
	loader := ledger.NewLoader(
		repos.Brands,
		repos.Trackers,
		repos.Orders,
		repos.Entries,
		repos.PaymentLedgers,
		service.NewLedgerAggregator(logger),
	)

	uc := &UseCases{
		CreateBrand:   brand.NewCreateBrandUseCase(repos.Brands),
		GetBrand:      brand.NewGetBrandUseCase(repos.Brands, repos.Trackers),
		ListBrands:    brand.NewListBrandsUseCase(repos.Brands),
		UpdateBrand:   brand.NewUpdateBrandUseCase(repos.Brands),
		CreateTracker: tracker.NewCreateTrackerUseCase(repos.Brands, repos.Trackers),

		CreateAccount: account.NewCreateAccountUseCase(repos.Accounts),
		ListAccounts:  account.NewListAccountsUseCase(repos.Accounts),

		CreateOrder:  order.NewCreateOrderUseCase(repos.Brands, repos.Accounts, repos.Trackers, repos.Orders),
		UpdateOrder:  order.NewUpdateOrderUseCase(repos.Brands, repos.Orders, repos.Entries),
		DeleteOrder:  order.NewDeleteOrderUseCase(repos.Orders),
		SetPayStatus: order.NewSetPayStatusUseCase(repos.Brands, repos.Orders, repos.Entries),

		ListLedgers:      ledger.NewListLedgersUseCase(loader),
		GetLedger:        ledger.NewGetLedgerUseCase(repos.Accounts, loader),
		RecordPayment:    ledger.NewRecordPaymentUseCase(repos.Accounts, repos.Entries, repos.PaymentLedgers, loader),
		MarkShortShipped: ledger.NewMarkShortShippedUseCase(repos.Accounts, repos.Entries, loader),
	}

	if repos.ImportSessions != nil {
		uc.PreviewImport = paymentimport.NewPreviewImportUseCase(
			repos.Accounts,
			repos.ImportSessions,
			loader,
			cfg.Import.MaxRows,
			cfg.Import.SessionTTL,
		)
		uc.CommitImport = paymentimport.NewCommitImportUseCase(
			repos.Accounts,
			repos.ImportSessions,
			loader,
			uc.RecordPayment,
			uc.MarkShortShipped,
		)
	}

	return uc
}

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	UseCases          *UseCases
	ImportRateLimiter *middleware.RateLimiter
	Router            *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Without a database only the health endpoint is served; without Redis the
// import endpoints are left out.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	dbHealthChecker := func() bool { return false }
	if db != nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	cacheHealthChecker := func() bool { return false }
	if redisClient != nil {
		cacheHealthChecker = cache.HealthChecker(redisClient)
	}
	healthController := controller.NewHealthController(dbHealthChecker, cacheHealthChecker)

	injector := &Injector{
		Config: cfg,
		DB:     db,
	}

	if db == nil {
		slog.Warn("Commission endpoints not initialized due to missing database connection")
		injector.Router = router.NewRouter(healthController, nil, nil, nil, nil, nil, nil)
		return injector
	}

	uc := NewUseCases(cfg, NewRepositories(db, redisClient), slog.Default())
	injector.UseCases = uc

	brandController := controller.NewBrandController(
		uc.CreateBrand,
		uc.GetBrand,
		uc.ListBrands,
		uc.UpdateBrand,
		uc.CreateTracker,
	)
	accountController := controller.NewAccountController(uc.CreateAccount, uc.ListAccounts)
	orderController := controller.NewOrderController(
		uc.CreateOrder,
		uc.UpdateOrder,
		uc.DeleteOrder,
		uc.SetPayStatus,
	)
	ledgerController := controller.NewLedgerController(
		uc.ListLedgers,
		uc.GetLedger,
		uc.RecordPayment,
		uc.MarkShortShipped,
	)

	var importController *controller.PaymentImportController
	if uc.PreviewImport != nil {
		importController = controller.NewPaymentImportController(uc.PreviewImport, uc.CommitImport)
		injector.ImportRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Import.RateLimit, cfg.Import.RateLimitWindow)
	} else {
		slog.Warn("Import endpoints not initialized due to missing Redis connection")
	}

	injector.Router = router.NewRouter(
		healthController,
		brandController,
		accountController,
		orderController,
		ledgerController,
		importController,
		injector.ImportRateLimiter,
	)

	return injector
}
