package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/yogasw/portal-jualan/internal/config"
	"github.com/yogasw/portal-jualan/internal/repository/pgrepo"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service"
	"github.com/yogasw/portal-jualan/internal/service/psswd"
	"github.com/yogasw/portal-jualan/internal/transport/sales"
	"github.com/yogasw/portal-jualan/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

// SalesApp is the order-tracking service. JWT auth, buyer and order CRUD,
// dashboard rollups.
type SalesApp struct {
	Config *config.SalesConfig
	Logger *logrus.Logger
}

func NewSales(conf *config.SalesConfig, l *logrus.Logger) *SalesApp {
	return &SalesApp{
		Config: conf,
		Logger: l,
	}
}

func (a *SalesApp) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting sales app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("sales run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork := uow.NewUnitOfWork(conn)
	registrations := map[string]func(uow.DBTX) uow.Repository{
		repoargs.SellerRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewSellerRepository(dbtx) },
		repoargs.BuyerRepoName:  func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewBuyerRepository(dbtx) },
		repoargs.OrderRepoName:  func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOrderRepository(dbtx) },
		repoargs.StatsRepoName:  func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewStatsRepository(dbtx) },
	}
	for name, factoryFn := range registrations {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return fmt.Errorf("sales run: %s", regErr.Error())
		}
	}

	services, servicesErr := service.SalesFactory(unitOfWork, psswd.PasswordHash(""))
	if servicesErr != nil {
		return fmt.Errorf("sales run: %s", servicesErr.Error())
	}

	if seedErr := services.SellerService.EnsureAdmin(
		notifyCtx, a.Config.AdminUsername, a.Config.AdminPassword); seedErr != nil {
		return fmt.Errorf("sales run: %s", seedErr.Error())
	}

	// one-time repair of rows written before the unit count became derived
	backfilled, backfillErr := services.OrderService.Backfill(notifyCtx)
	if backfillErr != nil {
		return fmt.Errorf("sales run: %s", backfillErr.Error())
	}
	if backfilled > 0 {
		a.Logger.Infof("backfilled jumlah_produk on %d orders", backfilled)
	}

	router := sales.New(sales.RouterArgs{
		Logger:           a.Logger,
		SellerService:    services.SellerService,
		BuyerService:     services.BuyerService,
		OrderService:     services.OrderService,
		DashboardService: services.DashboardService,
		JWTSecretKey:     []byte(a.Config.JWTSecret),
	})

	errChan := make(chan error, 1)
	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}
