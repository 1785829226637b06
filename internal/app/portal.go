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
	"github.com/yogasw/portal-jualan/internal/transport/portal"
	"github.com/yogasw/portal-jualan/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

// PortalApp is the citizen-report service. Session-cookie auth, report CRUD.
type PortalApp struct {
	Config *config.PortalConfig
	Logger *logrus.Logger
}

func NewPortal(conf *config.PortalConfig, l *logrus.Logger) *PortalApp {
	return &PortalApp{
		Config: conf,
		Logger: l,
	}
}

func (a *PortalApp) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting portal app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("portal run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork := uow.NewUnitOfWork(conn)
	registrations := map[string]func(uow.DBTX) uow.Repository{
		repoargs.UserRepoName:   func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.ReportRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewReportRepository(dbtx) },
	}
	for name, factoryFn := range registrations {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return fmt.Errorf("portal run: %s", regErr.Error())
		}
	}

	services, servicesErr := service.PortalFactory(unitOfWork, psswd.PasswordHash(""))
	if servicesErr != nil {
		return fmt.Errorf("portal run: %s", servicesErr.Error())
	}

	router := portal.New(portal.RouterArgs{
		Logger:        a.Logger,
		UserService:   services.UserService,
		ReportService: services.ReportService,
		SessionSecret: []byte(a.Config.SessionSecret),
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
