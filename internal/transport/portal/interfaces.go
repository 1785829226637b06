package portal

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/service"
)

type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, error)
}

type ReportServicer interface {
	Create(ctx context.Context, args service.CreateReportArgs) (*domain.Report, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Report, error)
	GetAll(ctx context.Context) ([]domain.Report, error)
	GetDetail(ctx context.Context, actor domain.Actor, id int64) (*domain.Report, error)
	Update(ctx context.Context, actor domain.Actor, args service.UpdateReportArgs) error
	Delete(ctx context.Context, actor domain.Actor, id int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}
