package sales

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service"
)

type SellerServicer interface {
	Login(ctx context.Context, args service.LoginSellerArgs) (*domain.Seller, error)
}

type BuyerServicer interface {
	Create(ctx context.Context, args service.CreateBuyerArgs) (*domain.Buyer, error)
	Get(ctx context.Context, id int64) (*domain.Buyer, error)
	GetAll(ctx context.Context) ([]domain.Buyer, error)
	Update(ctx context.Context, args service.UpdateBuyerArgs) error
	Delete(ctx context.Context, id int64) error
}

type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	Update(ctx context.Context, args service.UpdateOrderArgs) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Filter(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type DashboardServicer interface {
	Aggregate(ctx context.Context, r repoargs.DateRange) (*service.DashboardStats, error)
	RecentDaily(ctx context.Context, days int) ([]repoargs.DailyStat, error)
}
