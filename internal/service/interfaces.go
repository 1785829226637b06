package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type ReportRepository interface {
	Create(ctx context.Context, args repoargs.CreateReport) (*domain.Report, error)
	FindByID(ctx context.Context, id int64) (*domain.Report, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Report, error)
	GetAll(ctx context.Context) ([]domain.Report, error)
	Update(ctx context.Context, args repoargs.UpdateReport) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type SellerRepository interface {
	CreateSeller(ctx context.Context, args repoargs.CreateSeller) (*domain.Seller, error)
	FindByUsername(ctx context.Context, username string) (*domain.Seller, error)
}

type BuyerRepository interface {
	Create(ctx context.Context, args repoargs.CreateBuyer) (*domain.Buyer, error)
	FindByID(ctx context.Context, id int64) (*domain.Buyer, error)
	GetAll(ctx context.Context) ([]domain.Buyer, error)
	Update(ctx context.Context, args repoargs.UpdateBuyer) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Filter(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error)
	Update(ctx context.Context, args repoargs.UpdateOrder) error
	Delete(ctx context.Context, id int64) error
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	BackfillUnits(ctx context.Context, unitPrice decimal.Decimal) (int64, error)
}

type StatsRepository interface {
	TotalBuyers(ctx context.Context) (int64, error)
	OrderTotals(ctx context.Context, r repoargs.DateRange) (*repoargs.OrderTotals, error)
	StatusBreakdown(ctx context.Context, r repoargs.DateRange) ([]repoargs.StatusStat, error)
	DailyBreakdown(ctx context.Context, r repoargs.DateRange) ([]repoargs.DailyStat, error)
}
