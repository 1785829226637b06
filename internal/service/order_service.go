package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/pricing"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

// OrderService owns the derived-field rule: jumlah_produk is recomputed from
// the subtotal on every write path, clients never supply it.
type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, repoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

type CreateOrderArgs struct {
	BuyerID   int64
	OrderDate time.Time
	Subtotal  decimal.Decimal
	Status    domain.OrderStatusType
}

// Create validates the subtotal, derives the unit count and inserts the order
// after confirming the buyer exists, all in one transaction. Returns
// domain.ErrInvalidSubtotal for a subtotal that is not a positive multiple of
// the unit price and domain.ErrUnknownBuyer for a dangling buyer id.
func (s *OrderService) Create(ctx context.Context, args CreateOrderArgs) (*domain.Order, error) {
	if !pricing.ValidSubtotal(args.Subtotal) {
		return nil, domain.ErrInvalidSubtotal
	}
	units := pricing.UnitsFor(args.Subtotal)

	status := args.Status
	if status == "" {
		status = domain.OrderStatusPending
	}

	var order *domain.Order
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := buyerMustExist(c, tx, args.BuyerID); err != nil {
			return err
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		var createErr error
		order, createErr = orderRepo.Create(c, repoargs.CreateOrder{
			BuyerID:      args.BuyerID,
			OrderDate:    args.OrderDate,
			Subtotal:     args.Subtotal,
			JumlahProduk: units,
			Status:       status,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrUnknownBuyer) {
			return nil, domain.ErrUnknownBuyer
		}
		return nil, errors.Wrap(txErr, "creating order")
	}
	return order, nil
}

type UpdateOrderArgs struct {
	ID        int64
	BuyerID   int64
	OrderDate time.Time
	Subtotal  decimal.Decimal
	Status    domain.OrderStatusType
}

// Update rewrites an order. The same subtotal validation and unit derivation
// as Create apply; subtotal and jumlah_produk reach the store in a single
// UPDATE. Returns the derived unit count.
func (s *OrderService) Update(ctx context.Context, args UpdateOrderArgs) (int64, error) {
	if !pricing.ValidSubtotal(args.Subtotal) {
		return 0, domain.ErrInvalidSubtotal
	}
	units := pricing.UnitsFor(args.Subtotal)

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := buyerMustExist(c, tx, args.BuyerID); err != nil {
			return err
		}
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		return orderRepo.Update(c, repoargs.UpdateOrder{ //nolint:wrapcheck
			ID:           args.ID,
			BuyerID:      args.BuyerID,
			OrderDate:    args.OrderDate,
			Subtotal:     args.Subtotal,
			JumlahProduk: units,
			Status:       args.Status,
		})
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrUnknownBuyer) || errors.Is(txErr, domain.ErrRecordNotFound) {
			return 0, txErr
		}
		return 0, errors.Wrap(txErr, "updating order")
	}
	return units, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "getting order")
	}
	return order, nil
}

// Filter lists orders, newest first. An empty filter lists everything.
func (s *OrderService) Filter(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orderRepo.Filter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "filtering orders")
	}
	return orders, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "deleting order")
	}
	return nil
}

// Backfill re-derives jumlah_produk for rows still carrying the legacy zero.
// Safe to run on every startup; a consistent table makes it a no-op.
func (s *OrderService) Backfill(ctx context.Context) (int64, error) {
	updated, err := s.orderRepo.BackfillUnits(ctx, pricing.UnitPrice)
	if err != nil {
		return 0, errors.Wrap(err, "backfilling order units")
	}
	return updated, nil
}

func buyerMustExist(ctx context.Context, tx uow.TX, buyerID int64) error {
	buyerRepo, buyerRepoErr := uow.GetAs[BuyerRepository](tx, uow.RepositoryName(repoargs.BuyerRepoName))
	if buyerRepoErr != nil {
		return buyerRepoErr //nolint:wrapcheck
	}
	exists, existsErr := buyerRepo.Exists(ctx, buyerID)
	if existsErr != nil {
		return existsErr //nolint:wrapcheck
	}
	if !exists {
		return domain.ErrUnknownBuyer
	}
	return nil
}
