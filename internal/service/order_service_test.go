package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/pricing"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service/mocks"
	"github.com/yogasw/portal-jualan/pkg/uow"
	uowmocks "github.com/yogasw/portal-jualan/pkg/uow/mocks"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockOrderRepo *mocks.MockOrderRepository
	mockBuyerRepo *mocks.MockBuyerRepository
	orderService  *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockBuyerRepo = mocks.NewMockBuyerRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BuyerRepoName)).
		Return(s.mockBuyerRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TestCreate() {
	var existingBuyerID int64 = 1
	var unknownBuyerID int64 = 42
	orderDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	validSubtotal := decimal.NewFromInt(39000)
	invalidSubtotal := decimal.NewFromInt(13001)

	createdOrder := domain.Order{
		ID:           1,
		BuyerID:      existingBuyerID,
		OrderDate:    orderDate,
		Subtotal:     validSubtotal,
		JumlahProduk: 3,
		Status:       domain.OrderStatusPending,
	}

	s.mockBuyerRepo.EXPECT().Exists(gomock.Any(), existingBuyerID).Return(true, nil)
	s.mockBuyerRepo.EXPECT().Exists(gomock.Any(), unknownBuyerID).Return(false, nil)

	// the derived unit count must travel with the subtotal
	s.mockOrderRepo.EXPECT().
		Create(gomock.Any(), gomock.Eq(repoargs.CreateOrder{
			BuyerID:      existingBuyerID,
			OrderDate:    orderDate,
			Subtotal:     validSubtotal,
			JumlahProduk: 3,
			Status:       domain.OrderStatusPending,
		})).
		Return(&createdOrder, nil)

	cases := []struct {
		name      string
		args      CreateOrderArgs
		wantErr   error
		wantOrder *domain.Order
	}{
		{
			name: "ok with derived units and default status",
			args: CreateOrderArgs{
				BuyerID:   existingBuyerID,
				OrderDate: orderDate,
				Subtotal:  validSubtotal,
			},
			wantOrder: &createdOrder,
		},
		{
			name: "subtotal not a multiple",
			args: CreateOrderArgs{
				BuyerID:   existingBuyerID,
				OrderDate: orderDate,
				Subtotal:  invalidSubtotal,
			},
			wantErr: domain.ErrInvalidSubtotal,
		},
		{
			name: "unknown buyer",
			args: CreateOrderArgs{
				BuyerID:   unknownBuyerID,
				OrderDate: orderDate,
				Subtotal:  validSubtotal,
			},
			wantErr: domain.ErrUnknownBuyer,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			order, err := s.orderService.Create(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantOrder, order)
		})
	}
}

func (s *OrderServiceTestSuite) TestUpdate() {
	var buyerID int64 = 1
	orderDate := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	subtotal := decimal.NewFromInt(26000)

	s.mockBuyerRepo.EXPECT().Exists(gomock.Any(), buyerID).Return(true, nil).Times(2)

	s.mockOrderRepo.EXPECT().
		Update(gomock.Any(), gomock.Eq(repoargs.UpdateOrder{
			ID:           1,
			BuyerID:      buyerID,
			OrderDate:    orderDate,
			Subtotal:     subtotal,
			JumlahProduk: 2,
			Status:       domain.OrderStatusDone,
		})).
		Return(nil)

	s.mockOrderRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(domain.ErrRecordNotFound)

	cases := []struct {
		name      string
		args      UpdateOrderArgs
		wantErr   error
		wantUnits int64
	}{
		{
			name: "ok re-derives units",
			args: UpdateOrderArgs{
				ID: 1, BuyerID: buyerID, OrderDate: orderDate,
				Subtotal: subtotal, Status: domain.OrderStatusDone,
			},
			wantUnits: 2,
		},
		{
			name: "missing order",
			args: UpdateOrderArgs{
				ID: 999, BuyerID: buyerID, OrderDate: orderDate,
				Subtotal: subtotal, Status: domain.OrderStatusDone,
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "invalid subtotal short-circuits",
			args: UpdateOrderArgs{
				ID: 1, BuyerID: buyerID, OrderDate: orderDate,
				Subtotal: decimal.NewFromInt(-13000), Status: domain.OrderStatusDone,
			},
			wantErr: domain.ErrInvalidSubtotal,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			units, err := s.orderService.Update(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUnits, units)
		})
	}
}

func (s *OrderServiceTestSuite) TestBackfill() {
	s.mockOrderRepo.EXPECT().
		BackfillUnits(gomock.Any(), gomock.Eq(pricing.UnitPrice)).
		Return(int64(7), nil)

	updated, err := s.orderService.Backfill(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int64(7), updated)
}
