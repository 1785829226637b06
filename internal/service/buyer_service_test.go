package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service/mocks"
	"github.com/yogasw/portal-jualan/pkg/uow"
	uowmocks "github.com/yogasw/portal-jualan/pkg/uow/mocks"
)

type BuyerServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockBuyerRepo *mocks.MockBuyerRepository
	mockOrderRepo *mocks.MockOrderRepository
	buyerService  *BuyerService
}

func TestBuyerServiceSuite(t *testing.T) {
	suite.Run(t, new(BuyerServiceTestSuite))
}

func (s *BuyerServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockBuyerRepo = mocks.NewMockBuyerRepository(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BuyerRepoName)).
		Return(s.mockBuyerRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BuyerRepoName)).
		Return(s.mockBuyerRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	buyerService, servErr := NewBuyerService(s.mockUOW)
	s.Require().NoError(servErr)
	s.buyerService = buyerService
}

func (s *BuyerServiceTestSuite) TestCreate() {
	args := CreateBuyerArgs{
		Nama:   gofakeit.Name(),
		Alamat: gofakeit.Address().Address,
		NoHP:   gofakeit.Phone(),
	}

	created := domain.Buyer{ID: 1, Nama: args.Nama, Alamat: args.Alamat, NoHP: args.NoHP}

	s.mockBuyerRepo.EXPECT().
		Create(gomock.Any(), gomock.Eq(repoargs.CreateBuyer{
			Nama:   args.Nama,
			Alamat: args.Alamat,
			NoHP:   args.NoHP,
		})).
		Return(&created, nil)

	buyer, err := s.buyerService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(&created, buyer)
}

func (s *BuyerServiceTestSuite) TestDelete() {
	var referencedID int64 = 1
	var freeID int64 = 2
	var missingID int64 = 3

	// referenced buyer: the count check fires before any delete
	s.mockOrderRepo.EXPECT().CountByBuyerID(gomock.Any(), referencedID).Return(int64(3), nil)
	s.mockBuyerRepo.EXPECT().Delete(gomock.Any(), referencedID).Times(0)

	s.mockOrderRepo.EXPECT().CountByBuyerID(gomock.Any(), freeID).Return(int64(0), nil)
	s.mockBuyerRepo.EXPECT().Delete(gomock.Any(), freeID).Return(nil)

	s.mockOrderRepo.EXPECT().CountByBuyerID(gomock.Any(), missingID).Return(int64(0), nil)
	s.mockBuyerRepo.EXPECT().Delete(gomock.Any(), missingID).Return(domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "referenced buyer refused", id: referencedID, wantErr: domain.ErrBuyerReferenced},
		{name: "free buyer deleted", id: freeID},
		{name: "missing buyer", id: missingID, wantErr: domain.ErrRecordNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			err := s.buyerService.Delete(s.T().Context(), t.id)
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}
