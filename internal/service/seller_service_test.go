package service

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service/mocks"
	"github.com/yogasw/portal-jualan/pkg/uow"
	uowmocks "github.com/yogasw/portal-jualan/pkg/uow/mocks"
)

type SellerServiceTestSuite struct {
	suite.Suite
	mockUOW        *uowmocks.MockUOW
	mockSellerRepo *mocks.MockSellerRepository
	mockPsswd      *mocks.MockPasswordHasher
	sellerService  *SellerService
}

func TestSellerServiceSuite(t *testing.T) {
	suite.Run(t, new(SellerServiceTestSuite))
}

func (s *SellerServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockSellerRepo = mocks.NewMockSellerRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SellerRepoName)).
		Return(s.mockSellerRepo, nil).AnyTimes()

	sellerService, servErr := NewSellerService(s.mockUOW, s.mockPsswd)
	s.Require().NoError(servErr)
	s.sellerService = sellerService
}

func (s *SellerServiceTestSuite) TestLogin() {
	savedUsername := "admin"
	validHash := "hash ok"

	savedSeller := domain.Seller{ID: 1, Username: savedUsername, Password: validHash, NamaLengkap: "Administrator"}

	argsOk := LoginSellerArgs{Username: savedUsername, Password: "<PASSWORD>"}
	argsWrongUsername := LoginSellerArgs{Username: "ghost", Password: "<PASSWORD>"}
	argsWrongPass := LoginSellerArgs{Username: savedUsername, Password: "wrong"}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHash).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHash).Return(false)

	s.mockSellerRepo.EXPECT().
		FindByUsername(gomock.Any(), savedUsername).
		Return(&savedSeller, nil).Times(2)
	s.mockSellerRepo.EXPECT().
		FindByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginSellerArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "unknown username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			seller, err := s.sellerService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Equal(&savedSeller, seller)
			}
		})
	}
}

func (s *SellerServiceTestSuite) TestEnsureAdmin() {
	s.Run("no password configured is a no-op", func() {
		s.Require().NoError(s.sellerService.EnsureAdmin(s.T().Context(), "admin", ""))
	})

	s.Run("existing account is kept", func() {
		s.mockSellerRepo.EXPECT().
			FindByUsername(gomock.Any(), "admin").
			Return(&domain.Seller{ID: 1, Username: "admin"}, nil)

		s.Require().NoError(s.sellerService.EnsureAdmin(s.T().Context(), "admin", "secret"))
	})

	s.Run("missing account is created with a hashed password", func() {
		s.mockSellerRepo.EXPECT().
			FindByUsername(gomock.Any(), "admin").
			Return(nil, domain.ErrRecordNotFound)
		s.mockPsswd.EXPECT().HashPassword("secret").Return("hashed", nil)
		s.mockSellerRepo.EXPECT().
			CreateSeller(gomock.Any(), gomock.Eq(repoargs.CreateSeller{
				Username:    "admin",
				Password:    "hashed",
				NamaLengkap: "Administrator",
			})).
			Return(&domain.Seller{ID: 1}, nil)

		s.Require().NoError(s.sellerService.EnsureAdmin(s.T().Context(), "admin", "secret"))
	})

	s.Run("seed race is tolerated", func() {
		s.mockSellerRepo.EXPECT().
			FindByUsername(gomock.Any(), "admin").
			Return(nil, domain.ErrRecordNotFound)
		s.mockPsswd.EXPECT().HashPassword("secret").Return("hashed", nil)
		s.mockSellerRepo.EXPECT().
			CreateSeller(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDuplicateKey)

		s.Require().NoError(s.sellerService.EnsureAdmin(s.T().Context(), "admin", "secret"))
	})
}
