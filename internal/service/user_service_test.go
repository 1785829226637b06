package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service/mocks"
	"github.com/yogasw/portal-jualan/pkg/uow"
	uowmocks "github.com/yogasw/portal-jualan/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestRegister() {
	argsOk := RegisterUserArgs{Username: "warga", Password: "<PASSWORD>"}
	argsDuplicate := RegisterUserArgs{Username: "taken", Password: "<PASSWORD>"}

	hashed := "hashed password"

	createdUser := domain.User{
		ID:       1,
		Username: argsOk.Username,
		Password: hashed,
		Role:     domain.RoleUser,
	}

	s.mockPsswd.EXPECT().HashPassword(argsOk.Password).Return(hashed, nil)
	s.mockPsswd.EXPECT().HashPassword(argsDuplicate.Password).Return(hashed, nil)

	// a fresh registration always carries the user role
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Username: argsOk.Username,
			Password: hashed,
			Role:     domain.RoleUser,
		})).
		Return(&createdUser, nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Username: argsDuplicate.Username,
			Password: hashed,
			Role:     domain.RoleUser,
		})).
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name     string
		args     RegisterUserArgs
		wantErr  error
		wantUser *domain.User
	}{
		{name: "ok", args: argsOk, wantUser: &createdUser},
		{name: "duplicate username", args: argsDuplicate, wantErr: domain.ErrDuplicateKey},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, err := s.userService.Register(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)
		})
	}
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUsername := "warga"
	validHash := "hash ok"

	argsOk := LoginUserArgs{Username: savedUsername, Password: "<PASSWORD>"}
	argsWrongUsername := LoginUserArgs{Username: "wrong", Password: "<PASSWORD>"}
	argsWrongPass := LoginUserArgs{Username: savedUsername, Password: "wrong pass"}

	savedUser := domain.User{ID: 1, Username: savedUsername, Password: validHash, Role: domain.RoleUser}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHash).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHash).Return(false)

	s.mockUserRepo.EXPECT().
		FindByUsername(gomock.Any(), savedUsername).
		Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().
		FindByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, err := s.userService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Equal(&savedUser, user)
			}
		})
	}
}
