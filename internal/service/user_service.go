package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

// UserService handles portal accounts. New registrations always get the user
// role; admins are promoted by hand in the database.
type UserService struct {
	uow      uow.UOW
	userRepo UserRepository
	psswd    PasswordHasher
}

func NewUserService(u uow.UOW, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		uow:      u,
		userRepo: userRepo,
		psswd:    psswd,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Password string
}

// Register creates a portal account. A taken username surfaces as
// domain.ErrDuplicateKey. The caller starts the session from the returned
// user (auto-login after register).
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	hashed, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, errors.Wrap(hashErr, "registering user")
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		var createErr error
		user, createErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username: args.Username,
			Password: hashed,
			Role:     domain.RoleUser,
		})
		return createErr //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, errors.Wrap(txErr, "registering user")
	}
	return user, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login verifies the credential pair. Both an unknown username and a wrong
// password come back as their own sentinel; the transport collapses them into
// one generic response so the two cases are indistinguishable to a client.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, error) {
	user, findErr := s.userRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, errors.Wrap(findErr, "logging in user")
	}
	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, domain.ErrPasswordMissMatch
	}
	return user, nil
}
