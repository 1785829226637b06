package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type SellerService struct {
	uow        uow.UOW
	sellerRepo SellerRepository
	psswd      PasswordHasher
}

func NewSellerService(u uow.UOW, psswd PasswordHasher) (*SellerService, error) {
	sellerRepo, repoErr := uow.GetRepositoryAs[SellerRepository](u, uow.RepositoryName(repoargs.SellerRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &SellerService{
		uow:        u,
		sellerRepo: sellerRepo,
		psswd:      psswd,
	}, nil
}

type LoginSellerArgs struct {
	Username string
	Password string
}

// Login verifies the credential pair. Unknown username and wrong password are
// separate sentinels here; the transport renders both as the same generic
// invalid-credentials response.
func (s *SellerService) Login(ctx context.Context, args LoginSellerArgs) (*domain.Seller, error) {
	seller, findErr := s.sellerRepo.FindByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, errors.Wrap(findErr, "logging in seller")
	}
	if !s.psswd.ComparePassword(args.Password, seller.Password) {
		return nil, domain.ErrPasswordMissMatch
	}
	return seller, nil
}

// EnsureAdmin seeds the admin account at startup when it does not exist yet.
// Does nothing when a password is not configured.
func (s *SellerService) EnsureAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return nil
	}

	_, findErr := s.sellerRepo.FindByUsername(ctx, username)
	if findErr == nil {
		return nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return errors.Wrap(findErr, "ensuring admin seller")
	}

	hashed, hashErr := s.psswd.HashPassword(password)
	if hashErr != nil {
		return errors.Wrap(hashErr, "ensuring admin seller")
	}
	if _, createErr := s.sellerRepo.CreateSeller(ctx, repoargs.CreateSeller{
		Username:    username,
		Password:    hashed,
		NamaLengkap: "Administrator",
	}); createErr != nil {
		// lost a race with another instance seeding the same account
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil
		}
		return errors.Wrap(createErr, "ensuring admin seller")
	}
	return nil
}
