package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type BuyerService struct {
	uow       uow.UOW
	buyerRepo BuyerRepository
}

func NewBuyerService(u uow.UOW) (*BuyerService, error) {
	buyerRepo, repoErr := uow.GetRepositoryAs[BuyerRepository](u, uow.RepositoryName(repoargs.BuyerRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &BuyerService{
		uow:       u,
		buyerRepo: buyerRepo,
	}, nil
}

type CreateBuyerArgs struct {
	Nama   string
	Alamat string
	NoHP   string
}

func (s *BuyerService) Create(ctx context.Context, args CreateBuyerArgs) (*domain.Buyer, error) {
	buyer, createErr := s.buyerRepo.Create(ctx, repoargs.CreateBuyer{
		Nama:   args.Nama,
		Alamat: args.Alamat,
		NoHP:   args.NoHP,
	})
	if createErr != nil {
		return nil, errors.Wrap(createErr, "creating buyer")
	}
	return buyer, nil
}

func (s *BuyerService) Get(ctx context.Context, id int64) (*domain.Buyer, error) {
	buyer, err := s.buyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "getting buyer")
	}
	return buyer, nil
}

func (s *BuyerService) GetAll(ctx context.Context) ([]domain.Buyer, error) {
	buyers, err := s.buyerRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting all buyers")
	}
	return buyers, nil
}

type UpdateBuyerArgs struct {
	ID     int64
	Nama   string
	Alamat string
	NoHP   string
}

func (s *BuyerService) Update(ctx context.Context, args UpdateBuyerArgs) error {
	if err := s.buyerRepo.Update(ctx, repoargs.UpdateBuyer{
		ID:     args.ID,
		Nama:   args.Nama,
		Alamat: args.Alamat,
		NoHP:   args.NoHP,
	}); err != nil {
		return errors.Wrap(err, "updating buyer")
	}
	return nil
}

// Delete removes a buyer unless orders still reference it. The referential
// check and the delete run in one transaction; the check takes precedence over
// existence, so a referenced buyer yields domain.ErrBuyerReferenced and a
// missing one domain.ErrRecordNotFound.
func (s *BuyerService) Delete(ctx context.Context, id int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}
		count, countErr := orderRepo.CountByBuyerID(c, id)
		if countErr != nil {
			return countErr //nolint:wrapcheck
		}
		if count > 0 {
			return domain.ErrBuyerReferenced
		}

		buyerRepo, buyerRepoErr := uow.GetAs[BuyerRepository](tx, uow.RepositoryName(repoargs.BuyerRepoName))
		if buyerRepoErr != nil {
			return buyerRepoErr //nolint:wrapcheck
		}
		return buyerRepo.Delete(c, id) //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrBuyerReferenced) {
			return domain.ErrBuyerReferenced
		}
		return errors.Wrap(txErr, "deleting buyer")
	}
	return nil
}
