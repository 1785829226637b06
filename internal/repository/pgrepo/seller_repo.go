package pgrepo

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type SellerRepository struct {
	db uow.DBTX
}

func NewSellerRepository(db uow.DBTX) *SellerRepository {
	return &SellerRepository{db: db}
}

func (s *SellerRepository) CreateSeller(ctx context.Context, args repoargs.CreateSeller) (*domain.Seller, error) {
	const query = `
		INSERT INTO penjual (username, password, nama_lengkap)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, username, password, nama_lengkap`

	var seller domain.Seller
	err := s.db.QueryRow(ctx, query, args.Username, args.Password, args.NamaLengkap).
		Scan(&seller.ID, &seller.CreatedAt, &seller.Username, &seller.Password, &seller.NamaLengkap)
	if err != nil {
		return nil, convertErr(err, "creating seller")
	}
	return &seller, nil
}

func (s *SellerRepository) FindByUsername(ctx context.Context, username string) (*domain.Seller, error) {
	const query = `
		SELECT id, created_at, username, password, nama_lengkap
		FROM penjual
		WHERE username = $1`

	var seller domain.Seller
	err := s.db.QueryRow(ctx, query, username).
		Scan(&seller.ID, &seller.CreatedAt, &seller.Username, &seller.Password, &seller.NamaLengkap)
	if err != nil {
		return nil, convertErr(err, "finding seller by username %s", username)
	}
	return &seller, nil
}
