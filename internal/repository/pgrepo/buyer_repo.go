package pgrepo

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type BuyerRepository struct {
	db uow.DBTX
}

func NewBuyerRepository(db uow.DBTX) *BuyerRepository {
	return &BuyerRepository{db: db}
}

func (b *BuyerRepository) Create(ctx context.Context, args repoargs.CreateBuyer) (*domain.Buyer, error) {
	const query = `
		INSERT INTO buyer (nama, alamat, no_hp)
		VALUES ($1, $2, $3)
		RETURNING buyer_id, created_at, nama, alamat, no_hp`

	var buyer domain.Buyer
	err := b.db.QueryRow(ctx, query, args.Nama, args.Alamat, args.NoHP).
		Scan(&buyer.ID, &buyer.CreatedAt, &buyer.Nama, &buyer.Alamat, &buyer.NoHP)
	if err != nil {
		return nil, convertErr(err, "creating buyer")
	}
	return &buyer, nil
}

func (b *BuyerRepository) FindByID(ctx context.Context, id int64) (*domain.Buyer, error) {
	const query = `
		SELECT buyer_id, created_at, nama, alamat, no_hp
		FROM buyer
		WHERE buyer_id = $1`

	var buyer domain.Buyer
	err := b.db.QueryRow(ctx, query, id).
		Scan(&buyer.ID, &buyer.CreatedAt, &buyer.Nama, &buyer.Alamat, &buyer.NoHP)
	if err != nil {
		return nil, convertErr(err, "finding buyer by id %d", id)
	}
	return &buyer, nil
}

// GetAll lists buyers ordered by name.
func (b *BuyerRepository) GetAll(ctx context.Context) ([]domain.Buyer, error) {
	const query = `
		SELECT buyer_id, created_at, nama, alamat, no_hp
		FROM buyer
		ORDER BY nama`

	rows, err := b.db.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting all buyers")
	}
	defer rows.Close()

	var buyers []domain.Buyer
	for rows.Next() {
		var buyer domain.Buyer
		if scanErr := rows.Scan(&buyer.ID, &buyer.CreatedAt, &buyer.Nama,
			&buyer.Alamat, &buyer.NoHP); scanErr != nil {
			return nil, convertErr(scanErr, "scanning all buyers")
		}
		buyers = append(buyers, buyer)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting all buyers")
	}
	return buyers, nil
}

func (b *BuyerRepository) Update(ctx context.Context, args repoargs.UpdateBuyer) error {
	const query = `
		UPDATE buyer
		SET nama = $1, alamat = $2, no_hp = $3
		WHERE buyer_id = $4`

	tag, err := b.db.Exec(ctx, query, args.Nama, args.Alamat, args.NoHP, args.ID)
	if err != nil {
		return convertErr(err, "updating buyer %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating buyer %d", args.ID)
	}
	return nil
}

func (b *BuyerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM buyer WHERE buyer_id = $1`

	tag, err := b.db.Exec(ctx, query, id)
	if err != nil {
		return convertErr(err, "deleting buyer %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting buyer %d", id)
	}
	return nil
}

// Exists is used by order writes to reject unknown buyer ids up front.
func (b *BuyerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM buyer WHERE buyer_id = $1)`

	var exists bool
	if err := b.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, convertErr(err, "checking buyer %d exists", id)
	}
	return exists, nil
}
