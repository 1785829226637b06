package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderWithBuyerColumns = `
	o.order_id, o.created_at, o.buyer_id, o.orderdate, o.subtotal, o.jumlah_produk, o.status,
	b.nama, b.alamat, b.no_hp`

func scanOrderWithBuyer(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var status string
	err := row.Scan(&order.ID, &order.CreatedAt, &order.BuyerID, &order.OrderDate,
		&order.Subtotal, &order.JumlahProduk, &status,
		&order.BuyerNama, &order.BuyerAlamat, &order.BuyerNoHP)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusType(status)
	return &order, nil
}

// Create inserts an order. Subtotal and jumlah_produk land in the same
// statement, so a stored row can never hold one without the other.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	const query = `
		INSERT INTO orders (buyer_id, orderdate, subtotal, jumlah_produk, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id, created_at, buyer_id, orderdate, subtotal, jumlah_produk, status`

	var order domain.Order
	var status string
	err := o.db.QueryRow(ctx, query,
		args.BuyerID, args.OrderDate, args.Subtotal, args.JumlahProduk, string(args.Status)).
		Scan(&order.ID, &order.CreatedAt, &order.BuyerID, &order.OrderDate,
			&order.Subtotal, &order.JumlahProduk, &status)
	if err != nil {
		return nil, convertErr(err, "creating order")
	}
	order.Status = domain.OrderStatusType(status)
	return &order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT` + orderWithBuyerColumns + `
		FROM orders o
		JOIN buyer b ON o.buyer_id = b.buyer_id
		WHERE o.order_id = $1`

	order, err := scanOrderWithBuyer(o.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return order, nil
}

// Filter lists orders with the buyer joined in, newest orderdate first. An
// empty filter returns everything.
func (o *OrderRepository) Filter(ctx context.Context, filter repoargs.OrderFilter) ([]domain.Order, error) {
	preds := newPredicates()
	preds.addDateRange("o.orderdate", filter.Range)
	if filter.Status != "" {
		preds.add("o.status = $%d", string(filter.Status))
	}

	query := `
		SELECT` + orderWithBuyerColumns + `
		FROM orders o
		JOIN buyer b ON o.buyer_id = b.buyer_id` +
		preds.Where() + `
		ORDER BY o.orderdate DESC, o.order_id DESC`

	rows, err := o.db.Query(ctx, query, preds.Args()...)
	if err != nil {
		return nil, convertErr(err, "filtering orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrderWithBuyer(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning filtered orders")
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "filtering orders")
	}
	return orders, nil
}

// Update rewrites all mutable fields, recomputed jumlah_produk included, in a
// single statement.
func (o *OrderRepository) Update(ctx context.Context, args repoargs.UpdateOrder) error {
	const query = `
		UPDATE orders
		SET buyer_id = $1, orderdate = $2, subtotal = $3, jumlah_produk = $4, status = $5
		WHERE order_id = $6`

	tag, err := o.db.Exec(ctx, query,
		args.BuyerID, args.OrderDate, args.Subtotal, args.JumlahProduk, string(args.Status), args.ID)
	if err != nil {
		return convertErr(err, "updating order %d", args.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating order %d", args.ID)
	}
	return nil
}

func (o *OrderRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE order_id = $1`

	tag, err := o.db.Exec(ctx, query, id)
	if err != nil {
		return convertErr(err, "deleting order %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting order %d", id)
	}
	return nil
}

// CountByBuyerID backs the referential check before a buyer deletion.
func (o *OrderRepository) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE buyer_id = $1`

	var count int64
	if err := o.db.QueryRow(ctx, query, buyerID).Scan(&count); err != nil {
		return 0, convertErr(err, "counting orders of buyer %d", buyerID)
	}
	return count, nil
}

// BackfillUnits re-derives jumlah_produk for legacy rows where it is still
// zero. Running it again is a no-op once every row is consistent.
func (o *OrderRepository) BackfillUnits(ctx context.Context, unitPrice decimal.Decimal) (int64, error) {
	const query = `
		UPDATE orders
		SET jumlah_produk = ROUND(subtotal / $1)
		WHERE jumlah_produk = 0`

	tag, err := o.db.Exec(ctx, query, unitPrice)
	if err != nil {
		return 0, convertErr(err, "backfilling jumlah_produk")
	}
	return tag.RowsAffected(), nil
}
