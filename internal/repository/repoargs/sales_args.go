package repoargs

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yogasw/portal-jualan/internal/domain"
)

type CreateSeller struct {
	Username    string
	Password    string
	NamaLengkap string
}

type CreateBuyer struct {
	Nama   string
	Alamat string
	NoHP   string
}

type UpdateBuyer struct {
	ID     int64
	Nama   string
	Alamat string
	NoHP   string
}

// CreateOrder carries both the subtotal and the derived unit count; the
// repository writes them in a single INSERT so the derivation invariant holds
// row by row.
type CreateOrder struct {
	BuyerID      int64
	OrderDate    time.Time
	Subtotal     decimal.Decimal
	JumlahProduk int64
	Status       domain.OrderStatusType
}

// UpdateOrder rewrites every mutable order field. Subtotal and JumlahProduk
// travel together for the same reason as in CreateOrder.
type UpdateOrder struct {
	ID           int64
	BuyerID      int64
	OrderDate    time.Time
	Subtotal     decimal.Decimal
	JumlahProduk int64
	Status       domain.OrderStatusType
}

// OrderFilter narrows the order listing. Empty Status means any status.
type OrderFilter struct {
	Range  DateRange
	Status domain.OrderStatusType
}
