package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a portal account. Password holds the bcrypt hash, never the
// plain text.
type User struct {
	ID        int64
	CreatedAt time.Time
	Username  string
	Password  string
	Role      Role
}

// Report is a citizen corruption report. UserID is the owner and is set once
// at creation.
type Report struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	Nama      string
	Email     string
	Kategori  string
	Isi       string
	Status    string
	// Username is filled only by queries joining the users table.
	Username string
}

// Seller is a sales-service account. There is a single seller role, every
// authenticated seller has full access.
type Seller struct {
	ID          int64
	CreatedAt   time.Time
	Username    string
	Password    string
	NamaLengkap string
}

type Buyer struct {
	ID        int64
	CreatedAt time.Time
	Nama      string
	Alamat    string
	NoHP      string
}

type Order struct {
	ID        int64
	CreatedAt time.Time
	BuyerID   int64
	OrderDate time.Time
	Subtotal  decimal.Decimal
	// JumlahProduk is always derived from Subtotal, never client-supplied.
	JumlahProduk int64
	Status       OrderStatusType
	// Buyer join fields, filled by list queries.
	BuyerNama   string
	BuyerAlamat string
	BuyerNoHP   string
}
