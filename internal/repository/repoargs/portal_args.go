package repoargs

import "github.com/yogasw/portal-jualan/internal/domain"

type CreateUser struct {
	Username string
	Password string
	Role     domain.Role
}

type CreateReport struct {
	UserID   int64
	Nama     string
	Email    string
	Kategori string
	Isi      string
	Status   string
}

type UpdateReport struct {
	ID       int64
	Nama     string
	Email    string
	Kategori string
	Isi      string
}
