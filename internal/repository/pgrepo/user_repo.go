package pgrepo

import (
	"context"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a portal account. A username conflict comes back as
// domain.ErrDuplicateKey, everything else as domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	const query = `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, username, password, role`

	var user domain.User
	var role string
	err := u.db.QueryRow(ctx, query, args.Username, args.Password, string(args.Role)).
		Scan(&user.ID, &user.CreatedAt, &user.Username, &user.Password, &role)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	user.Role = domain.Role(role)
	return &user, nil
}

// FindByUsername returns domain.ErrRecordNotFound when no such account exists.
func (u *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
		SELECT id, created_at, username, password, role
		FROM users
		WHERE username = $1`

	var user domain.User
	var role string
	err := u.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.CreatedAt, &user.Username, &user.Password, &role)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
		SELECT id, created_at, username, password, role
		FROM users
		WHERE id = $1`

	var user domain.User
	var role string
	err := u.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.CreatedAt, &user.Username, &user.Password, &role)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	user.Role = domain.Role(role)
	return &user, nil
}
