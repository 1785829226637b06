package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yogasw/portal-jualan/internal/domain"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// errNoRowsAffected marks UPDATE/DELETE statements that matched nothing;
// convertErr reports it as a missing record.
var errNoRowsAffected = errors.New("no rows affected")

// convertErr normalizes a driver error to one of the domain sentinels,
// keeping the original message for diagnostics:
//   - pgx.ErrNoRows → domain.ErrRecordNotFound
//   - unique violation → domain.ErrDuplicateKey
//   - foreign key violation → domain.ErrBuyerReferenced
//   - anything else → domain.ErrUnknown
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, errNoRowsAffected) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrBuyerReferenced
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
