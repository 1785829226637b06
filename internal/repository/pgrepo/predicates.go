package pgrepo

import (
	"fmt"
	"strings"

	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
)

// predicates collects optional filter conditions and their positional args.
// Conditions are ANDed together; queries append either Where() (no fixed
// conditions of their own) or And() (a fixed WHERE is already present).
// Replaces string surgery on prebuilt WHERE clauses.
type predicates struct {
	conds []string
	args  []any
}

func newPredicates() *predicates {
	return &predicates{}
}

// add appends one condition. expr must contain a single %d verb for the
// positional placeholder, e.g. "orderdate >= $%d".
func (p *predicates) add(expr string, arg any) {
	p.args = append(p.args, arg)
	p.conds = append(p.conds, fmt.Sprintf(expr, len(p.args)))
}

// addDateRange appends inclusive bounds for col when they are set.
func (p *predicates) addDateRange(col string, r repoargs.DateRange) {
	if r.Start != nil {
		p.add(col+" >= $%d", *r.Start)
	}
	if r.End != nil {
		p.add(col+" <= $%d", *r.End)
	}
}

// Where renders " WHERE c1 AND c2", or "" when no condition was added.
func (p *predicates) Where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

// And renders " AND c1 AND c2" for queries that already carry a WHERE.
func (p *predicates) And() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(p.conds, " AND ")
}

// Args returns the collected positional arguments in placeholder order.
func (p *predicates) Args() []any {
	return p.args
}
