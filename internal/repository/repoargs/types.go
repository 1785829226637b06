// Package repoargs holds the argument and result DTOs shared between the
// service layer and the repositories, plus the registered repository names.
package repoargs

import "time"

const (
	UserRepoName   = "user"
	ReportRepoName = "report"
	SellerRepoName = "seller"
	BuyerRepoName  = "buyer"
	OrderRepoName  = "order"
	StatsRepoName  = "stats"
)

// DateRange is an optional inclusive orderdate window. A nil bound means
// unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether the range restricts nothing.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}
