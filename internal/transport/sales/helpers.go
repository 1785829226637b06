package sales

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/transport/sales/middlewares"
	"github.com/yogasw/portal-jualan/internal/transport/sales/tokens"
)

const dateLayout = "2006-01-02"

func getCurrentSeller(c *gin.Context) *tokens.SellerClaims {
	claims, _ := c.MustGet(middlewares.CurrentSellerKey).(*tokens.SellerClaims)
	return claims
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseDateRange reads the optional start_date/end_date query params
// (YYYY-MM-DD, inclusive).
func parseDateRange(c *gin.Context) (repoargs.DateRange, bool) {
	var r repoargs.DateRange
	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return r, false
		}
		r.Start = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return r, false
		}
		r.End = &end
	}
	return r, true
}
