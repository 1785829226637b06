package portal

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/transport/portal/middlewares"
)

func getCurrentActor(c *gin.Context) domain.Actor {
	actor, _ := c.MustGet(middlewares.CurrentActorKey).(domain.Actor)
	return actor
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ActorResponse is the identity payload echoed on login, register and the
// session endpoints.
type ActorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func actorResponseOf(actor domain.Actor) ActorResponse {
	return ActorResponse{
		ID:       actor.ID,
		Username: actor.Username,
		Role:     string(actor.Role),
	}
}
