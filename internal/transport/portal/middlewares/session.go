package middlewares

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yogasw/portal-jualan/internal/domain"
)

const CurrentActorKey = "currentActor"

// Session value keys. Primitives only, so the cookie store needs no gob
// registration.
const (
	SessionUserIDKey   = "userID"
	SessionUsernameKey = "username"
	SessionRoleKey     = "role"
)

const (
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
)

// ActorFromSession rebuilds the request identity from the session cookie.
// Returns false when no valid identity is stored.
func ActorFromSession(c *gin.Context) (domain.Actor, bool) {
	session := sessions.Default(c)

	id, idOK := session.Get(SessionUserIDKey).(int64)
	username, nameOK := session.Get(SessionUsernameKey).(string)
	rawRole, roleOK := session.Get(SessionRoleKey).(string)
	if !idOK || !nameOK || !roleOK {
		return domain.Actor{}, false
	}
	role, parsed := domain.ParseRole(rawRole)
	if !parsed {
		return domain.Actor{}, false
	}

	return domain.Actor{ID: id, Username: username, Role: role}, true
}

// SaveActor writes the identity into the session (login and auto-login after
// register).
func SaveActor(c *gin.Context, actor domain.Actor) error {
	session := sessions.Default(c)
	session.Set(SessionUserIDKey, actor.ID)
	session.Set(SessionUsernameKey, actor.Username)
	session.Set(SessionRoleKey, string(actor.Role))
	return session.Save() //nolint:wrapcheck
}

// ClearActor drops the session (logout).
func ClearActor(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	return session.Save() //nolint:wrapcheck
}

// AuthRequired rejects requests without a session identity and stores the
// actor under CurrentActorKey for handlers.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Harus login",
				"code":    CodeUnauthenticated,
			})
			return
		}
		c.Set(CurrentActorKey, actor)
		c.Next()
	}
}

// AdminRequired allows only admins through. Runs after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := c.MustGet(CurrentActorKey).(domain.Actor)
		if !ok || !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Akses ditolak",
				"code":    CodeForbidden,
			})
			return
		}
		c.Next()
	}
}
