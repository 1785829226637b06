package portal

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogasw/portal-jualan/internal/transport/portal/middlewares"
)

const DefaultServiceTimeout = 3 * time.Second

// SessionName is the cookie carrying the session id.
const SessionName = "portal_session"

type RouterArgs struct {
	Logger        *logrus.Logger
	UserService   UserServicer
	ReportService ReportServicer
	SessionSecret []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	store := cookie.NewStore(args.SessionSecret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(SessionName, store))

	authHandler := NewAuthHandler(args.UserService)
	reportHandler := NewReportHandler(args.ReportService)

	r.GET("/", authHandler.Landing)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/check-session", authHandler.CheckSession)

	authed := r.Group("", middlewares.AuthRequired())

	authed.GET("/dashboard", authHandler.Dashboard)

	authed.POST("/laporan", reportHandler.Create)
	authed.GET("/laporan/user", reportHandler.Index)
	authed.POST("/laporan/edit", reportHandler.Edit)
	authed.POST("/laporan/hapus", reportHandler.Delete)

	admin := authed.Group("", middlewares.AdminRequired())
	admin.GET("/laporan/all", reportHandler.All)
	admin.POST("/laporan/status", reportHandler.Status)

	// static /laporan/user and /laporan/all take priority over :id
	authed.GET("/laporan/:id", reportHandler.Show)

	return r
}
