package sales

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/transport/sales/middlewares"
)

const DefaultServiceTimeout = 3 * time.Second

type RouterArgs struct {
	Logger           *logrus.Logger
	SellerService    SellerServicer
	BuyerService     BuyerServicer
	OrderService     OrderServicer
	DashboardService DashboardServicer
	JWTSecretKey     []byte
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.SellerService, args.JWTSecretKey)
	buyerHandler := NewBuyerHandler(args.BuyerService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	dashboardHandler := NewDashboardHandler(args.DashboardService)

	r.POST("/login", authHandler.Login)
	r.GET("/product-price", dashboardHandler.ProductPrice)

	authed := r.Group("", middlewares.AuthRequired(args.JWTSecretKey))

	authed.GET("/check-auth", authHandler.CheckAuth)

	authed.GET("/buyers", buyerHandler.Index)
	authed.POST("/buyer", buyerHandler.Create)
	authed.GET("/buyer/:id", buyerHandler.Show)
	authed.PUT("/buyer/:id", buyerHandler.Update)
	authed.DELETE("/buyer/:id", buyerHandler.Delete)

	authed.GET("/order", ordersHandler.Index)
	authed.POST("/order", ordersHandler.Create)
	authed.GET("/order/filter", ordersHandler.FilterIndex)
	authed.GET("/order/:id", ordersHandler.Show)
	authed.PUT("/order/:id", ordersHandler.Update)
	authed.DELETE("/order/:id", ordersHandler.Delete)

	authed.GET("/dashboard-stats", dashboardHandler.Stats)
	authed.GET("/dashboard-filter", dashboardHandler.FilterStats)

	return r
}

// validateOrderStatus backs the `orderstatus` binding tag.
func validateOrderStatus(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return domain.ValidOrderStatus(raw)
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("orderstatus", validateOrderStatus); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
