package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafaelleal24/commerce/internal/adapters/config"
	"github.com/rafaelleal24/commerce/internal/adapters/http/controllers"
	"github.com/rafaelleal24/commerce/internal/adapters/http/middleware"
)

type Controllers struct {
	Health  *controllers.HealthController
	Docs    *controllers.DocsController
	User    *controllers.UserController
	Point   *controllers.PointController
	Brand   *controllers.BrandController
	Product *controllers.ProductController
	Like    *controllers.LikeController
	Order   *controllers.OrderController
}

type Router struct {
	controllers    Controllers
	rateLimiter    middleware.RateLimiter
	observer       middleware.RequestObserver
	metricsHandler http.Handler
	orderRateLimit int
}

func NewRouter(
	controllers Controllers,
	rateLimiter middleware.RateLimiter,
	observer middleware.RequestObserver,
	metricsHandler http.Handler,
	orderRateLimit int,
) *Router {
	return &Router{
		controllers:    controllers,
		rateLimiter:    rateLimiter,
		observer:       observer,
		metricsHandler: metricsHandler,
		orderRateLimit: orderRateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	ctrl := r.controllers
	auth := middleware.RequireUserID()

	router.GET("/metrics", gin.WrapH(r.metricsHandler))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := router.Group("/api/v1")
	{
		v1Group.Use(middleware.Metrics(r.observer), middleware.LogRequest())
		v1Group.GET("/health", ctrl.Health.Health)
		v1Group.GET("/docs/swagger.json", ctrl.Docs.Swagger)

		v1Group.POST("/users", ctrl.User.SignUp)
		v1Group.GET("/users/me", auth, ctrl.User.Me)

		v1Group.GET("/points", auth, ctrl.Point.GetPoint)
		v1Group.POST("/points/charge", auth, ctrl.Point.Charge)

		v1Group.POST("/brands", ctrl.Brand.CreateBrand)
		v1Group.GET("/brands/:id", ctrl.Brand.GetBrand)

		v1Group.POST("/products", ctrl.Product.CreateProduct)
		v1Group.GET("/products", ctrl.Product.ListProducts)
		v1Group.GET("/products/:id", ctrl.Product.GetProduct)
		v1Group.POST("/products/:id/likes", auth, ctrl.Like.AddLike)
		v1Group.DELETE("/products/:id/likes", auth, ctrl.Like.RemoveLike)

		v1Group.POST("/orders", auth, middleware.RateLimit(r.rateLimiter, r.orderRateLimit, 1*time.Minute), ctrl.Order.PlaceOrder)
		v1Group.GET("/orders", auth, ctrl.Order.GetMyOrders)
		v1Group.GET("/orders/:id", auth, ctrl.Order.GetOrder)
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.New()
	engine.Use(gin.Recovery())
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
