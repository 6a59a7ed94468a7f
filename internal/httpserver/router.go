package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"digital-menu/internal/checkout"
	"digital-menu/internal/domain"
	"digital-menu/internal/notify"
	"digital-menu/internal/service/auth"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	Catalog       catalogService
	Cart          cartService
	Checkout      checkoutService
	Auth          authService
	Notifications *notify.Buffer
}

type catalogService interface {
	List(ctx context.Context, category, query string) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

type cartService interface {
	AddLine(ctx context.Context, product domain.Product, quantity int)
	RemoveLine(ctx context.Context, productID string)
	SetQuantity(ctx context.Context, productID string, quantity int)
	SetTableNumber(ctx context.Context, tableNumber string)
	Clear(ctx context.Context)
	Snapshot() domain.CartState
	ItemCount() int
}

type checkoutService interface {
	Checkout(ctx context.Context, in checkout.Input) (*domain.OrderSnapshot, error)
}

type authService interface {
	Login(ctx context.Context, email, password string) (*domain.Staff, string, error)
	Validate(token string) (auth.Session, error)
	Logout(token string)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/login", loginHandler(deps.Auth))
	router.POST("/auth/logout", logoutHandler(deps.Auth))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/categories", listCategoriesHandler(deps.Catalog))
	router.PATCH("/products/:id/availability",
		sessionMiddleware(deps.Auth), requireRole(domain.RoleManager),
		setAvailabilityHandler(deps.Catalog))

	router.GET("/cart", getCartHandler(deps.Cart))
	router.GET("/cart/count", cartCountHandler(deps.Cart))
	router.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
	router.PATCH("/cart/items/:productId", setCartQuantityHandler(deps.Cart))
	router.DELETE("/cart/items/:productId", removeCartItemHandler(deps.Cart))
	router.PUT("/cart/table", setTableHandler(deps.Cart))
	router.DELETE("/cart", clearCartHandler(deps.Cart))

	router.POST("/checkout", optionalSession(deps.Auth), checkoutHandler(deps.Checkout))

	router.GET("/notifications", notificationsHandler(deps.Notifications))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
