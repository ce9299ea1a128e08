package salary

import (
	"glamist-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	records := r.Group("/salary")
	records.Use(middleware.AuthMiddleware())
	records.Use(middleware.ExtractUserID())
	{
		records.GET("/list",
			middleware.RateLimitByUser(5, 10),
			handler.GetAll,
		)
		records.GET("/details/:id",
			middleware.RateLimitByUser(5, 10),
			handler.GetById,
		)
		records.GET("/dashboard",
			middleware.RateLimitByUser(2, 5),
			handler.Dashboard,
		)
		records.POST("/add",
			middleware.RateLimitByUser(1, 2),
			middleware.RoleMiddleware("admin", "manager"),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		records.PUT("/edit/:id",
			middleware.RateLimitByUser(1, 2),
			middleware.RoleMiddleware("admin", "manager"),
			handler.Update,
		)
		records.DELETE("/delete/:id",
			middleware.RateLimitByUser(0.5, 1),
			middleware.RoleMiddleware("admin"),
			handler.Delete,
		)
		records.POST("/process",
			middleware.RateLimitByUser(0.5, 1),
			middleware.RoleMiddleware("admin"),
			middleware.Idempotency(rdb),
			handler.ProcessPayments,
		)
	}
}
