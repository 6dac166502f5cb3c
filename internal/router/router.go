package router

import (
	"inventory-backend/internal/handlers"
	"inventory-backend/internal/realtime"
	"inventory-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Router(svc service.InventoryService, hub *realtime.Hub, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	productHandler := handlers.NewProductHandler(svc, log)
	groupHandler := handlers.NewGroupHandler(svc, log)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "SSR is working")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/products", productHandler.List)
		api.GET("/products/filters", productHandler.Filters)
		api.POST("/products", productHandler.Create)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/incoming-groups", groupHandler.ListIncoming)
		api.DELETE("/incoming-groups/:groupName", groupHandler.DeleteIncoming)

		api.GET("/type-groups", groupHandler.ListTypes)
	}

	r.GET("/ws", hub.Handle)

	return r
}
