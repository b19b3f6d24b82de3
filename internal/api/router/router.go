package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/a0l6g0r8a9l2/investHelperBE/internal/api/handlers/notification"
	"github.com/a0l6g0r8a9l2/investHelperBE/internal/middlewares"
)

func New(handler *notification.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(middlewares.CORS())

	api := e.Group("/api/notifications")

	api.POST("/", handler.Create)
	api.GET("/", handler.GetAll)
	api.GET("/:id", handler.GetOne)

	return e
}
