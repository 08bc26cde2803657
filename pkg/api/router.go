package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-site/pkg/middleware"
)

// NewRouter wires the handlers into a gin engine
func NewRouter(handlers *Handlers, logger *zap.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
	router.SetHTMLTemplate(contactTemplate)

	router.GET("/health", handlers.HealthCheck)
	router.GET("/contact", handlers.ContactPage)
	router.GET("/contact/state", handlers.ContactState)
	router.POST("/contact", handlers.HandleContactSubmission)
	router.POST("/contact/reset", handlers.HandleContactReset)

	return router
}
