package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/config"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/handler"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	docH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
	corsCfg *config.CORSConfig,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsCfg.AllowedOrigins))

	r.GET("/health", healthH.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/documents", docH.Upload)
	r.GET("/documents", docH.List)
	r.GET("/documents/:id", docH.GetByID)

	return r
}
