package middleware

import (
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// SetupPrometheus records request metrics and serves them on /metrics
func SetupPrometheus(r *gin.Engine) *ginprometheus.Prometheus {
	p := ginprometheus.NewPrometheus("gin")
	p.Use(r)
	return p
}
