// README: API gateway; registers HTTP routes and delegates to the quote engine.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"farecast/internal/http/middleware"
	"farecast/internal/metrics"
	"farecast/internal/modules/quote"
)

type ServerDeps struct {
	Quote  *quote.Service
	Logger *slog.Logger
}

type Server struct {
	quote  *quote.Service
	logger *slog.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		quote:  deps.Quote,
		logger: deps.Logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.Recovery(s.logger))

	r.POST("/api/delivery-fee/quote", s.HandleQuote)
	r.GET("/api/delivery-area/check", s.HandleCoverageCheck)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}
