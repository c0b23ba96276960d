package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/spicybites/pos/internal/common/config"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/internal/payment"
)

type Server struct {
	httpServer *http.Server

	processor *payment.Processor

	customers  domain.CustomersRepository
	promocodes domain.PromocodesRepository
	sales      domain.SalesRepository
}

func New(cfg *config.Server,
	processor *payment.Processor,
	customers domain.CustomersRepository,
	promocodes domain.PromocodesRepository,
	sales domain.SalesRepository,
) *Server {
	s := &Server{
		processor:  processor,
		customers:  customers,
		promocodes: promocodes,
		sales:      sales,
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(s.setupRouter())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.healthHandler)

	api := router.Group("/api/v1")

	api.POST("/sales", s.processSaleHandler)
	api.POST("/quote", s.quoteHandler)

	api.GET("/customers/:name", s.getCustomerHandler)
	api.PUT("/customers/:name", s.upsertCustomerHandler)
	api.GET("/customers/:name/sales", s.getCustomerSalesHandler)

	api.GET("/promocodes", s.getPromocodesHandler)

	return router
}

func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
