package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/internal/payment"
	"github.com/spicybites/pos/internal/poserrs"
	"github.com/spicybites/pos/pkg/log"
	"go.uber.org/zap"
)

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// processSaleHandler commits a payment: computes the amounts, updates the
// customer's loyalty balance and appends the sale, then returns the receipt.
func (s *Server) processSaleHandler(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	receipt, err := s.processor.Process(c.Request.Context(), &payment.Sale{
		ProcessedBy:  req.ProcessedBy,
		CustomerName: req.CustomerName,
		Subtotal:     req.Subtotal,
		PromoCode:    req.PromoCode,
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// quoteHandler computes the amounts for a sale without committing anything.
func (s *Server) quoteHandler(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.processor.Quote(c.Request.Context(), &payment.Sale{
		ProcessedBy:  req.ProcessedBy,
		CustomerName: req.CustomerName,
		Subtotal:     req.Subtotal,
		PromoCode:    req.PromoCode,
		RedeemPoints: req.RedeemPoints,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) getCustomerHandler(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		s.handleError(c, poserrs.ErrCustomerRequired)
		return
	}

	customer, err := s.customers.GetCustomerByName(c.Request.Context(), name)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if customer == nil {
		s.handleError(c, poserrs.ErrCustomerNotFound)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (s *Server) upsertCustomerHandler(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		s.handleError(c, poserrs.ErrCustomerRequired)
		return
	}

	var req upsertCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	existing, err := s.customers.GetCustomerByName(c.Request.Context(), name)
	if err != nil {
		s.handleError(c, err)
		return
	}

	membership := strings.TrimSpace(req.Membership)
	if membership == "" {
		membership = domain.DefaultMembership
	}

	var points int64
	switch {
	case req.LoyaltyPoints != nil:
		points = *req.LoyaltyPoints
	case existing != nil:
		points = existing.LoyaltyPoints
	}
	if points < 0 {
		points = 0
	}

	customer := &domain.Customer{
		Name:          name,
		Contact:       req.Contact,
		Membership:    membership,
		LoyaltyPoints: points,
	}

	if err := s.customers.UpsertCustomer(c.Request.Context(), customer); err != nil {
		s.handleError(c, err)
		return
	}

	updated, err := s.customers.GetCustomerByName(c.Request.Context(), name)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) getCustomerSalesHandler(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		s.handleError(c, poserrs.ErrCustomerRequired)
		return
	}

	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid page"})
		return
	}

	pagesCount, err := s.sales.GetSalesPagesCount(c.Request.Context(), name)
	if err != nil {
		s.handleError(c, err)
		return
	}

	sales, err := s.sales.GetSalesByPage(c.Request.Context(), name, page)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customerSalesResponse{
		Page:       page,
		PagesCount: pagesCount,
		Sales:      sales,
	})
}

func (s *Server) getPromocodesHandler(c *gin.Context) {
	promocodes, err := s.promocodes.GetAllPromocodes(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, promocodes)
}

func (s *Server) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, poserrs.ErrStaffRequired),
		errors.Is(err, poserrs.ErrCustomerRequired),
		errors.Is(err, poserrs.ErrInvalidSubtotal):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, poserrs.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
