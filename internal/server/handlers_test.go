package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spicybites/pos/internal/common/domain"
	"github.com/spicybites/pos/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomers struct {
	customers map[string]*domain.Customer
}

func (f *fakeCustomers) GetCustomerByName(_ context.Context, name string) (*domain.Customer, error) {
	customer, ok := f.customers[name]
	if !ok {
		return nil, nil
	}

	copy := *customer
	return &copy, nil
}

func (f *fakeCustomers) UpsertCustomer(_ context.Context, customer *domain.Customer) error {
	copy := *customer
	f.customers[customer.Name] = &copy
	return nil
}

type fakePromocodes struct {
	rates map[string]float64
}

func (f *fakePromocodes) GetRate(_ context.Context, code string) (float64, error) {
	return f.rates[code], nil
}

func (f *fakePromocodes) GetAllPromocodes(_ context.Context) ([]*domain.Promocode, error) {
	promocodes := []*domain.Promocode{}
	for code, rate := range f.rates {
		promocodes = append(promocodes, &domain.Promocode{Code: code, DiscountRate: rate})
	}
	return promocodes, nil
}

type fakeSales struct {
	customers *fakeCustomers
	records   []*domain.SaleRecord
}

func (f *fakeSales) RecordSale(_ context.Context, sale *domain.SaleRecord) (int64, error) {
	customer, ok := f.customers.customers[sale.CustomerName]
	if !ok {
		customer = &domain.Customer{Name: sale.CustomerName, Membership: domain.DefaultMembership}
		f.customers.customers[sale.CustomerName] = customer
	}

	customer.LoyaltyPoints = payment.NewBalance(customer.LoyaltyPoints, sale.PointsRedeemed, sale.PointsEarned)
	f.records = append(f.records, sale)

	return customer.LoyaltyPoints, nil
}

func (f *fakeSales) GetSalesPagesCount(_ context.Context, customerName string) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.CustomerName == customerName {
			count++
		}
	}
	return (count + domain.SalesPerPage - 1) / domain.SalesPerPage, nil
}

func (f *fakeSales) GetSalesByPage(_ context.Context, customerName string, _ int64) ([]*domain.SaleRecord, error) {
	sales := []*domain.SaleRecord{}
	for _, record := range f.records {
		if record.CustomerName == customerName {
			sales = append(sales, record)
		}
	}
	return sales, nil
}

func newTestRouter() (*gin.Engine, *fakeCustomers, *fakeSales) {
	customers := &fakeCustomers{customers: map[string]*domain.Customer{}}
	promocodes := &fakePromocodes{rates: map[string]float64{"SPICY10": 0.10, "HOT20": 0.20}}
	sales := &fakeSales{customers: customers}

	s := &Server{
		processor:  payment.NewProcessor(customers, promocodes, sales, nil),
		customers:  customers,
		promocodes: promocodes,
		sales:      sales,
	}

	return s.setupRouter(), customers, sales
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestProcessSaleHandler(t *testing.T) {
	router, _, sales := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", map[string]any{
		"processed_by":  "suraj",
		"customer_name": "Anna",
		"subtotal":      100,
		"promo_code":    "SPICY10",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var receipt payment.Receipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))

	assert.Equal(t, 10.00, receipt.PromoDiscount)
	assert.Equal(t, 90.00, receipt.FinalTotal)
	assert.Equal(t, int64(4), receipt.PointsEarned)
	assert.Equal(t, int64(4), receipt.NewBalance)
	assert.NotEmpty(t, receipt.ReceiptID)

	require.Len(t, sales.records, 1)
}

func TestProcessSaleHandler_ValidationError(t *testing.T) {
	router, _, sales := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", map[string]any{
		"customer_name": "Anna",
		"subtotal":      100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/sales", map[string]any{
		"processed_by":  "suraj",
		"customer_name": "Anna",
		"subtotal":      -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, sales.records)
}

func TestProcessSaleHandler_NonNumericSubtotal(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", map[string]any{
		"processed_by":  "suraj",
		"customer_name": "Anna",
		"subtotal":      "ten dollars",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteHandler_NoCommit(t *testing.T) {
	router, customers, sales := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/quote", map[string]any{
		"processed_by":  "suraj",
		"customer_name": "Anna",
		"subtotal":      100,
		"promo_code":    "HOT20",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result payment.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, 20.00, result.PromoDiscount)
	assert.Equal(t, 80.00, result.FinalTotal)

	assert.Empty(t, sales.records)
	assert.Empty(t, customers.customers)
}

func TestGetCustomerHandler(t *testing.T) {
	router, customers, _ := newTestRouter()

	customers.customers["Anna"] = &domain.Customer{
		Name:          "Anna",
		Membership:    domain.DefaultMembership,
		LoyaltyPoints: 42,
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/customers/Anna", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var customer domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, int64(42), customer.LoyaltyPoints)

	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/Nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertCustomerHandler(t *testing.T) {
	router, customers, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/v1/customers/Anna", map[string]any{
		"contact": "anna@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var customer domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, domain.DefaultMembership, customer.Membership)
	assert.Equal(t, int64(0), customer.LoyaltyPoints)

	// Updating contact details keeps the loyalty balance.
	customers.customers["Anna"].LoyaltyPoints = 120

	w = doJSON(t, router, http.MethodPut, "/api/v1/customers/Anna", map[string]any{
		"contact":    "anna@spicybites.nz",
		"membership": "gold",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, "gold", customer.Membership)
	assert.Equal(t, "anna@spicybites.nz", customer.Contact)
	assert.Equal(t, int64(120), customer.LoyaltyPoints)
}

func TestGetCustomerSalesHandler(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/sales", map[string]any{
		"processed_by":  "suraj",
		"customer_name": "Anna",
		"subtotal":      100,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/Anna/sales", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp customerSalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Page)
	assert.Equal(t, int64(1), resp.PagesCount)
	require.Len(t, resp.Sales, 1)
	assert.Equal(t, 100.00, resp.Sales[0].Subtotal)

	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/Anna/sales?page=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPromocodesHandler(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/promocodes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var promocodes []*domain.Promocode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &promocodes))
	assert.Len(t, promocodes, 2)
}

func TestHealthHandler(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
