package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type stubOrderDetailsService struct {
	lines []models.OrderDetails
	err   error
}

func (s *stubOrderDetailsService) GetByOrderID(context.Context, uint) ([]models.OrderDetails, error) {
	return s.lines, s.err
}

func (s *stubOrderDetailsService) GetAll(context.Context) ([]models.OrderDetails, error) {
	return s.lines, s.err
}

func (s *stubOrderDetailsService) Create(_ context.Context, req requests.OrderDetailsRequest) (*models.OrderDetails, error) {
	if s.err != nil {
		return nil, s.err
	}
	price := decimal.NewFromFloat(12.50)
	return &models.OrderDetails{
		OrderID:    req.OrderID,
		ItemID:     req.ItemID,
		Quantity:   req.Quantity,
		UnitPrice:  price,
		TotalPrice: price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}, nil
}

func (s *stubOrderDetailsService) Update(_ context.Context, _ uint, req requests.OrderDetailsRequest) (*models.OrderDetails, error) {
	return s.Create(context.Background(), req)
}

func (s *stubOrderDetailsService) Delete(context.Context, uint) error {
	return s.err
}

func newOrderDetailsApp(service *stubOrderDetailsService) *fiber.App {
	app := fiber.New()
	handler := NewOrderDetailsHandler(service, false)

	app.Get("/order_details", handler.GetAll)
	app.Get("/order_details/:id", handler.GetByOrder)
	app.Post("/order_details", handler.Create)
	app.Put("/order_details/:id", handler.Update)
	app.Delete("/order_details/:id", handler.Delete)
	return app
}

func TestOrderDetailsGetByOrderReturnsList(t *testing.T) {
	service := &stubOrderDetailsService{lines: []models.OrderDetails{
		{OrderID: 3, ItemID: 7, Quantity: 4, UnitPrice: decimal.NewFromFloat(12.50), TotalPrice: decimal.NewFromFloat(50.00)},
	}}
	app := newOrderDetailsApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/order_details/3", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var lines []models.OrderDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lines))
	require.Len(t, lines, 1)
	assert.Equal(t, uint(3), lines[0].OrderID)
	assert.True(t, lines[0].TotalPrice.Equal(decimal.NewFromFloat(50.00)))
}

func TestOrderDetailsGetByOrderEmptyOrder(t *testing.T) {
	app := newOrderDetailsApp(&stubOrderDetailsService{lines: []models.OrderDetails{}})

	resp, err := app.Test(httptest.NewRequest("GET", "/order_details/3", nil))
	require.NoError(t, err)

	// an order with no lines is an empty list, not a missing resource
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "[]", body(t, resp.Body))
}

func TestOrderDetailsCreateIgnoresClientUnitPrice(t *testing.T) {
	app := newOrderDetailsApp(&stubOrderDetailsService{})

	// unit_price in the payload has no field to land on and is dropped
	req := httptest.NewRequest("POST", "/order_details",
		strings.NewReader(`{"order_id":3,"item_id":7,"quantity":4,"unit_price":0.01}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var created models.OrderDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.True(t, created.UnitPrice.Equal(decimal.NewFromFloat(12.50)))
	assert.True(t, created.TotalPrice.Equal(decimal.NewFromFloat(50.00)))
}

func TestOrderDetailsCreateMissingItem(t *testing.T) {
	app := newOrderDetailsApp(&stubOrderDetailsService{err: apperr.NotFound("Item")})

	req := httptest.NewRequest("POST", "/order_details",
		strings.NewReader(`{"order_id":3,"item_id":99,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Item not found", body(t, resp.Body))
}

func TestOrderDetailsCreateRejectsZeroQuantity(t *testing.T) {
	app := newOrderDetailsApp(&stubOrderDetailsService{})

	req := httptest.NewRequest("POST", "/order_details",
		strings.NewReader(`{"order_id":3,"item_id":7,"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
}
