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
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

type stubCustomerAddressService struct {
	addresses []models.Address
	err       error
}

func (s *stubCustomerAddressService) GetAddressesByCustomerID(context.Context, uint) ([]models.Address, error) {
	return s.addresses, s.err
}

func (s *stubCustomerAddressService) Create(_ context.Context, req requests.CustomerAddressRequest) (*models.CustomerAddress, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CustomerAddress{CustomerID: req.CustomerID, AddressID: req.AddressID}, nil
}

func newCustomerAddressApp(service *stubCustomerAddressService) *fiber.App {
	app := fiber.New()
	handler := NewCustomerAddressHandler(service, false)

	app.Get("/customer_address/:id", handler.GetByCustomer)
	app.Post("/customer_address", handler.Create)
	return app
}

func TestCustomerAddressListResolvesFullAddresses(t *testing.T) {
	service := &stubCustomerAddressService{addresses: []models.Address{
		{ID: 1, Street: "Main St", Number: "100", NeighborhoodID: 1, DeliveryFee: decimal.NewFromFloat(5.00)},
		{ID: 2, Street: "Side St", Number: "7B", NeighborhoodID: 2, DeliveryFee: decimal.NewFromFloat(6.00)},
	}}
	app := newCustomerAddressApp(service)

	resp, err := app.Test(httptest.NewRequest("GET", "/customer_address/1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var addresses []models.Address
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&addresses))
	require.Len(t, addresses, 2)
	assert.Equal(t, "Main St", addresses[0].Street)
}

func TestCustomerAddressCreateLink(t *testing.T) {
	app := newCustomerAddressApp(&stubCustomerAddressService{})

	req := httptest.NewRequest("POST", "/customer_address",
		strings.NewReader(`{"customer_id":1,"address_id":2}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var link models.CustomerAddress
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&link))
	assert.Equal(t, uint(1), link.CustomerID)
	assert.Equal(t, uint(2), link.AddressID)
}

func TestCustomerAddressCreateRequiresBothIDs(t *testing.T) {
	app := newCustomerAddressApp(&stubCustomerAddressService{})

	req := httptest.NewRequest("POST", "/customer_address",
		strings.NewReader(`{"customer_id":1}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
