package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
	"github.com/vitoraqdev/SalesOrderManagement/requests"
)

func newOrderDetailsFixture() (IOrderDetailsService, *fakeOrderDetailsRepo, *fakeItemRepo) {
	lines := &fakeOrderDetailsRepo{rows: map[orderLineKey]models.OrderDetails{}}
	items := &fakeItemRepo{rows: map[uint]models.Item{
		7: {ID: 7, Name: "Marmita M", Price: decimal.NewFromFloat(12.50), IsActive: true},
	}}
	return NewOrderDetailsService(lines, items), lines, items
}

func TestOrderDetailsCreateResolvesUnitPrice(t *testing.T) {
	svc, _, _ := newOrderDetailsFixture()

	created, err := svc.Create(context.Background(), requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   7,
		Quantity: 4,
	})
	require.NoError(t, err)

	assert.True(t, created.UnitPrice.Equal(decimal.NewFromFloat(12.50)),
		"unit price must equal the catalog price, got %s", created.UnitPrice)
	assert.True(t, created.TotalPrice.Equal(decimal.NewFromFloat(50.00)),
		"total price is unit price times quantity, got %s", created.TotalPrice)
}

func TestOrderDetailsCreateMissingItem(t *testing.T) {
	svc, lines, _ := newOrderDetailsFixture()

	_, err := svc.Create(context.Background(), requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   99,
		Quantity: 1,
	})

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Item", nf.Entity)
	assert.Empty(t, lines.rows, "no line may persist when the item lookup fails")
}

func TestOrderDetailsCreateSnapshotsPrice(t *testing.T) {
	svc, _, items := newOrderDetailsFixture()

	created, err := svc.Create(context.Background(), requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   7,
		Quantity: 2,
	})
	require.NoError(t, err)

	// a later catalog price change must not touch the stored line
	item := items.rows[7]
	item.Price = decimal.NewFromFloat(99.00)
	items.rows[7] = item

	fetched, err := svc.GetByOrderID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.True(t, fetched[0].UnitPrice.Equal(created.UnitPrice))
}

func TestOrderDetailsGetByOrderEmptyOrder(t *testing.T) {
	svc, _, _ := newOrderDetailsFixture()

	lines, err := svc.GetByOrderID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, lines, "an order with no lines reads back as an empty list")
}

func TestOrderDetailsUpdateRepricesLine(t *testing.T) {
	svc, _, items := newOrderDetailsFixture()

	_, err := svc.Create(context.Background(), requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   7,
		Quantity: 2,
	})
	require.NoError(t, err)

	item := items.rows[7]
	item.Price = decimal.NewFromFloat(14.00)
	items.rows[7] = item

	updated, err := svc.Update(context.Background(), 3, requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   7,
		Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, updated.Quantity)
	assert.True(t, updated.UnitPrice.Equal(decimal.NewFromFloat(14.00)))
	assert.True(t, updated.TotalPrice.Equal(decimal.NewFromFloat(42.00)))
}

func TestOrderDetailsUpdateMissingLine(t *testing.T) {
	svc, _, _ := newOrderDetailsFixture()

	_, err := svc.Update(context.Background(), 3, requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   7,
		Quantity: 1,
	})

	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Order details", nf.Entity)
}

func TestOrderDetailsDelete(t *testing.T) {
	svc, _, _ := newOrderDetailsFixture()

	_, err := svc.Create(context.Background(), requests.OrderDetailsRequest{
		OrderID:  3,
		ItemID:   7,
		Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 3))

	var nf *apperr.NotFoundError
	require.ErrorAs(t, svc.Delete(context.Background(), 3), &nf)
}
