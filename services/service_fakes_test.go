package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vitoraqdev/SalesOrderManagement/models"
	"github.com/vitoraqdev/SalesOrderManagement/packages/apperr"
)

// In-memory repository fakes. They mimic only the storage behavior the
// services depend on: id assignment, NotFound on misses, and the generated
// total_price column.

type fakeNeighborhoodRepo struct {
	rows map[uint]models.Neighborhood
}

func (f *fakeNeighborhoodRepo) GetNeighborhoodByID(_ context.Context, id uint) (*models.Neighborhood, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Neighborhood")
	}
	return &row, nil
}

func (f *fakeNeighborhoodRepo) GetAllNeighborhoods(context.Context) ([]models.Neighborhood, error) {
	out := make([]models.Neighborhood, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeNeighborhoodRepo) CreateNeighborhood(_ context.Context, n *models.Neighborhood) error {
	n.ID = uint(len(f.rows) + 1)
	f.rows[n.ID] = *n
	return nil
}

func (f *fakeNeighborhoodRepo) UpdateNeighborhood(_ context.Context, id uint, _ map[string]interface{}) (*models.Neighborhood, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Neighborhood")
	}
	return &row, nil
}

func (f *fakeNeighborhoodRepo) DeleteNeighborhood(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("Neighborhood")
	}
	delete(f.rows, id)
	return nil
}

type fakeAddressRepo struct {
	rows   map[uint]models.Address
	nextID uint
}

func (f *fakeAddressRepo) GetAddressByID(_ context.Context, id uint) (*models.Address, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Address")
	}
	return &row, nil
}

func (f *fakeAddressRepo) GetAllAddresses(context.Context) ([]models.Address, error) {
	out := make([]models.Address, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeAddressRepo) CreateAddress(_ context.Context, a *models.Address) error {
	f.nextID++
	a.ID = f.nextID
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAddressRepo) UpdateAddress(_ context.Context, id uint, data map[string]interface{}) (*models.Address, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Address")
	}
	row.Street = data["street"].(string)
	row.Number = data["number"].(string)
	row.NeighborhoodID = data["neighborhood_id"].(uint)
	row.Complement = data["complement"].(*string)
	row.Observation = data["observation"].(*string)
	row.DeliveryFee = data["delivery_fee"].(decimal.Decimal)
	f.rows[id] = row
	return &row, nil
}

func (f *fakeAddressRepo) DeleteAddress(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("Address")
	}
	delete(f.rows, id)
	return nil
}

type fakeItemRepo struct {
	rows map[uint]models.Item
}

func (f *fakeItemRepo) GetItemByID(_ context.Context, id uint) (*models.Item, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Item")
	}
	return &row, nil
}

func (f *fakeItemRepo) GetItemPrice(_ context.Context, id uint) (decimal.Decimal, error) {
	row, ok := f.rows[id]
	if !ok {
		return decimal.Decimal{}, apperr.NotFound("Item")
	}
	return row.Price, nil
}

func (f *fakeItemRepo) GetAllItems(context.Context) ([]models.Item, error) {
	out := make([]models.Item, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeItemRepo) CreateItem(_ context.Context, item *models.Item) error {
	item.ID = uint(len(f.rows) + 1)
	f.rows[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) UpdateItem(_ context.Context, id uint, _ map[string]interface{}) (*models.Item, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("Item")
	}
	return &row, nil
}

func (f *fakeItemRepo) DeleteItem(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("Item")
	}
	delete(f.rows, id)
	return nil
}

type orderLineKey struct {
	orderID uint
	itemID  uint
}

type fakeOrderDetailsRepo struct {
	rows map[orderLineKey]models.OrderDetails
}

func (f *fakeOrderDetailsRepo) GetOrderDetailsByOrderID(_ context.Context, orderID uint) ([]models.OrderDetails, error) {
	out := make([]models.OrderDetails, 0)
	for key, row := range f.rows {
		if key.orderID == orderID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeOrderDetailsRepo) GetAllOrderDetails(context.Context) ([]models.OrderDetails, error) {
	out := make([]models.OrderDetails, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeOrderDetailsRepo) CreateOrderDetails(_ context.Context, d *models.OrderDetails) error {
	// the real store derives total_price from unit_price * quantity
	d.TotalPrice = d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
	f.rows[orderLineKey{d.OrderID, d.ItemID}] = *d
	return nil
}

func (f *fakeOrderDetailsRepo) UpdateOrderDetails(_ context.Context, orderID uint, d *models.OrderDetails) (*models.OrderDetails, error) {
	key := orderLineKey{orderID, d.ItemID}
	if _, ok := f.rows[key]; !ok {
		return nil, apperr.NotFound("Order details")
	}
	d.TotalPrice = d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
	delete(f.rows, key)
	f.rows[orderLineKey{d.OrderID, d.ItemID}] = *d
	return d, nil
}

func (f *fakeOrderDetailsRepo) DeleteOrderDetails(_ context.Context, orderID uint) error {
	deleted := false
	for key := range f.rows {
		if key.orderID == orderID {
			delete(f.rows, key)
			deleted = true
		}
	}
	if !deleted {
		return apperr.NotFound("Order details")
	}
	return nil
}
