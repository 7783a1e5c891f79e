package services

import (
	"context"
	"errors"
	"testing"

	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	items map[string]*models.MenuItem
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[string]*models.MenuItem{
		"margherita": {ID: "margherita", Name: "Margherita Pizza", Price: 18, Available: true},
		"tiramisu":   {ID: "tiramisu", Name: "Tiramisu", Price: 12, Available: true},
		"ossobuco":   {ID: "ossobuco", Name: "Osso Buco", Price: 32, Available: false},
	}}
}

func (f *fakeCatalog) GetByID(_ context.Context, id string) (*models.MenuItem, error) {
	return f.items[id], nil
}

type fakeOrderStore struct {
	orders        []*models.Order
	clearedCarts  []uint
	existing      map[string]bool
	alwaysCollide bool
	createErr     error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{existing: map[string]bool{}}
}

func (f *fakeOrderStore) OrderNumberExists(_ context.Context, number string) (bool, error) {
	if f.alwaysCollide {
		return true, nil
	}
	return f.existing[number], nil
}

func (f *fakeOrderStore) CreateOrder(_ context.Context, order *models.Order, clearCartUserID uint) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, order)
	if clearCartUserID != 0 {
		f.clearedCarts = append(f.clearedCarts, clearCartUserID)
	}
	return nil
}

func validRequest(items ...CheckoutItem) CheckoutRequest {
	return CheckoutRequest{
		FullName:      "Maria Rossi",
		Email:         "maria@example.com",
		Phone:         "555-0100",
		Address:       "12 Via Roma",
		City:          "Brooklyn",
		State:         "NY",
		ZipCode:       "11201",
		PaymentMethod: models.PaymentCredit,
		Items:         items,
	}
}

func newService(catalog MenuCatalog, store OrderStore) *CheckoutService {
	return NewCheckoutService(catalog, store, DefaultPricing(), models.StatusPending)
}

func TestPlaceOrder_ComputesTotalsAboveFreeDeliveryThreshold(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	result, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "margherita", Quantity: 2},
	))
	require.NoError(t, err)
	require.Equal(t, 39.15, result.Total)

	require.Len(t, store.orders, 1)
	order := store.orders[0]
	require.Equal(t, 36.00, order.Subtotal)
	require.Equal(t, 0.00, order.DeliveryFee)
	require.Equal(t, 3.15, order.Tax)
	require.Equal(t, 39.15, order.Total)
}

func TestPlaceOrder_ChargesDeliveryFeeBelowThreshold(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	result, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, 18.05, result.Total)

	order := store.orders[0]
	require.Equal(t, 12.00, order.Subtotal)
	require.Equal(t, 5.00, order.DeliveryFee)
	require.Equal(t, 1.05, order.Tax)
}

func TestPlaceOrder_SnapshotsNameAndPrice(t *testing.T) {
	catalog := newFakeCatalog()
	store := newFakeOrderStore()
	svc := newService(catalog, store)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "margherita", Quantity: 2},
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.NoError(t, err)

	// Later catalog edits must not leak into the stored order.
	catalog.items["margherita"].Price = 99
	catalog.items["margherita"].Name = "Renamed"

	order := store.orders[0]
	require.Len(t, order.Items, 2)
	require.Equal(t, "Margherita Pizza", order.Items[0].Name)
	require.Equal(t, 18.00, order.Items[0].Price)
	require.Equal(t, 2, order.Items[0].Quantity)
	require.Equal(t, 36.00, order.Items[0].Subtotal)
}

func TestPlaceOrder_UnavailableItemFailsWithoutWrites(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "margherita", Quantity: 1},
		CheckoutItem{MenuItemID: "ossobuco", Quantity: 1},
	))

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, "ossobuco", unavailable.MenuItemID)
	require.Empty(t, store.orders)
	require.Empty(t, store.clearedCarts)
}

func TestPlaceOrder_UnknownItemFailsWithoutWrites(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "ghost-dish", Quantity: 1},
	))

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, "ghost-dish", unavailable.MenuItemID)
	require.Empty(t, store.orders)
}

func TestPlaceOrder_ValidationFailures(t *testing.T) {
	svc := newService(newFakeCatalog(), newFakeOrderStore())

	tests := []struct {
		name      string
		mutate    func(*CheckoutRequest)
		wantField string
	}{
		{"missing full name", func(r *CheckoutRequest) { r.FullName = " " }, "fullName"},
		{"missing email", func(r *CheckoutRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *CheckoutRequest) { r.Email = "not-an-email" }, "email"},
		{"missing phone", func(r *CheckoutRequest) { r.Phone = "" }, "phone"},
		{"missing address", func(r *CheckoutRequest) { r.Address = "" }, "address"},
		{"missing city", func(r *CheckoutRequest) { r.City = "" }, "city"},
		{"missing state", func(r *CheckoutRequest) { r.State = "" }, "state"},
		{"missing zip", func(r *CheckoutRequest) { r.ZipCode = "" }, "zipCode"},
		{"bad payment method", func(r *CheckoutRequest) { r.PaymentMethod = "bitcoin" }, "paymentMethod"},
		{"empty items", func(r *CheckoutRequest) { r.Items = nil }, "items"},
		{"zero quantity", func(r *CheckoutRequest) { r.Items[0].Quantity = 0 }, "items"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(CheckoutItem{MenuItemID: "margherita", Quantity: 1})
			tc.mutate(&req)

			_, err := svc.PlaceOrder(context.Background(), 7, req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestPlaceOrder_GuestOrderHasNoUserAndNoCartClear(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	_, err := svc.PlaceOrder(context.Background(), 0, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.NoError(t, err)

	require.Nil(t, store.orders[0].UserID)
	require.Empty(t, store.clearedCarts)
}

func TestPlaceOrder_AuthenticatedOrderClearsCart(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	_, err := svc.PlaceOrder(context.Background(), 42, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.NoError(t, err)

	require.NotNil(t, store.orders[0].UserID)
	require.Equal(t, uint(42), *store.orders[0].UserID)
	require.Equal(t, []uint{42}, store.clearedCarts)
}

func TestPlaceOrder_OrderNumberCollisionsExhaustRetries(t *testing.T) {
	store := newFakeOrderStore()
	store.alwaysCollide = true
	svc := newService(newFakeCatalog(), store)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.ErrorIs(t, err, ErrOrderNumberExhausted)
	require.Empty(t, store.orders)
}

func TestPlaceOrder_StoreFailureSurfacesAsStorageError(t *testing.T) {
	store := newFakeOrderStore()
	store.createErr = errors.New("disk full")
	svc := newService(newFakeCatalog(), store)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestPlaceOrder_IgnoresClientPrices(t *testing.T) {
	// The request carries no price fields at all; this pins down that the
	// totals come from the catalog.
	store := newFakeOrderStore()
	svc := newService(newFakeCatalog(), store)

	result, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "margherita", Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, 24.58, result.Total) // 18.00 + 5.00 delivery + 1.58 tax
}

func TestPlaceOrder_MinimumOrderEnforced(t *testing.T) {
	pricing := DefaultPricing()
	pricing.MinimumOrder = decimal.RequireFromString("15")
	store := newFakeOrderStore()
	svc := NewCheckoutService(newFakeCatalog(), store, pricing, models.StatusPending)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Empty(t, store.orders)
}

func TestNewCheckoutService_DefaultsInvalidInitialStatus(t *testing.T) {
	store := newFakeOrderStore()
	svc := NewCheckoutService(newFakeCatalog(), store, DefaultPricing(), "shipped")

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, store.orders[0].Status)
}

func TestPlaceOrder_ConfiguredInitialStatus(t *testing.T) {
	store := newFakeOrderStore()
	svc := NewCheckoutService(newFakeCatalog(), store, DefaultPricing(), models.StatusConfirmed)

	_, err := svc.PlaceOrder(context.Background(), 7, validRequest(
		CheckoutItem{MenuItemID: "tiramisu", Quantity: 1},
	))
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, store.orders[0].Status)
}
