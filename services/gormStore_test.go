package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbCounter++
	dsn := fmt.Sprintf("file:gormstore%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedOrder(userID uint) *models.Order {
	order := &models.Order{
		OrderNumber:   "BC0000000001",
		FullName:      "Maria Rossi",
		Email:         "maria@example.com",
		Phone:         "555-0100",
		Address:       "12 Via Roma",
		City:          "Brooklyn",
		State:         "NY",
		ZipCode:       "11201",
		Subtotal:      36.00,
		Tax:           3.15,
		Total:         39.15,
		PaymentMethod: models.PaymentCredit,
		Status:        models.StatusPending,
		Items: []models.OrderItem{
			{MenuItemID: "margherita", Name: "Margherita Pizza", Price: 18, Quantity: 2, Subtotal: 36},
		},
	}
	if userID != 0 {
		order.UserID = &userID
	}
	return order
}

func TestGormOrderStore_CreateOrderPersistsItemsAndClearsCart(t *testing.T) {
	db := openTestDB(t)
	store := GormOrderStore{DB: db}

	require.NoError(t, db.Create(&models.CartItem{UserID: 7, MenuItemID: "margherita", Quantity: 2}).Error)

	order := seedOrder(7)
	require.NoError(t, store.CreateOrder(context.Background(), order, 7))
	require.NotZero(t, order.ID)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, "Margherita Pizza", items[0].Name)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&cartCount).Error)
	require.Zero(t, cartCount)
}

func TestGormOrderStore_DuplicateOrderNumberRollsBackEverything(t *testing.T) {
	db := openTestDB(t)
	store := GormOrderStore{DB: db}

	require.NoError(t, db.Create(&models.CartItem{UserID: 7, MenuItemID: "tiramisu", Quantity: 1}).Error)
	require.NoError(t, store.CreateOrder(context.Background(), seedOrder(0), 0))

	// Same order number again; the unique index must reject it and the
	// second user's cart must survive.
	err := store.CreateOrder(context.Background(), seedOrder(7), 7)
	require.Error(t, err)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.EqualValues(t, 1, orderCount)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.EqualValues(t, 1, itemCount)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", 7).Count(&cartCount).Error)
	require.EqualValues(t, 1, cartCount)
}

func TestGormOrderStore_OrderNumberExists(t *testing.T) {
	db := openTestDB(t)
	store := GormOrderStore{DB: db}

	exists, err := store.OrderNumberExists(context.Background(), "BC0000000001")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, store.CreateOrder(context.Background(), seedOrder(0), 0))

	exists, err = store.OrderNumberExists(context.Background(), "BC0000000001")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGormMenuCatalog_GetByID(t *testing.T) {
	db := openTestDB(t)
	catalog := GormMenuCatalog{DB: db}

	require.NoError(t, db.Create(&models.MenuItem{ID: "margherita", Name: "Margherita Pizza", Price: 18, Available: true}).Error)

	item, err := catalog.GetByID(context.Background(), "margherita")
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, 18.00, item.Price)

	missing, err := catalog.GetByID(context.Background(), "ghost-dish")
	require.NoError(t, err)
	require.Nil(t, missing)
}
