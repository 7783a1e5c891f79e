package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bellacucina/bella-cucina-api/models"
	"github.com/bellacucina/bella-cucina-api/utils"
	"github.com/shopspring/decimal"
)

const (
	orderNumberRetries = 5
	storeWriteTimeout  = 5 * time.Second
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MenuCatalog is the authoritative source of item identity, price and
// availability. GetByID returns (nil, nil) when no item has the id.
type MenuCatalog interface {
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// OrderStore persists orders. CreateOrder must insert the header and all
// line items, and clear the user's cart when clearCartUserID is non-zero,
// in one transaction — on error nothing may remain committed.
type OrderStore interface {
	OrderNumberExists(ctx context.Context, number string) (bool, error)
	CreateOrder(ctx context.Context, order *models.Order, clearCartUserID uint) error
}

type CheckoutItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type CheckoutRequest struct {
	FullName      string         `json:"fullName"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	ZipCode       string         `json:"zipCode"`
	DeliveryNotes string         `json:"deliveryNotes"`
	PaymentMethod string         `json:"paymentMethod"`
	Items         []CheckoutItem `json:"items"`
}

type CheckoutResult struct {
	OrderID     uint    `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	Total       float64 `json:"total"`
}

// CheckoutService turns a checkout request into a durable order, or fails
// without partial effect.
type CheckoutService struct {
	catalog       MenuCatalog
	orders        OrderStore
	pricing       PricingConfig
	initialStatus string
}

func NewCheckoutService(catalog MenuCatalog, orders OrderStore, pricing PricingConfig, initialStatus string) *CheckoutService {
	if !models.IsValidOrderStatus(initialStatus) {
		initialStatus = models.StatusPending
	}
	return &CheckoutService{
		catalog:       catalog,
		orders:        orders,
		pricing:       pricing,
		initialStatus: initialStatus,
	}
}

// PlaceOrder validates the request against the catalog, prices it, and
// persists order + items atomically, clearing the user's cart on success.
// userID of zero means guest checkout. Validation and availability errors
// are returned before any write happens.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, req CheckoutRequest) (*CheckoutResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	lines, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	quote := s.pricing.Quote(lines)
	if s.pricing.MinimumOrder.IsPositive() && quote.Subtotal.LessThan(s.pricing.MinimumOrder) {
		return nil, &ValidationError{
			Field:   "items",
			Message: fmt.Sprintf("minimum order amount is $%s", s.pricing.MinimumOrder.StringFixed(2)),
		}
	}

	orderNumber, err := s.uniqueOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		OrderNumber:   orderNumber,
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		State:         strings.TrimSpace(req.State),
		ZipCode:       strings.TrimSpace(req.ZipCode),
		DeliveryNotes: strings.TrimSpace(req.DeliveryNotes),
		Subtotal:      quote.Subtotal.InexactFloat64(),
		DeliveryFee:   quote.DeliveryFee.InexactFloat64(),
		Tax:           quote.Tax.InexactFloat64(),
		Total:         quote.Total.InexactFloat64(),
		PaymentMethod: req.PaymentMethod,
		Status:        s.initialStatus,
	}
	if userID != 0 {
		order.UserID = &userID
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price.InexactFloat64(),
			Quantity:   line.Quantity,
			Subtotal:   line.Subtotal.InexactFloat64(),
		})
	}

	writeCtx, cancel := context.WithTimeout(ctx, storeWriteTimeout)
	defer cancel()

	if err := s.orders.CreateOrder(writeCtx, &order, userID); err != nil {
		return nil, &StorageError{Err: err}
	}

	return &CheckoutResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Total:       order.Total,
	}, nil
}

func validateRequest(req CheckoutRequest) error {
	required := []struct {
		field, value string
	}{
		{"fullName", req.FullName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
		{"city", req.City},
		{"state", req.State},
		{"zipCode", req.ZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if !models.IsValidPaymentMethod(req.PaymentMethod) {
		return &ValidationError{Field: "paymentMethod", Message: "must be one of credit, debit, paypal, cash"}
	}
	if len(req.Items) == 0 {
		return &ValidationError{Field: "items", Message: "order must contain at least one item"}
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return &ValidationError{Field: "items", Message: fmt.Sprintf("quantity for %s must be at least 1", item.MenuItemID)}
		}
	}
	return nil
}

// priceItems re-reads every line's price from the catalog; prices in the
// request body are ignored.
func (s *CheckoutService) priceItems(ctx context.Context, items []CheckoutItem) ([]PricedLine, error) {
	lines := make([]PricedLine, 0, len(items))
	for _, item := range items {
		menuItem, err := s.catalog.GetByID(ctx, item.MenuItemID)
		if err != nil {
			return nil, &StorageError{Err: err}
		}
		if menuItem == nil || !menuItem.Available {
			return nil, &ItemUnavailableError{MenuItemID: item.MenuItemID}
		}
		price := decimal.NewFromFloat(menuItem.Price).Round(2)
		lines = append(lines, PricedLine{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      price,
			Quantity:   item.Quantity,
			Subtotal:   price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return lines, nil
}

func (s *CheckoutService) uniqueOrderNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		number, err := utils.GenerateOrderNumber()
		if err != nil {
			return "", err
		}
		exists, err := s.orders.OrderNumberExists(ctx, number)
		if err != nil {
			return "", &StorageError{Err: err}
		}
		if !exists {
			return number, nil
		}
	}
	return "", ErrOrderNumberExhausted
}
